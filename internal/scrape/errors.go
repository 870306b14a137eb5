// Package scrape fetches job postings from supported job boards and parses
// them into structured postings via per-site parsers.
package scrape

import (
	"fmt"
	"strings"
)

// UnsupportedSourceError indicates the URL's domain matches no registered
// parser. The message enumerates the supported domains.
type UnsupportedSourceError struct {
	URL       string
	Supported []string
}

func (e *UnsupportedSourceError) Error() string {
	return fmt.Sprintf("unsupported job board. Currently supported: %s", strings.Join(e.Supported, ", "))
}

// FetchError indicates the HTTP fetch failed. NoResponse distinguishes a
// network-level failure (likely blocked or timed out) from a response with a
// bad status code.
type FetchError struct {
	URL        string
	StatusCode int
	NoResponse bool
	Cause      error
}

func (e *FetchError) Error() string {
	if e.NoResponse {
		return "no response received from job board. The site may be blocking scrapers."
	}
	return fmt.Sprintf("failed to fetch job posting. Status: %d", e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// ParseError indicates a site-specific parser failed while traversing the
// document. It names the site and hides the internal failure from the
// message.
type ParseError struct {
	Site  string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s job posting", e.Site)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
