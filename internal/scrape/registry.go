package scrape

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/jobinsight/internal/types"
)

// Parser extracts a structured posting from a rendered job-board document.
// Implementations query fixed selectors for one site's markup and degrade to
// "Unknown ..." sentinels rather than omitting required fields.
type Parser interface {
	// Site returns the human-readable site name for error messages.
	Site() string
	// Parse extracts a posting from the document. It may panic on malformed
	// markup; the registry boundary converts panics to *ParseError.
	Parse(doc *goquery.Document, url string) *types.ParsedPosting
}

// registration binds a domain to its parser. Dispatch is substring
// containment on the hostname, so "jobs.indeed.com" resolves via
// "indeed.com".
type registration struct {
	domain string
	parser Parser
}

// Registry dispatches URLs to site-specific parsers. The registered set is
// fixed at construction and read-only afterwards; adding a site means adding
// one Parser implementation and one entry here.
type Registry struct {
	entries []registration
}

// NewRegistry returns the registry of supported job boards.
func NewRegistry() *Registry {
	return &Registry{
		entries: []registration{
			{domain: "linkedin.com", parser: &linkedinParser{}},
			{domain: "indeed.com", parser: &indeedParser{}},
			{domain: "glassdoor.com", parser: &glassdoorParser{}},
		},
	}
}

// SupportedSites returns the registered domains in registration order.
func (r *Registry) SupportedSites() []string {
	sites := make([]string, len(r.entries))
	for i, e := range r.entries {
		sites[i] = e.domain
	}
	return sites
}

// Resolve returns the parser for the URL's host, or an
// *UnsupportedSourceError when no registered domain matches.
func (r *Registry) Resolve(rawURL string) (Parser, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Hostname() == "" {
		return nil, &UnsupportedSourceError{URL: rawURL, Supported: r.SupportedSites()}
	}

	host := strings.TrimPrefix(parsed.Hostname(), "www.")
	for _, e := range r.entries {
		if strings.Contains(host, e.domain) {
			return e.parser, nil
		}
	}
	return nil, &UnsupportedSourceError{URL: rawURL, Supported: r.SupportedSites()}
}

// Parse runs the resolved parser over a document, converting any parser
// panic into a *ParseError naming the site.
func (r *Registry) Parse(p Parser, doc *goquery.Document, rawURL string) (posting *types.ParsedPosting, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			posting = nil
			err = &ParseError{Site: p.Site(), Cause: fmt.Errorf("%v", rec)}
		}
	}()

	posting = p.Parse(doc, rawURL)
	return posting, nil
}

// fieldOr returns the trimmed text of the first node matching the selector,
// or the fallback when the selection is empty.
func fieldOr(doc *goquery.Document, selector, fallback string) string {
	text := strings.TrimSpace(doc.Find(selector).First().Text())
	if text == "" {
		return fallback
	}
	return text
}

// Sentinels for required posting fields that a parser could not locate.
const (
	unknownPosition = "Unknown Position"
	unknownCompany  = "Unknown Company"
	unknownLocation = "Unknown Location"
)
