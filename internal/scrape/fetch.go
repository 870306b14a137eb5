package scrape

import (
	"context"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	// DefaultTimeout bounds the whole fetch, including redirects.
	DefaultTimeout = 10 * time.Second
	// MaxRedirects is the redirect-count ceiling per fetch.
	MaxRedirects = 5
)

// userAgents is the pool of client identities rotated per request. Job
// boards fingerprint and block static user agents; a randomized identity
// reduces that risk.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36 Edg/124.0.0.0",
}

// Options configures fetch behavior.
type Options struct {
	Timeout      time.Duration
	MaxRedirects int
	// UserAgent overrides the randomized pool when non-empty.
	UserAgent string
}

// DefaultOptions returns the fetch defaults: 10s timeout, 5 redirects,
// randomized user agent.
func DefaultOptions() *Options {
	return &Options{
		Timeout:      DefaultTimeout,
		MaxRedirects: MaxRedirects,
	}
}

// Fetcher retrieves job-board pages over HTTP and hands back parsed
// documents. It keeps no state between calls.
type Fetcher struct {
	opts   *Options
	client *http.Client
}

// NewFetcher creates a Fetcher with the given options (nil means defaults).
func NewFetcher(opts *Options) *Fetcher {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxRedirects == 0 {
		opts.MaxRedirects = MaxRedirects
	}

	maxRedirects := opts.MaxRedirects
	return &Fetcher{
		opts: opts,
		client: &http.Client{
			Timeout: opts.Timeout,
			CheckRedirect: func(_ *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return http.ErrUseLastResponse
				}
				return nil
			},
		},
	}
}

// Fetch retrieves a URL and parses the response body into a document.
// Network-level failures and timeouts come back as *FetchError with
// NoResponse set; a non-2xx status comes back as *FetchError carrying the
// status code. No retries are attempted.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, NoResponse: true, Cause: err}
	}

	req.Header.Set("User-Agent", f.userAgent())
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, NoResponse: true, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: url, NoResponse: true, Cause: err}
	}
	return doc, nil
}

func (f *Fetcher) userAgent() string {
	if f.opts.UserAgent != "" {
		return f.opts.UserAgent
	}
	return userAgents[rand.IntN(len(userAgents))]
}

// ParseDocument parses raw HTML into a document, for callers that obtained
// the markup some other way (tests, browser rendering).
func ParseDocument(html string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}
