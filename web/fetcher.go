// Package web provides a laradoc.Fetcher for statically rendered
// documentation sites, plus sidebar-based URL discovery. It needs no
// scrape-API key: pages are fetched with plain HTTP and reduced to
// markdown locally.
package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mwalkowski/laradoc"
	"github.com/mwalkowski/laradoc/extract"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements laradoc.Fetcher at compile time.
var _ laradoc.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages with plain HTTP and converts them to markdown.
// Suitable for static sites only; JavaScript is not executed.
type Fetcher struct {
	client    *http.Client
	extractor *extract.Extractor
	timeout   time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		extractor: extract.NewExtractor(),
		timeout:   DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.client = &http.Client{Timeout: f.timeout}
	return f
}

// Fetch retrieves the page at url and returns its main content as
// markdown. HTTP 429 responses become EUNAVAILABLE errors carrying the
// Retry-After hint when the server sends one.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*laradoc.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		if after := resp.Header.Get("Retry-After"); after != "" {
			return nil, laradoc.Errorf(laradoc.EUNAVAILABLE, "429 Rate limit exceeded, retry after %ss", after)
		}
		return nil, laradoc.Errorf(laradoc.EUNAVAILABLE, "429 Rate limit exceeded for %s", url)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	title, markdown, err := f.extractor.Markdown(string(body))
	if err != nil {
		// Extraction failures fall back to the raw markup so the page is
		// not lost; the content filter decides whether it is worth keeping.
		return &laradoc.Page{URL: url, Content: string(body), Format: laradoc.FormatHTML}, nil
	}

	return &laradoc.Page{
		URL:     url,
		Title:   title,
		Content: markdown,
		Format:  laradoc.FormatMarkdown,
	}, nil
}

// Close releases resources. The underlying http.Client needs no cleanup.
func (f *Fetcher) Close() error {
	return nil
}
