package laradoc

import "context"

// PageFormat identifies the markup of a fetched page's content.
type PageFormat string

// Supported page formats. Markdown is preferred; raw HTML is kept as a
// fallback when the source cannot produce markdown.
const (
	FormatMarkdown PageFormat = "markdown"
	FormatHTML     PageFormat = "html"
)

// Page represents a fetched documentation page.
type Page struct {
	URL     string     `json:"url"`
	Title   string     `json:"title"`
	Content string     `json:"content"`
	Format  PageFormat `json:"format"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	if p.Content == "" {
		return Errorf(EINVALID, "page content required")
	}
	return nil
}

// Fetcher retrieves a single documentation page as extracted text.
// Implementations hide the transport (scrape API vs. plain HTTP) and the
// extraction/conversion pipeline behind it.
type Fetcher interface {
	// Fetch retrieves the page at url. The context controls timeout and
	// cancellation. A rate-limit rejection is reported as an EUNAVAILABLE
	// error whose message preserves the service's retry-after hint.
	Fetch(ctx context.Context, url string) (*Page, error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// FetchProgress reports progress during page harvesting.
type FetchProgress struct {
	URL       string
	Completed int
	Total     int
	Retried   bool
	Err       error
}

// FetchProgressFunc is called as pages are processed.
type FetchProgressFunc func(FetchProgress)

// PageService persists fetched pages so an index rebuild can reuse them.
type PageService interface {
	// ReplacePages replaces the stored pages with the given harvest,
	// preserving order. Implementations may skip the write when the
	// stored content is unchanged.
	ReplacePages(ctx context.Context, pages []*Page) error

	// FindPages returns all stored pages in harvest order.
	FindPages(ctx context.Context) ([]*Page, error)
}
