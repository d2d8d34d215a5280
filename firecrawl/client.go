// Package firecrawl provides a laradoc.Fetcher backed by the Firecrawl
// scrape API, which renders a page server-side and returns its main
// content as markdown.
package firecrawl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mwalkowski/laradoc"
)

// DefaultBaseURL is the public Firecrawl API endpoint.
const DefaultBaseURL = "https://api.firecrawl.dev"

// DefaultTimeout bounds a single scrape request. Server-side rendering is
// slow, so this is far above a plain HTTP fetch timeout.
const DefaultTimeout = 60 * time.Second

// Ensure Client implements laradoc.Fetcher at compile time.
var _ laradoc.Fetcher = (*Client)(nil)

// Client fetches pages through the Firecrawl scrape API.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithTimeout sets the per-request timeout.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient creates a Firecrawl client. The API key is required; callers
// typically read it from the FIRECRAWL_API_KEY environment variable.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, laradoc.Errorf(laradoc.EUNAUTHORIZED, "FIRECRAWL_API_KEY not found in environment variables")
	}

	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.client = &http.Client{Timeout: c.timeout}
	return c, nil
}

type scrapeRequest struct {
	URL             string   `json:"url"`
	Formats         []string `json:"formats"`
	OnlyMainContent bool     `json:"onlyMainContent"`
}

type scrapeResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Data    struct {
		Markdown string `json:"markdown"`
		HTML     string `json:"html"`
		Metadata struct {
			Title string `json:"title"`
		} `json:"metadata"`
	} `json:"data"`
}

// Fetch scrapes the page at url, preferring markdown and falling back to
// raw HTML. Rate-limit rejections are returned as EUNAVAILABLE errors
// whose message preserves the server's retry-after hint.
func (c *Client) Fetch(ctx context.Context, url string) (*laradoc.Page, error) {
	body, err := json.Marshal(scrapeRequest{
		URL:             url,
		Formats:         []string{"markdown", "html"},
		OnlyMainContent: true,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/scrape", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var sr scrapeResponse
	// Error bodies are not always JSON; decode failures fall through to
	// the status check below with an empty response.
	_ = json.Unmarshal(raw, &sr)

	if resp.StatusCode == http.StatusTooManyRequests || rateLimitedMessage(sr.Error) {
		message := sr.Error
		if message == "" {
			message = strings.TrimSpace(string(raw))
		}
		return nil, laradoc.Errorf(laradoc.EUNAVAILABLE, "429 Rate limit exceeded: %s", message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	if !sr.Success {
		return nil, laradoc.Errorf(laradoc.EINTERNAL, "scrape failed: %s", sr.Error)
	}

	page := &laradoc.Page{URL: url, Title: sr.Data.Metadata.Title}
	switch {
	case sr.Data.Markdown != "":
		page.Content = sr.Data.Markdown
		page.Format = laradoc.FormatMarkdown
	case sr.Data.HTML != "":
		page.Content = sr.Data.HTML
		page.Format = laradoc.FormatHTML
	default:
		return nil, laradoc.Errorf(laradoc.EINTERNAL, "no markdown or html content for %s", url)
	}
	return page, nil
}

// Close releases resources. The underlying http.Client needs no cleanup.
func (c *Client) Close() error {
	return nil
}

func rateLimitedMessage(message string) bool {
	return strings.Contains(message, "Rate limit exceeded")
}
