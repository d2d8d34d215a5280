package web

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mwalkowski/laradoc"
)

// Sidebar discovers a manual's page list by parsing the anchors of its
// docs index page. The Laravel manual keeps its full table of contents in
// the sidebar of every page, so one fetch yields the whole fetch plan.
type Sidebar struct {
	client *http.Client
}

// NewSidebar creates a Sidebar discoverer. If client is nil,
// http.DefaultClient is used.
func NewSidebar(client *http.Client) *Sidebar {
	if client == nil {
		client = http.DefaultClient
	}
	return &Sidebar{client: client}
}

// Discover fetches indexURL and returns the absolute URLs of all linked
// pages whose path starts with pathPrefix, in document order, without
// duplicates or fragments.
func (s *Sidebar) Discover(ctx context.Context, indexURL, pathPrefix string) ([]string, error) {
	base, err := url.Parse(indexURL)
	if err != nil {
		return nil, laradoc.Errorf(laradoc.EINVALID, "invalid index URL %q", indexURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, indexURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, indexURL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	var urls []string
	seen := make(map[string]bool)
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)
		resolved.Fragment = ""
		resolved.RawQuery = ""
		if resolved.Host != base.Host || !strings.HasPrefix(resolved.Path, pathPrefix) {
			return
		}
		u := resolved.String()
		if seen[u] {
			return
		}
		seen[u] = true
		urls = append(urls, u)
	})

	return urls, nil
}
