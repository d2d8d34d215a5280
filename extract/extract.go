// Package extract turns raw documentation HTML into markdown. It chains
// boilerplate removal (trafilatura) with markdown conversion so callers
// get the form the index actually stores.
package extract

import (
	"bytes"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/markusmobius/go-trafilatura"
	"github.com/mwalkowski/laradoc"
	"golang.org/x/net/html"
)

// Extractor converts raw HTML pages into titled markdown.
type Extractor struct {
	conv *converter.Converter
}

// NewExtractor creates an Extractor.
func NewExtractor() *Extractor {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Extractor{conv: conv}
}

// Markdown extracts the main content of rawHTML, strips boilerplate
// (nav, footer, sidebar), and returns the page title and the content as
// markdown.
func (e *Extractor) Markdown(rawHTML string) (title, markdown string, err error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", "", laradoc.Errorf(laradoc.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback: true,
	})
	if err != nil {
		return "", "", err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return "", "", err
		}
	}
	if strings.TrimSpace(contentHTML) == "" {
		return result.Metadata.Title, "", laradoc.Errorf(laradoc.ENOTFOUND, "no main content found")
	}

	markdown, err = e.conv.ConvertString(contentHTML)
	if err != nil {
		return "", "", err
	}
	return result.Metadata.Title, markdown, nil
}

// renderNode converts an html.Node back to markup text.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
