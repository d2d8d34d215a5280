package laradoc

import "strings"

// Content filter thresholds. Pages shorter than MinContentLength (after
// trimming) are treated as navigation boilerplate. Pages where the share
// of link-bearing lines exceeds MaxLinkRatio are treated as link lists.
const (
	MinContentLength = 200
	MaxLinkRatio     = 0.7
)

// FilterPages returns the subset of pages worth indexing, in the original
// order. A page is dropped when its trimmed content is shorter than
// MinContentLength, or when the fraction of its non-blank lines that
// carry a URL or markdown link syntax is strictly greater than
// MaxLinkRatio.
func FilterPages(pages []*Page) []*Page {
	kept := make([]*Page, 0, len(pages))
	for _, page := range pages {
		if IndexableContent(page.Content) {
			kept = append(kept, page)
		}
	}
	return kept
}

// IndexableContent reports whether a text blob passes the content filter.
func IndexableContent(content string) bool {
	if len(strings.TrimSpace(content)) < MinContentLength {
		return false
	}

	var linkLines, totalLines int
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		totalLines++
		if isLinkLine(line) {
			linkLines++
		}
	}

	if totalLines > 0 && float64(linkLines)/float64(totalLines) > MaxLinkRatio {
		return false
	}
	return true
}

// isLinkLine reports whether a line carries a URL or markdown link syntax.
func isLinkLine(line string) bool {
	if strings.Contains(line, "https://") {
		return true
	}
	return strings.Contains(line, "[") && strings.Contains(line, "](")
}
