package laradoc

import (
	"fmt"
	"strings"
)

// NoContextMarker is substituted for the context block when retrieval
// produced nothing. The tool prompts instruct the model to admit the gap
// rather than improvise.
const NoContextMarker = "No relevant documentation found."

// Passage is one retrieved excerpt, tagged with the rephrased query that
// produced it and its rank within that query's results. Keeping retrieval
// results structured lets formatting, truncation, and deduplication be
// pure functions instead of string surgery.
type Passage struct {
	Query string `json:"query"`
	Rank  int    `json:"rank"`
	Text  string `json:"text"`
}

// DedupPassages removes passages whose text exactly matches an earlier
// passage, preserving order.
func DedupPassages(passages []Passage) []Passage {
	seen := make(map[string]bool, len(passages))
	out := make([]Passage, 0, len(passages))
	for _, p := range passages {
		if seen[p.Text] {
			continue
		}
		seen[p.Text] = true
		out = append(out, p)
	}
	return out
}

// FormatPassages renders passages as a numbered context block for a model
// prompt. At most limit passages are rendered (all of them when limit is
// zero or negative). An empty slice renders as NoContextMarker.
func FormatPassages(passages []Passage, limit int) string {
	if len(passages) == 0 {
		return NoContextMarker
	}
	if limit > 0 && len(passages) > limit {
		passages = passages[:limit]
	}

	parts := make([]string, 0, len(passages))
	for i, p := range passages {
		parts = append(parts, fmt.Sprintf("Document %d:\n%s", i+1, p.Text))
	}
	return strings.Join(parts, "\n\n")
}
