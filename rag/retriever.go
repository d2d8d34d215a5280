// Package rag implements the retrieval pipeline: topic-aware multi-query
// retrieval, the retrieval tools, the orchestrator that plans which
// tools to run, and the synthesizer that composes the final answer.
package rag

import (
	"context"
	"fmt"

	"github.com/mwalkowski/laradoc"
)

// Retrieval parameters. Each rephrased query contributes up to
// PerQueryResults chunks; at most MaxContextPassages end up in the
// prompt context.
const (
	PerQueryResults    = 3
	MaxContextPassages = 5
)

// DefaultContextTokenBudget is the token cap applied to the formatted
// context when a token counter is available. Five 1000-rune chunks sit
// comfortably under it; the budget only bites on token-dense content.
const DefaultContextTokenBudget = 3000

// Rephrasings expands a tool query into the query variants searched for
// that topic. Version and installation searches lean on fixed probes so
// a vague question still hits the right pages; feature and general
// searches derive all variants from the query itself.
func Rephrasings(kind laradoc.ToolKind, query string) []string {
	switch kind {
	case laradoc.ToolVersion:
		return []string{
			query + " version",
			"Laravel version",
			"release notes",
			"upgrade guide",
			"Laravel 12.x",
			"Laravel 11.x",
			"Laravel 10.x",
			"current version",
		}
	case laradoc.ToolFeature:
		return []string{
			"Laravel " + query,
			"how to " + query,
			query + " implementation",
			query + " configuration",
			query + " example",
			query + " tutorial",
		}
	case laradoc.ToolInstallation:
		return []string{
			"Laravel installation",
			"install Laravel",
			"Laravel setup",
			"Laravel requirements",
			"Laravel getting started",
			query + " install",
			query + " composer",
		}
	default:
		return []string{
			query,
			"Laravel " + query,
			query + " documentation",
			query + " guide",
		}
	}
}

// RetrieverOption configures a Retriever.
type RetrieverOption func(*Retriever)

// WithTokenBudget caps the formatted context at roughly budget tokens,
// dropping trailing passages that would exceed it. The first passage is
// always kept.
func WithTokenBudget(counter laradoc.TokenCounter, budget int) RetrieverOption {
	return func(r *Retriever) {
		r.counter = counter
		r.budget = budget
	}
}

// Retriever runs topic-aware multi-query searches against the index and
// assembles the context block for the tool prompts.
type Retriever struct {
	index   laradoc.Index
	counter laradoc.TokenCounter
	budget  int
}

// NewRetriever creates a Retriever over the given index.
func NewRetriever(index laradoc.Index, opts ...RetrieverOption) *Retriever {
	r := &Retriever{index: index}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Retrieve searches every rephrasing of the query and returns the
// collected passages in search order. Installation results are
// deduplicated; the fixed installation probes hit the same pages for
// almost any query.
func (r *Retriever) Retrieve(ctx context.Context, kind laradoc.ToolKind, query string) ([]laradoc.Passage, error) {
	var passages []laradoc.Passage
	for _, rephrased := range Rephrasings(kind, query) {
		results, err := r.index.Search(ctx, rephrased, PerQueryResults)
		if err != nil {
			return nil, fmt.Errorf("searching %q: %w", rephrased, err)
		}
		for rank, result := range results {
			passages = append(passages, laradoc.Passage{
				Query: rephrased,
				Rank:  rank,
				Text:  result.Chunk.Text,
			})
		}
	}

	if kind == laradoc.ToolInstallation {
		passages = laradoc.DedupPassages(passages)
	}
	return passages, nil
}

// Context retrieves passages for the query and renders them as the
// numbered context block used in tool prompts.
func (r *Retriever) Context(ctx context.Context, kind laradoc.ToolKind, query string) (string, error) {
	passages, err := r.Retrieve(ctx, kind, query)
	if err != nil {
		return "", err
	}

	if r.counter != nil && r.budget > 0 {
		passages, err = r.trimToBudget(ctx, passages)
		if err != nil {
			return "", err
		}
	}

	return laradoc.FormatPassages(passages, MaxContextPassages), nil
}

// trimToBudget drops trailing passages once the running token count
// exceeds the budget.
func (r *Retriever) trimToBudget(ctx context.Context, passages []laradoc.Passage) ([]laradoc.Passage, error) {
	total := 0
	for i, p := range passages {
		count, err := r.counter.CountTokens(ctx, p.Text)
		if err != nil {
			return nil, fmt.Errorf("counting tokens: %w", err)
		}
		total += count
		if total > r.budget && i > 0 {
			return passages[:i], nil
		}
	}
	return passages, nil
}
