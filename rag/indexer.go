package rag

import (
	"context"
	"fmt"

	"github.com/mwalkowski/laradoc"
)

// Indexer builds the searchable index from harvested pages: filter out
// navigation-only content, split into overlapping chunks, embed, and
// persist.
type Indexer struct {
	embedder laradoc.Embedder
	store    laradoc.ChunkStore
	pages    laradoc.PageService

	// ChunkSize and ChunkOverlap default to the package defaults when
	// zero.
	ChunkSize    int
	ChunkOverlap int
}

// NewIndexer creates an Indexer. The page service is optional; when
// present, the source pages are persisted alongside the chunks so the
// index can be rebuilt without refetching.
func NewIndexer(embedder laradoc.Embedder, store laradoc.ChunkStore, pages laradoc.PageService) *Indexer {
	return &Indexer{embedder: embedder, store: store, pages: pages}
}

// Build filters, chunks, embeds, and saves the pages. It returns the
// embedded chunks in document order. Pages that fail the content filter
// contribute nothing; if none survive, Build fails without touching the
// stored index.
func (ix *Indexer) Build(ctx context.Context, pages []*laradoc.Page) ([]*laradoc.Chunk, error) {
	size := ix.ChunkSize
	if size <= 0 {
		size = laradoc.DefaultChunkSize
	}
	overlap := ix.ChunkOverlap
	if overlap <= 0 {
		overlap = laradoc.DefaultChunkOverlap
	}

	kept := laradoc.FilterPages(pages)
	if len(kept) == 0 {
		return nil, laradoc.Errorf(laradoc.EINVALID, "no indexable content after filtering")
	}

	chunks := laradoc.SplitPages(kept, size, overlap)
	if len(chunks) == 0 {
		return nil, laradoc.Errorf(laradoc.EINVALID, "no indexable content after filtering")
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}

	vectors, err := ix.embedder.Embed(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embedding chunks: %w", err)
	}
	if len(vectors) != len(chunks) {
		return nil, laradoc.Errorf(laradoc.EINTERNAL, "embedding count mismatch: got %d, want %d", len(vectors), len(chunks))
	}
	for i, chunk := range chunks {
		chunk.Embedding = vectors[i]
	}

	if err := ix.store.SaveChunks(ctx, chunks); err != nil {
		return nil, err
	}

	if ix.pages != nil {
		if err := ix.pages.ReplacePages(ctx, kept); err != nil {
			return nil, fmt.Errorf("storing pages: %w", err)
		}
	}

	return chunks, nil
}
