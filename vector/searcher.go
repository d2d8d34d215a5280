package vector

import (
	"context"

	"github.com/mwalkowski/laradoc"
)

// Ensure Searcher implements laradoc.Index at compile time.
var _ laradoc.Index = (*Searcher)(nil)

// Searcher answers text queries against an Index by embedding the query
// and running a similarity search.
type Searcher struct {
	embedder laradoc.Embedder
	index    *Index
}

// NewSearcher creates a Searcher. The index may be nil; Search then
// fails until Load is called.
func NewSearcher(embedder laradoc.Embedder, index *Index) *Searcher {
	return &Searcher{embedder: embedder, index: index}
}

// Load replaces the searcher's index.
func (s *Searcher) Load(index *Index) {
	s.index = index
}

// Search embeds the query and returns the k most similar chunks.
func (s *Searcher) Search(ctx context.Context, query string, k int) ([]laradoc.SearchResult, error) {
	if s.index == nil {
		return nil, laradoc.Errorf(laradoc.EINTERNAL, "vector index not loaded")
	}
	if query == "" {
		return nil, laradoc.Errorf(laradoc.EINVALID, "query required")
	}

	vectors, err := s.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, err
	}
	if len(vectors) != 1 {
		return nil, laradoc.Errorf(laradoc.EINTERNAL, "expected 1 query embedding, got %d", len(vectors))
	}

	return s.index.Nearest(vectors[0], k), nil
}
