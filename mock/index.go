package mock

import (
	"context"

	"github.com/mwalkowski/laradoc"
)

var _ laradoc.Index = (*Index)(nil)

// Index is a mock implementation of laradoc.Index.
type Index struct {
	SearchFn func(ctx context.Context, query string, k int) ([]laradoc.SearchResult, error)
}

func (i *Index) Search(ctx context.Context, query string, k int) ([]laradoc.SearchResult, error) {
	return i.SearchFn(ctx, query, k)
}
