package mock

import (
	"context"

	"github.com/mwalkowski/laradoc"
)

var _ laradoc.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of laradoc.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*laradoc.Page, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*laradoc.Page, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
