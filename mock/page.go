package mock

import (
	"context"

	"github.com/mwalkowski/laradoc"
)

var _ laradoc.PageService = (*PageService)(nil)

// PageService is a mock implementation of laradoc.PageService.
type PageService struct {
	ReplacePagesFn func(ctx context.Context, pages []*laradoc.Page) error
	FindPagesFn    func(ctx context.Context) ([]*laradoc.Page, error)
}

func (s *PageService) ReplacePages(ctx context.Context, pages []*laradoc.Page) error {
	return s.ReplacePagesFn(ctx, pages)
}

func (s *PageService) FindPages(ctx context.Context) ([]*laradoc.Page, error) {
	return s.FindPagesFn(ctx)
}
