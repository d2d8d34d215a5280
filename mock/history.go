package mock

import (
	"context"

	"github.com/mwalkowski/laradoc"
)

var _ laradoc.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of laradoc.HistoryService.
type HistoryService struct {
	TurnsFn  func(ctx context.Context, sessionID string) ([]laradoc.Turn, error)
	AppendFn func(ctx context.Context, sessionID string, turns ...laradoc.Turn) error
	ClearFn  func(ctx context.Context, sessionID string) error
}

func (s *HistoryService) Turns(ctx context.Context, sessionID string) ([]laradoc.Turn, error) {
	return s.TurnsFn(ctx, sessionID)
}

func (s *HistoryService) Append(ctx context.Context, sessionID string, turns ...laradoc.Turn) error {
	return s.AppendFn(ctx, sessionID, turns...)
}

func (s *HistoryService) Clear(ctx context.Context, sessionID string) error {
	return s.ClearFn(ctx, sessionID)
}
