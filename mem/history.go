// Package mem provides in-memory implementations of laradoc services.
package mem

import (
	"context"
	"sync"

	"github.com/mwalkowski/laradoc"
)

// Ensure HistoryService implements laradoc.HistoryService.
var _ laradoc.HistoryService = (*HistoryService)(nil)

// HistoryService stores conversation history in memory, keyed by session
// ID. Each session owns an independent turn slice; a mutex serializes
// writers so overlapping appends to one session cannot interleave.
type HistoryService struct {
	mu       sync.RWMutex
	sessions map[string][]laradoc.Turn
}

// NewHistoryService creates an empty HistoryService.
func NewHistoryService() *HistoryService {
	return &HistoryService{sessions: make(map[string][]laradoc.Turn)}
}

// Turns returns a copy of the session's turns in order.
func (s *HistoryService) Turns(_ context.Context, sessionID string) ([]laradoc.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.sessions[sessionID]
	out := make([]laradoc.Turn, len(turns))
	copy(out, turns)
	return out, nil
}

// Append adds turns to the end of the session's history.
func (s *HistoryService) Append(_ context.Context, sessionID string, turns ...laradoc.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sessionID] = append(s.sessions[sessionID], turns...)
	return nil
}

// Clear removes all turns for the session.
func (s *HistoryService) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}
