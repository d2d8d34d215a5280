package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mwalkowski/laradoc"
)

// Ensure LoggingIndex implements laradoc.Index.
var _ laradoc.Index = (*LoggingIndex)(nil)

// LoggingIndex wraps an Index with per-query logging.
type LoggingIndex struct {
	next   laradoc.Index
	logger *slog.Logger
}

// NewLoggingIndex creates a new LoggingIndex.
func NewLoggingIndex(next laradoc.Index, logger *slog.Logger) *LoggingIndex {
	return &LoggingIndex{next: next, logger: logger}
}

// Search delegates to the wrapped index and logs the operation.
func (ix *LoggingIndex) Search(ctx context.Context, query string, k int) (results []laradoc.SearchResult, err error) {
	defer func(begin time.Time) {
		ix.logger.Debug("similarity search",
			"query", query,
			"k", k,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return ix.next.Search(ctx, query, k)
}
