package crawl

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces requests to a single host using a token bucket with a
// burst of 1: the first wait returns immediately, every later wait blocks
// until the configured delay has elapsed since the previous one.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a Pacer that enforces the given delay between
// requests. A non-positive delay disables pacing.
func NewPacer(delay time.Duration) *Pacer {
	if delay <= 0 {
		return &Pacer{}
	}
	return &Pacer{limiter: rate.NewLimiter(rate.Every(delay), 1)}
}

// Wait blocks until the next request is allowed. Returns an error if the
// context is canceled before the wait completes.
func (p *Pacer) Wait(ctx context.Context) error {
	if p.limiter == nil {
		return ctx.Err()
	}
	return p.limiter.Wait(ctx)
}
