// Package crawl provides the documentation harvest loop: it walks a URL
// plan sequentially, paces requests to stay under the source's rate
// limit, and retries rate-limited fetches once with the delay the service
// suggests.
package crawl

import (
	"context"
	"time"

	"github.com/mwalkowski/laradoc"
	"github.com/mwalkowski/laradoc/bloom"
)

// DefaultDelay is the pause inserted between consecutive fetches.
const DefaultDelay = 2 * time.Second

// Harvester fetches a plan of documentation URLs.
//
// Harvesting is deliberately sequential: the sources rate-limit by host,
// so fanning out buys nothing and costs retries.
type Harvester struct {
	Fetcher laradoc.Fetcher

	// Delay is the pause between consecutive requests. Zero means
	// DefaultDelay; negative disables pacing.
	Delay time.Duration

	// Sleep is used for rate-limit backoff. Nil means a context-aware
	// time.Sleep; tests inject a recorder.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Harvest fetches every URL in the plan, in order, skipping duplicates.
// URLs that fail are skipped, not fatal: the returned slice holds
// whatever subset succeeded. A rate-limited fetch is retried exactly once
// after the parsed (or default) delay plus a one second buffer. The only
// error Harvest returns is context cancellation.
func (h *Harvester) Harvest(ctx context.Context, urls []string, progress laradoc.FetchProgressFunc) ([]*laradoc.Page, error) {
	delay := h.Delay
	if delay == 0 {
		delay = DefaultDelay
	}
	pacer := NewPacer(delay)
	seen := bloom.NewFilter(uint(len(urls))+16, 0.001)
	sleep := h.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	var pages []*laradoc.Page
	completed := 0
	for _, url := range urls {
		if seen.Seen(url) {
			continue
		}
		if err := pacer.Wait(ctx); err != nil {
			return pages, err
		}

		page, err := h.Fetcher.Fetch(ctx, url)
		retried := false
		if err != nil && RateLimited(err) {
			wait := ParseRetryDelay(laradoc.ErrorMessage(err)) + time.Second
			if serr := sleep(ctx, wait); serr != nil {
				return pages, serr
			}
			retried = true
			page, err = h.Fetcher.Fetch(ctx, url)
		}

		completed++
		if progress != nil {
			progress(laradoc.FetchProgress{
				URL:       url,
				Completed: completed,
				Total:     len(urls),
				Retried:   retried,
				Err:       err,
			})
		}
		if err != nil {
			continue
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// sleepContext sleeps for d unless the context is canceled first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
