package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/mwalkowski/laradoc"
	"github.com/mwalkowski/laradoc/crawl"
	"github.com/mwalkowski/laradoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHarvester_Harvest(t *testing.T) {
	t.Parallel()

	t.Run("fetches every URL in order", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (*laradoc.Page, error) {
				fetched = append(fetched, url)
				return &laradoc.Page{URL: url, Content: "content for " + url, Format: laradoc.FormatMarkdown}, nil
			},
		}

		h := &crawl.Harvester{Fetcher: fetcher, Delay: -1}
		pages, err := h.Harvest(context.Background(), []string{"u1", "u2", "u3"}, nil)

		require.NoError(t, err)
		require.Len(t, pages, 3)
		assert.Equal(t, []string{"u1", "u2", "u3"}, fetched)
		assert.Equal(t, "u1", pages[0].URL)
	})

	t.Run("failed URLs are skipped, not fatal", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (*laradoc.Page, error) {
				if url == "bad" {
					return nil, laradoc.Errorf(laradoc.EINTERNAL, "scrape failed")
				}
				return &laradoc.Page{URL: url, Content: "ok"}, nil
			},
		}

		var events []laradoc.FetchProgress
		h := &crawl.Harvester{Fetcher: fetcher, Delay: -1}
		pages, err := h.Harvest(context.Background(), []string{"good", "bad", "also-good"}, func(p laradoc.FetchProgress) {
			events = append(events, p)
		})

		require.NoError(t, err)
		require.Len(t, pages, 2)
		assert.Equal(t, "good", pages[0].URL)
		assert.Equal(t, "also-good", pages[1].URL)

		require.Len(t, events, 3)
		assert.Error(t, events[1].Err)
		assert.NoError(t, events[0].Err)
	})

	t.Run("rate-limited fetch is retried once after the parsed delay", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (*laradoc.Page, error) {
				attempts++
				if attempts == 1 {
					return nil, laradoc.Errorf(laradoc.EUNAVAILABLE, "429 Rate limit exceeded, retry after 32s")
				}
				return &laradoc.Page{URL: url, Content: "recovered"}, nil
			},
		}

		var slept []time.Duration
		h := &crawl.Harvester{
			Fetcher: fetcher,
			Delay:   -1,
			Sleep: func(_ context.Context, d time.Duration) error {
				slept = append(slept, d)
				return nil
			},
		}

		var events []laradoc.FetchProgress
		pages, err := h.Harvest(context.Background(), []string{"u"}, func(p laradoc.FetchProgress) {
			events = append(events, p)
		})

		require.NoError(t, err)
		require.Len(t, pages, 1)
		assert.Equal(t, 2, attempts)
		// Parsed delay plus the one-second buffer.
		require.Len(t, slept, 1)
		assert.Equal(t, 33*time.Second, slept[0])
		require.Len(t, events, 1)
		assert.True(t, events[0].Retried)
	})

	t.Run("a second rate limit gives up on the URL", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (*laradoc.Page, error) {
				attempts++
				return nil, laradoc.Errorf(laradoc.EUNAVAILABLE, "429 Rate limit exceeded")
			},
		}

		h := &crawl.Harvester{
			Fetcher: fetcher,
			Delay:   -1,
			Sleep:   func(context.Context, time.Duration) error { return nil },
		}
		pages, err := h.Harvest(context.Background(), []string{"u", "v"}, nil)

		require.NoError(t, err)
		assert.Empty(t, pages)
		// One retry per URL, never more.
		assert.Equal(t, 4, attempts)
	})

	t.Run("non-rate-limit errors are not retried", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (*laradoc.Page, error) {
				attempts++
				return nil, laradoc.Errorf(laradoc.EINTERNAL, "boom")
			},
		}

		h := &crawl.Harvester{Fetcher: fetcher, Delay: -1}
		pages, err := h.Harvest(context.Background(), []string{"u"}, nil)

		require.NoError(t, err)
		assert.Empty(t, pages)
		assert.Equal(t, 1, attempts)
	})

	t.Run("duplicate URLs in the plan are fetched once", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (*laradoc.Page, error) {
				fetched = append(fetched, url)
				return &laradoc.Page{URL: url, Content: "ok"}, nil
			},
		}

		h := &crawl.Harvester{Fetcher: fetcher, Delay: -1}
		pages, err := h.Harvest(context.Background(), []string{"dusk", "envoy", "dusk"}, nil)

		require.NoError(t, err)
		assert.Len(t, pages, 2)
		assert.Equal(t, []string{"dusk", "envoy"}, fetched)
	})

	t.Run("context cancellation stops the harvest", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (*laradoc.Page, error) {
				cancel()
				return &laradoc.Page{URL: url, Content: "ok"}, nil
			},
		}

		h := &crawl.Harvester{Fetcher: fetcher, Delay: 10 * time.Millisecond}
		pages, err := h.Harvest(ctx, []string{"u1", "u2"}, nil)

		require.Error(t, err)
		assert.Len(t, pages, 1)
	})
}

func TestDefaultURLs(t *testing.T) {
	t.Parallel()

	urls := crawl.DefaultURLs()

	require.NotEmpty(t, urls)
	assert.Contains(t, urls, "https://laravel.com/docs/12.x/installation")
	assert.Contains(t, urls, "https://laravel.com/docs/12.x/eloquent")
	for _, url := range urls {
		assert.Contains(t, url, "https://laravel.com/docs/12.x/")
	}
}

func TestPacer_FirstWaitIsImmediate(t *testing.T) {
	t.Parallel()

	p := crawl.NewPacer(time.Hour)

	start := time.Now()
	err := p.Wait(context.Background())

	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestPacer_SecondWaitIsPaced(t *testing.T) {
	t.Parallel()

	p := crawl.NewPacer(50 * time.Millisecond)

	require.NoError(t, p.Wait(context.Background()))
	start := time.Now()
	require.NoError(t, p.Wait(context.Background()))

	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestPacer_CanceledContext(t *testing.T) {
	t.Parallel()

	p := crawl.NewPacer(time.Hour)
	require.NoError(t, p.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, p.Wait(ctx))
}
