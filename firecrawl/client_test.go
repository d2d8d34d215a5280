package firecrawl_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mwalkowski/laradoc"
	"github.com/mwalkowski/laradoc/firecrawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := firecrawl.NewClient("")

	require.Error(t, err)
	assert.Equal(t, laradoc.EUNAUTHORIZED, laradoc.ErrorCode(err))
	assert.Contains(t, laradoc.ErrorMessage(err), "FIRECRAWL_API_KEY")
}

func TestClient_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("prefers markdown content", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v2/scrape", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "https://laravel.com/docs/12.x/routing", req["url"])
			assert.Equal(t, true, req["onlyMainContent"])

			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data": map[string]any{
					"markdown": "# Routing\n\nBasic routing docs.",
					"html":     "<h1>Routing</h1>",
					"metadata": map[string]any{"title": "Routing"},
				},
			})
		}))
		defer srv.Close()

		client, err := firecrawl.NewClient("test-key", firecrawl.WithBaseURL(srv.URL))
		require.NoError(t, err)

		page, err := client.Fetch(context.Background(), "https://laravel.com/docs/12.x/routing")

		require.NoError(t, err)
		assert.Equal(t, laradoc.FormatMarkdown, page.Format)
		assert.Equal(t, "# Routing\n\nBasic routing docs.", page.Content)
		assert.Equal(t, "Routing", page.Title)
	})

	t.Run("falls back to html when markdown is absent", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data": map[string]any{
					"html": "<h1>Routing</h1>",
				},
			})
		}))
		defer srv.Close()

		client, err := firecrawl.NewClient("test-key", firecrawl.WithBaseURL(srv.URL))
		require.NoError(t, err)

		page, err := client.Fetch(context.Background(), "https://laravel.com/docs/12.x/routing")

		require.NoError(t, err)
		assert.Equal(t, laradoc.FormatHTML, page.Format)
		assert.Equal(t, "<h1>Routing</h1>", page.Content)
	})

	t.Run("429 is a typed rate-limit error preserving the retry hint", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"error":   "Rate limit exceeded. Please retry after 32s.",
			})
		}))
		defer srv.Close()

		client, err := firecrawl.NewClient("test-key", firecrawl.WithBaseURL(srv.URL))
		require.NoError(t, err)

		_, err = client.Fetch(context.Background(), "https://laravel.com/docs/12.x/routing")

		require.Error(t, err)
		assert.Equal(t, laradoc.EUNAVAILABLE, laradoc.ErrorCode(err))
		assert.Contains(t, laradoc.ErrorMessage(err), "retry after 32s")
	})

	t.Run("in-body rate limit with 200 status is still typed", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"error":   "Rate limit exceeded. Consumed 11 of 10 requests, resets in 32s, upgrade your plan.",
			})
		}))
		defer srv.Close()

		client, err := firecrawl.NewClient("test-key", firecrawl.WithBaseURL(srv.URL))
		require.NoError(t, err)

		_, err = client.Fetch(context.Background(), "https://laravel.com/docs/12.x/routing")

		require.Error(t, err)
		assert.Equal(t, laradoc.EUNAVAILABLE, laradoc.ErrorCode(err))
	})

	t.Run("unsuccessful scrape is an internal error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"error":   "page could not be rendered",
			})
		}))
		defer srv.Close()

		client, err := firecrawl.NewClient("test-key", firecrawl.WithBaseURL(srv.URL))
		require.NoError(t, err)

		_, err = client.Fetch(context.Background(), "https://laravel.com/docs/12.x/routing")

		require.Error(t, err)
		assert.Equal(t, laradoc.EINTERNAL, laradoc.ErrorCode(err))
	})

	t.Run("empty content is an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data":    map[string]any{},
			})
		}))
		defer srv.Close()

		client, err := firecrawl.NewClient("test-key", firecrawl.WithBaseURL(srv.URL))
		require.NoError(t, err)

		_, err = client.Fetch(context.Background(), "https://laravel.com/docs/12.x/routing")

		require.Error(t, err)
		assert.Equal(t, laradoc.EINTERNAL, laradoc.ErrorCode(err))
	})

	t.Run("non-200 non-429 status is a plain error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client, err := firecrawl.NewClient("test-key", firecrawl.WithBaseURL(srv.URL))
		require.NoError(t, err)

		_, err = client.Fetch(context.Background(), "https://laravel.com/docs/12.x/routing")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 502")
	})
}
