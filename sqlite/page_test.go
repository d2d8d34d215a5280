package sqlite_test

import (
	"context"
	"testing"

	"github.com/mwalkowski/laradoc"
	"github.com/mwalkowski/laradoc/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageService_ReplacePages(t *testing.T) {
	t.Parallel()

	t.Run("stores pages with hash and position", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPageService(db)
		ctx := context.Background()

		pages := []*laradoc.Page{
			{URL: "https://laravel.com/docs/12.x/routing", Title: "Routing", Content: "# Routing\n\nBasic routing accepts a URI and a closure.", Format: laradoc.FormatMarkdown},
			{URL: "https://laravel.com/docs/12.x/cache", Title: "Cache", Content: "# Cache\n\nLaravel provides a unified caching API.", Format: laradoc.FormatMarkdown},
		}
		require.NoError(t, svc.ReplacePages(ctx, pages))

		var hash string
		err := db.QueryRowContext(ctx, "SELECT content_hash FROM pages WHERE url = ?", pages[0].URL).Scan(&hash)
		require.NoError(t, err)
		assert.NotEmpty(t, hash)

		found, err := svc.FindPages(ctx)
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, pages[0].URL, found[0].URL)
		assert.Equal(t, pages[1].URL, found[1].URL)
	})

	t.Run("rejects empty page set", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPageService(db)

		err := svc.ReplacePages(context.Background(), nil)

		require.Error(t, err)
		assert.Equal(t, laradoc.EINVALID, laradoc.ErrorCode(err))
	})

	t.Run("rejects invalid page", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPageService(db)

		err := svc.ReplacePages(context.Background(), []*laradoc.Page{{URL: "https://laravel.com/docs"}})

		require.Error(t, err)
		assert.Equal(t, laradoc.EINVALID, laradoc.ErrorCode(err))
	})

	t.Run("defaults empty format to markdown", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPageService(db)
		ctx := context.Background()

		require.NoError(t, svc.ReplacePages(ctx, []*laradoc.Page{
			{URL: "https://laravel.com/docs/12.x/cache", Content: "cache docs"},
		}))

		pages, err := svc.FindPages(ctx)
		require.NoError(t, err)
		require.Len(t, pages, 1)
		assert.Equal(t, laradoc.FormatMarkdown, pages[0].Format)
	})

	t.Run("replaces a previous harvest", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPageService(db)
		ctx := context.Background()

		require.NoError(t, svc.ReplacePages(ctx, []*laradoc.Page{
			{URL: "https://laravel.com/docs/12.x/errors", Content: "errors docs"},
		}))
		require.NoError(t, svc.ReplacePages(ctx, []*laradoc.Page{
			{URL: "https://laravel.com/docs/12.x/queues", Content: "queues docs"},
		}))

		pages, err := svc.FindPages(ctx)
		require.NoError(t, err)
		require.Len(t, pages, 1)
		assert.Equal(t, "https://laravel.com/docs/12.x/queues", pages[0].URL)
	})

	t.Run("skips the write when content is unchanged", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPageService(db)
		ctx := context.Background()

		pages := []*laradoc.Page{
			{URL: "https://laravel.com/docs/12.x/routing", Content: "routing docs"},
			{URL: "https://laravel.com/docs/12.x/cache", Content: "cache docs"},
		}
		require.NoError(t, svc.ReplacePages(ctx, pages))

		var before string
		require.NoError(t, db.QueryRowContext(ctx, "SELECT id FROM pages WHERE url = ?", pages[0].URL).Scan(&before))

		require.NoError(t, svc.ReplacePages(ctx, pages))

		var after string
		require.NoError(t, db.QueryRowContext(ctx, "SELECT id FROM pages WHERE url = ?", pages[0].URL).Scan(&after))
		assert.Equal(t, before, after, "unchanged content keeps the stored rows")
	})

	t.Run("changed content rewrites the pages", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPageService(db)
		ctx := context.Background()

		url := "https://laravel.com/docs/12.x/routing"
		require.NoError(t, svc.ReplacePages(ctx, []*laradoc.Page{{URL: url, Content: "routing docs"}}))

		var before string
		require.NoError(t, db.QueryRowContext(ctx, "SELECT id FROM pages WHERE url = ?", url).Scan(&before))

		require.NoError(t, svc.ReplacePages(ctx, []*laradoc.Page{{URL: url, Content: "routing docs, revised"}}))

		var after string
		require.NoError(t, db.QueryRowContext(ctx, "SELECT id FROM pages WHERE url = ?", url).Scan(&after))
		assert.NotEqual(t, before, after)

		pages, err := svc.FindPages(ctx)
		require.NoError(t, err)
		require.Len(t, pages, 1)
		assert.Equal(t, "routing docs, revised", pages[0].Content)
	})
}

func TestPageService_FindPages(t *testing.T) {
	t.Parallel()

	t.Run("returns pages in harvest order", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPageService(db)
		ctx := context.Background()

		require.NoError(t, svc.ReplacePages(ctx, []*laradoc.Page{
			{URL: "https://laravel.com/docs/12.x/installation", Content: "install"},
			{URL: "https://laravel.com/docs/12.x/routing", Content: "routing"},
			{URL: "https://laravel.com/docs/12.x/queues", Content: "queues"},
		}))

		pages, err := svc.FindPages(ctx)
		require.NoError(t, err)
		require.Len(t, pages, 3)
		assert.Equal(t, "https://laravel.com/docs/12.x/installation", pages[0].URL)
		assert.Equal(t, "https://laravel.com/docs/12.x/routing", pages[1].URL)
		assert.Equal(t, "https://laravel.com/docs/12.x/queues", pages[2].URL)
	})

	t.Run("empty database returns no pages", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPageService(db)

		pages, err := svc.FindPages(context.Background())
		require.NoError(t, err)
		assert.Empty(t, pages)
	})
}
