package sqlite_test

import (
	"context"
	"testing"

	"github.com/mwalkowski/laradoc"
	"github.com/mwalkowski/laradoc/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexStore_SaveChunks(t *testing.T) {
	t.Parallel()

	t.Run("round-trips chunks with embeddings", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewIndexStore(db)
		ctx := context.Background()

		chunks := []*laradoc.Chunk{
			{SourceIndex: 0, Position: 0, Text: "routing basics", Embedding: []float32{0.1, -0.2, 0.3}},
			{SourceIndex: 0, Position: 1, Text: "route parameters", Embedding: []float32{0.4, 0.5, -0.6}},
			{SourceIndex: 1, Position: 0, Text: "queue workers", Embedding: []float32{-0.7, 0.8, 0.9}},
		}

		require.NoError(t, store.SaveChunks(ctx, chunks))

		loaded, err := store.LoadChunks(ctx)
		require.NoError(t, err)
		require.Len(t, loaded, 3)
		for i, chunk := range loaded {
			assert.NotEmpty(t, chunk.ID)
			assert.Equal(t, chunks[i].SourceIndex, chunk.SourceIndex)
			assert.Equal(t, chunks[i].Position, chunk.Position)
			assert.Equal(t, chunks[i].Text, chunk.Text)
			assert.Equal(t, chunks[i].Embedding, chunk.Embedding)
		}
	})

	t.Run("rejects empty index", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewIndexStore(db)

		err := store.SaveChunks(context.Background(), nil)

		require.Error(t, err)
		assert.Equal(t, laradoc.EINVALID, laradoc.ErrorCode(err))
		assert.Contains(t, laradoc.ErrorMessage(err), "no index built")
	})

	t.Run("rejects chunk without embedding", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewIndexStore(db)

		err := store.SaveChunks(context.Background(), []*laradoc.Chunk{
			{SourceIndex: 0, Position: 0, Text: "no vector"},
		})

		require.Error(t, err)
		assert.Equal(t, laradoc.EINVALID, laradoc.ErrorCode(err))
	})

	t.Run("replaces previous index", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewIndexStore(db)
		ctx := context.Background()

		first := []*laradoc.Chunk{{SourceIndex: 0, Position: 0, Text: "old", Embedding: []float32{1}}}
		require.NoError(t, store.SaveChunks(ctx, first))

		second := []*laradoc.Chunk{{SourceIndex: 0, Position: 0, Text: "new", Embedding: []float32{2}}}
		require.NoError(t, store.SaveChunks(ctx, second))

		loaded, err := store.LoadChunks(ctx)
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Equal(t, "new", loaded[0].Text)
	})
}

func TestIndexStore_LoadChunks_Empty(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	store := sqlite.NewIndexStore(db)

	_, err := store.LoadChunks(context.Background())

	require.Error(t, err)
	assert.Equal(t, laradoc.ENOTFOUND, laradoc.ErrorCode(err))
	assert.Contains(t, laradoc.ErrorMessage(err), "no index found")
}

func TestIndexStore_Persistence(t *testing.T) {
	t.Parallel()

	path := t.TempDir() + "/index.db"
	ctx := context.Background()

	db := sqlite.NewDB(path)
	require.NoError(t, db.Open())
	store := sqlite.NewIndexStore(db)
	require.NoError(t, store.SaveChunks(ctx, []*laradoc.Chunk{
		{SourceIndex: 0, Position: 0, Text: "persisted", Embedding: []float32{0.5, 0.5}},
	}))
	require.NoError(t, db.Close())

	// Reopen and verify the index survived.
	db2 := sqlite.NewDB(path)
	require.NoError(t, db2.Open())
	defer db2.Close()

	loaded, err := sqlite.NewIndexStore(db2).LoadChunks(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "persisted", loaded[0].Text)
}
