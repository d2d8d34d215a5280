package mock

import (
	"context"

	"github.com/mwalkowski/laradoc"
)

var _ laradoc.ChunkStore = (*ChunkStore)(nil)

// ChunkStore is a mock implementation of laradoc.ChunkStore.
type ChunkStore struct {
	SaveChunksFn func(ctx context.Context, chunks []*laradoc.Chunk) error
	LoadChunksFn func(ctx context.Context) ([]*laradoc.Chunk, error)
}

func (s *ChunkStore) SaveChunks(ctx context.Context, chunks []*laradoc.Chunk) error {
	return s.SaveChunksFn(ctx, chunks)
}

func (s *ChunkStore) LoadChunks(ctx context.Context) ([]*laradoc.Chunk, error) {
	return s.LoadChunksFn(ctx)
}
