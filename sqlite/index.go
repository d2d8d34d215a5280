package sqlite

import (
	"context"
	"encoding/binary"
	"math"

	"github.com/google/uuid"
	"github.com/mwalkowski/laradoc"
)

// Compile-time interface verification.
var _ laradoc.ChunkStore = (*IndexStore)(nil)

// IndexStore persists embedded chunks in SQLite. Embeddings are stored
// as little-endian float32 BLOBs.
type IndexStore struct {
	db *DB
}

// NewIndexStore creates a new IndexStore.
func NewIndexStore(db *DB) *IndexStore {
	return &IndexStore{db: db}
}

// SaveChunks replaces the stored index with the given chunks. Saving an
// empty index is rejected so a failed build cannot clobber a good one.
func (s *IndexStore) SaveChunks(ctx context.Context, chunks []*laradoc.Chunk) error {
	if len(chunks) == 0 {
		return laradoc.Errorf(laradoc.EINVALID, "no index built")
	}
	for _, chunk := range chunks {
		if err := chunk.Validate(); err != nil {
			return err
		}
		if len(chunk.Embedding) == 0 {
			return laradoc.Errorf(laradoc.EINVALID, "chunk missing embedding")
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM chunks"); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO chunks (id, source_index, position, text, embedding)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, chunk := range chunks {
		id := chunk.ID
		if id == "" {
			id = uuid.New().String()
			chunk.ID = id
		}
		if _, err := stmt.ExecContext(ctx, id, chunk.SourceIndex, chunk.Position,
			chunk.Text, encodeVector(chunk.Embedding)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadChunks returns all stored chunks in document order.
func (s *IndexStore) LoadChunks(ctx context.Context) ([]*laradoc.Chunk, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source_index, position, text, embedding
		FROM chunks
		ORDER BY source_index ASC, position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chunks []*laradoc.Chunk
	for rows.Next() {
		var chunk laradoc.Chunk
		var blob []byte
		if err := rows.Scan(&chunk.ID, &chunk.SourceIndex, &chunk.Position,
			&chunk.Text, &blob); err != nil {
			return nil, err
		}
		chunk.Embedding = decodeVector(blob)
		chunks = append(chunks, &chunk)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(chunks) == 0 {
		return nil, laradoc.Errorf(laradoc.ENOTFOUND, "no index found, run the index command first")
	}

	return chunks, nil
}

// encodeVector packs a float32 vector into a little-endian byte slice.
func encodeVector(vec []float32) []byte {
	buf := make([]byte, 4*len(vec))
	for i, v := range vec {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

// decodeVector unpacks a little-endian byte slice into a float32 vector.
func decodeVector(buf []byte) []float32 {
	vec := make([]float32, len(buf)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	return vec
}
