package laradoc

import "context"

// Default chunking parameters. A chunk is the unit stored and retrieved
// by the index: a fixed-size window of source text, overlapping with its
// neighbors so section boundaries are not lost.
const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200
)

// Chunk represents a slice of a source page optimized for embedding and
// retrieval. Chunks are immutable once created and owned by the index.
type Chunk struct {
	ID          string    `json:"id"`
	SourceIndex int       `json:"sourceIndex"`
	Position    int       `json:"position"`
	Text        string    `json:"text"`
	Embedding   []float32 `json:"embedding,omitempty"`
}

// Validate returns an error if the chunk contains invalid fields.
func (c *Chunk) Validate() error {
	if c.Text == "" {
		return Errorf(EINVALID, "chunk text required")
	}
	if c.SourceIndex < 0 {
		return Errorf(EINVALID, "chunk source index must not be negative")
	}
	return nil
}

// SplitText splits text into windows of at most size runes, with overlap
// runes shared between consecutive windows. Document order is preserved.
// Text no longer than size is returned as a single chunk, which makes the
// split idempotent: re-splitting any produced chunk with the same
// parameters yields that chunk unchanged.
func SplitText(text string, size, overlap int) []string {
	if text == "" {
		return nil
	}
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}

	runes := []rune(text)
	if len(runes) <= size {
		return []string{text}
	}

	step := size - overlap
	chunks := make([]string, 0, (len(runes)+step-1)/step)
	for start := 0; start < len(runes); start += step {
		end := start + size
		if end >= len(runes) {
			chunks = append(chunks, string(runes[start:]))
			break
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

// SplitPages chunks filtered pages in order, tagging each chunk with the
// index of the page it came from.
func SplitPages(pages []*Page, size, overlap int) []*Chunk {
	var chunks []*Chunk
	for i, page := range pages {
		for j, text := range SplitText(page.Content, size, overlap) {
			chunks = append(chunks, &Chunk{
				SourceIndex: i,
				Position:    j,
				Text:        text,
			})
		}
	}
	return chunks
}

// SearchResult represents a similarity search match.
type SearchResult struct {
	Chunk *Chunk  `json:"chunk"`
	Score float32 `json:"score"`
}

// Index provides similarity search over embedded chunks. Once loaded an
// index is read-only for the lifetime of a session.
type Index interface {
	// Search returns the k nearest chunks to the query text by embedding
	// distance. Returns EINTERNAL if no index has been loaded.
	Search(ctx context.Context, query string, k int) ([]SearchResult, error)
}

// Embedder computes embedding vectors for a batch of texts. The result
// has one vector per input, in input order.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// ChunkStore persists embedded chunks between sessions.
type ChunkStore interface {
	// SaveChunks replaces the stored index with the given chunks.
	// Returns EINVALID when chunks is empty.
	SaveChunks(ctx context.Context, chunks []*Chunk) error

	// LoadChunks returns all stored chunks in insertion order.
	// Returns ENOTFOUND when no index has been saved.
	LoadChunks(ctx context.Context) ([]*Chunk, error)
}
