// Package vector implements in-memory cosine similarity search over
// embedded chunks.
package vector

import (
	"math"
	"sort"

	"github.com/mwalkowski/laradoc"
)

// Index holds embedded chunks for brute-force similarity search. It is
// immutable after construction and safe for concurrent use.
type Index struct {
	chunks []*laradoc.Chunk
	norms  []float32
}

// New builds an index from embedded chunks. Every chunk must carry an
// embedding of the same dimension.
func New(chunks []*laradoc.Chunk) (*Index, error) {
	if len(chunks) == 0 {
		return nil, laradoc.Errorf(laradoc.EINVALID, "no chunks to index")
	}

	dim := len(chunks[0].Embedding)
	if dim == 0 {
		return nil, laradoc.Errorf(laradoc.EINVALID, "chunk missing embedding")
	}

	norms := make([]float32, len(chunks))
	for i, chunk := range chunks {
		if len(chunk.Embedding) != dim {
			return nil, laradoc.Errorf(laradoc.EINVALID,
				"embedding dimension mismatch at chunk %d: got %d, want %d", i, len(chunk.Embedding), dim)
		}
		norms[i] = norm(chunk.Embedding)
	}

	return &Index{chunks: chunks, norms: norms}, nil
}

// Len returns the number of indexed chunks.
func (ix *Index) Len() int {
	return len(ix.chunks)
}

// Nearest returns up to k chunks closest to the query vector by cosine
// similarity, best first. Ties preserve document order.
func (ix *Index) Nearest(query []float32, k int) []laradoc.SearchResult {
	if k <= 0 || len(query) == 0 {
		return nil
	}

	qn := norm(query)
	if qn == 0 {
		return nil
	}

	results := make([]laradoc.SearchResult, 0, len(ix.chunks))
	for i, chunk := range ix.chunks {
		if ix.norms[i] == 0 || len(chunk.Embedding) != len(query) {
			continue
		}
		score := dot(query, chunk.Embedding) / (qn * ix.norms[i])
		results = append(results, laradoc.SearchResult{Chunk: chunk, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > k {
		results = results[:k]
	}
	return results
}

func dot(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func norm(v []float32) float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return float32(math.Sqrt(sum))
}
