package gemini

import (
	"context"

	"github.com/mwalkowski/laradoc"
	"google.golang.org/genai"
)

// Ensure Embedder implements laradoc.Embedder at compile time.
var _ laradoc.Embedder = (*Embedder)(nil)

// MaxEmbedBatch is the largest number of texts sent in one API call.
const MaxEmbedBatch = 100

// Embedder implements laradoc.Embedder using the Gemini embedding API.
type Embedder struct {
	client *genai.Client
	model  string
}

// NewEmbedder creates a new Embedder. If model is empty,
// DefaultEmbeddingModel is used.
func NewEmbedder(client *genai.Client, model string) *Embedder {
	if model == "" {
		model = DefaultEmbeddingModel
	}
	return &Embedder{client: client, model: model}
}

// Embed returns one vector per input text, in input order. Large inputs
// are split into batches of MaxEmbedBatch.
func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	for i, text := range texts {
		if text == "" {
			return nil, laradoc.Errorf(laradoc.EINVALID, "empty text at position %d", i)
		}
	}

	vectors := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += MaxEmbedBatch {
		end := min(start+MaxEmbedBatch, len(texts))

		contents := make([]*genai.Content, 0, end-start)
		for _, text := range texts[start:end] {
			contents = append(contents, genai.NewContentFromText(text, genai.RoleUser))
		}

		resp, err := e.client.Models.EmbedContent(ctx, e.model, contents, nil)
		if err != nil {
			return nil, err
		}
		if resp == nil || len(resp.Embeddings) != end-start {
			return nil, laradoc.Errorf(laradoc.EINTERNAL, "embedding count mismatch: want %d", end-start)
		}
		for _, emb := range resp.Embeddings {
			if emb == nil || len(emb.Values) == 0 {
				return nil, laradoc.Errorf(laradoc.EINTERNAL, "empty embedding returned")
			}
			vectors = append(vectors, emb.Values)
		}
	}

	return vectors, nil
}
