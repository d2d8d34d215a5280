package laradoc

import "context"

// GenerateRequest describes one language model call.
type GenerateRequest struct {
	// Model names the model to use, e.g. "gemini-2.5-flash".
	Model string

	// System is the system instruction for the call.
	System string

	// History holds prior conversation turns supplied as context.
	History []Turn

	// Prompt is the user message for this call.
	Prompt string

	// Temperature controls sampling. The zero value means the provider
	// default; use a small positive value for near-deterministic output.
	Temperature float32
}

// Generator produces text from a language model. Implementations block
// until the model responds or the context is canceled.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// TokenCounter counts model tokens in text. Used to keep retrieved
// context within a model's input budget.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
