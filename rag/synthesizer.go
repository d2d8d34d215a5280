package rag

import (
	"context"
	"fmt"
	"strings"

	"github.com/mwalkowski/laradoc"
)

const synthesizerSystemPrompt = `You are a world-class Laravel documentation assistant. Your job is to answer the user's question using ONLY the information provided in 'Tool Results' below.

INSTRUCTIONS:
- Do NOT reference the tools or mention which tool was used.
- Do NOT say "based on the information provided" or similar.
- Use ONLY the content from 'Tool Results' to answer.
- If the context does not contain the answer, say so politely.
- Provide step-by-step instructions, code examples, and practical guidance as found in the Tool Results.
- Be clear, concise, and professional.
- Format code blocks using triple backticks.
- If multiple results are provided, synthesize them into a single, coherent answer.

Tool Results:
%s

Answer the user's question using only the information above.`

// ToolResult is one tool's output, labeled with the tool's wire name.
type ToolResult struct {
	Name   string
	Output string
}

// CombineResults renders tool outputs as the block fed to the
// synthesizer prompt.
func CombineResults(results []ToolResult) string {
	parts := make([]string, 0, len(results))
	for _, r := range results {
		parts = append(parts, fmt.Sprintf("Tool '%s' result:\n%s", r.Name, r.Output))
	}
	return strings.Join(parts, "\n\n")
}

// Synthesizer composes the final answer from tool outputs.
type Synthesizer struct {
	gen         laradoc.Generator
	model       string
	temperature float32
}

// NewSynthesizer creates a Synthesizer.
func NewSynthesizer(gen laradoc.Generator, model string, temperature float32) *Synthesizer {
	return &Synthesizer{gen: gen, model: model, temperature: temperature}
}

// Synthesize answers the question from the tool results, with the
// session's prior turns as conversational context.
func (s *Synthesizer) Synthesize(ctx context.Context, question string, history []laradoc.Turn, results []ToolResult) (string, error) {
	answer, err := s.gen.Generate(ctx, laradoc.GenerateRequest{
		Model:       s.model,
		System:      fmt.Sprintf(synthesizerSystemPrompt, CombineResults(results)),
		History:     history,
		Prompt:      question,
		Temperature: s.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("synthesizing answer: %w", err)
	}
	return answer, nil
}
