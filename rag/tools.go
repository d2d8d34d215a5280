package rag

import (
	"context"
	"fmt"
	"strings"

	"github.com/mwalkowski/laradoc"
)

// Per-topic system prompts. Each instructs the model to answer strictly
// from the retrieved context; the context block is appended at runtime.
const (
	versionSystemPrompt = `You are a Laravel version specialist. Analyze the documentation context and extract version information.
You are master at laravel 12 please extract the version number from the context.`

	featureSystemPrompt = `You are a Laravel feature specialist. Only follow the RAG (Retrieval-Augmented Generation) approach: analyze the provided documentation context and answer strictly based on it.

Provide:
- Clear explanations of how the feature works (from context only)
- Code examples (exactly as they appear in docs)
- Step-by-step implementation guides (from context only)
- Best practices and common use cases (from context only)
- Prerequisites or requirements (from context only)

Do not use outside knowledge. If the context does not contain the answer, say so.`

	installationSystemPrompt = `You are a Laravel installation specialist. Only follow the RAG (Retrieval-Augmented Generation) approach: analyze the provided documentation context and answer strictly based on it.
Provide:
- System requirements
- Step-by-step installation instructions
- Command examples
- Common issues and solutions
- Post-installation setup steps

Do not use outside knowledge. If the context does not contain the answer, say so.`

	generalSystemPrompt = `You are a Laravel documentation specialist. Only follow the RAG (Retrieval-Augmented Generation) approach: analyze the provided documentation context and answer strictly based on it.

Provide:
- Clear, accurate information based on the documentation context only
- Code examples when available (from context only)
- Practical guidance and best practices (from context only)
- Structured, easy-to-follow responses

Do not use outside knowledge. If the context does not contain the answer, say so.`
)

// systemPrompt returns the topic prompt for a tool.
func systemPrompt(kind laradoc.ToolKind) string {
	switch kind {
	case laradoc.ToolVersion:
		return versionSystemPrompt
	case laradoc.ToolFeature:
		return featureSystemPrompt
	case laradoc.ToolInstallation:
		return installationSystemPrompt
	default:
		return generalSystemPrompt
	}
}

// errorLabel names the tool in its failure message.
func errorLabel(kind laradoc.ToolKind) string {
	switch kind {
	case laradoc.ToolVersion:
		return "version"
	case laradoc.ToolFeature:
		return "feature"
	case laradoc.ToolInstallation:
		return "installation"
	default:
		return "general"
	}
}

// Tool is one retrieval tool: a topic-aware retrieval pass followed by a
// model call that summarizes the retrieved context for the query.
type Tool struct {
	kind        laradoc.ToolKind
	retriever   *Retriever
	gen         laradoc.Generator
	model       string
	temperature float32
}

// NewTool creates a tool of the given kind.
func NewTool(kind laradoc.ToolKind, retriever *Retriever, gen laradoc.Generator, model string, temperature float32) *Tool {
	return &Tool{
		kind:        kind,
		retriever:   retriever,
		gen:         gen,
		model:       model,
		temperature: temperature,
	}
}

// Kind returns the tool's kind.
func (t *Tool) Kind() laradoc.ToolKind {
	return t.kind
}

// Run executes the tool for a query. A tool never fails the pipeline:
// errors come back as an error string in the tool output, so the
// synthesizer can still answer from the other tools.
func (t *Tool) Run(ctx context.Context, query string) string {
	result, err := t.run(ctx, query)
	if err != nil {
		return fmt.Sprintf("Error in %s search: %v", errorLabel(t.kind), err)
	}
	return result
}

func (t *Tool) run(ctx context.Context, query string) (string, error) {
	docContext, err := t.retriever.Context(ctx, t.kind, query)
	if err != nil {
		return "", err
	}

	var system strings.Builder
	system.WriteString(systemPrompt(t.kind))
	system.WriteString("\n\nContext:\n")
	system.WriteString(docContext)

	return t.gen.Generate(ctx, laradoc.GenerateRequest{
		Model:       t.model,
		System:      system.String(),
		Prompt:      query,
		Temperature: t.temperature,
	})
}
