// Package gemini implements text generation, embedding, and token
// counting with the Google Gemini API.
package gemini

import "github.com/mwalkowski/laradoc"

// Default model assignments. Planning and feature questions get the
// stronger model; the remaining stages run on the faster one.
const (
	DefaultProModel       = "gemini-2.5-pro"
	DefaultFlashModel     = "gemini-2.5-flash"
	DefaultEmbeddingModel = "gemini-embedding-001"
	DefaultTemperature    = 0.1
)

// Models maps pipeline roles to concrete Gemini model names. The zero
// value of any field falls back to the defaults via Normalize.
type Models struct {
	// Orchestrator plans which tools to run for a question.
	Orchestrator string `json:"orchestrator"`

	// General, Version, Feature and Installation answer the per-topic
	// retrieval summaries.
	General      string `json:"general"`
	Version      string `json:"version"`
	Feature      string `json:"feature"`
	Installation string `json:"installation"`

	// Synthesizer composes the final answer from tool outputs.
	Synthesizer string `json:"synthesizer"`

	// Embedding computes document and query vectors.
	Embedding string `json:"embedding"`

	// Temperature applies to all generation calls.
	Temperature float32 `json:"temperature"`
}

// DefaultModels returns the standard role-to-model assignment.
func DefaultModels() Models {
	return Models{
		Orchestrator: DefaultProModel,
		General:      DefaultFlashModel,
		Version:      DefaultFlashModel,
		Feature:      DefaultProModel,
		Installation: DefaultFlashModel,
		Synthesizer:  DefaultFlashModel,
		Embedding:    DefaultEmbeddingModel,
		Temperature:  DefaultTemperature,
	}
}

// Normalize fills empty fields from DefaultModels and returns the result.
func (m Models) Normalize() Models {
	def := DefaultModels()
	if m.Orchestrator == "" {
		m.Orchestrator = def.Orchestrator
	}
	if m.General == "" {
		m.General = def.General
	}
	if m.Version == "" {
		m.Version = def.Version
	}
	if m.Feature == "" {
		m.Feature = def.Feature
	}
	if m.Installation == "" {
		m.Installation = def.Installation
	}
	if m.Synthesizer == "" {
		m.Synthesizer = def.Synthesizer
	}
	if m.Embedding == "" {
		m.Embedding = def.Embedding
	}
	if m.Temperature == 0 {
		m.Temperature = def.Temperature
	}
	return m
}

// ForTool returns the model assigned to the given search tool.
func (m Models) ForTool(kind laradoc.ToolKind) string {
	switch kind {
	case laradoc.ToolVersion:
		return m.Version
	case laradoc.ToolFeature:
		return m.Feature
	case laradoc.ToolInstallation:
		return m.Installation
	default:
		return m.General
	}
}
