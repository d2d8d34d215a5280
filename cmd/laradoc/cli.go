package main

import (
	"context"
	"io"

	"github.com/mwalkowski/laradoc"
	"github.com/mwalkowski/laradoc/gemini"
	larahttp "github.com/mwalkowski/laradoc/http"
	"github.com/mwalkowski/laradoc/web"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdin        io.Reader
	Stdout       io.Writer
	Stderr       io.Writer
	Models       gemini.Models
	Pages        laradoc.PageService
	Index        laradoc.ChunkStore
	Fetcher      laradoc.Fetcher
	Embedder     laradoc.Embedder
	Generator    laradoc.Generator
	TokenCounter laradoc.TokenCounter
	Sidebar      *web.Sidebar
	Sitemap      *larahttp.Sitemap
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Index    IndexCmd    `cmd:"" help:"Fetch the Laravel docs and build the search index"`
	Discover DiscoverCmd `cmd:"" help:"Print the URLs that would be indexed"`
	Ask      AskCmd      `cmd:"" help:"Ask a single question about the Laravel docs"`
	Chat     ChatCmd     `cmd:"" help:"Start an interactive question session"`

	Models ModelFlags `embed:""`
}

// ModelFlags overrides the default role-to-model assignment. Unset flags
// keep their defaults.
type ModelFlags struct {
	ModelOrchestrator string  `help:"Model that plans which searches to run" placeholder:"NAME"`
	ModelGeneral      string  `help:"Model for general documentation searches" placeholder:"NAME"`
	ModelVersion      string  `help:"Model for version searches" placeholder:"NAME"`
	ModelFeature      string  `help:"Model for feature searches" placeholder:"NAME"`
	ModelInstallation string  `help:"Model for installation searches" placeholder:"NAME"`
	ModelSynthesizer  string  `help:"Model that composes the final answer" placeholder:"NAME"`
	ModelEmbedding    string  `help:"Embedding model for indexing and search" placeholder:"NAME"`
	Temperature       float32 `help:"Sampling temperature for all generation calls"`
}

// Resolve converts the flags into a complete model assignment, filling
// unset roles with the defaults.
func (f ModelFlags) Resolve() gemini.Models {
	return gemini.Models{
		Orchestrator: f.ModelOrchestrator,
		General:      f.ModelGeneral,
		Version:      f.ModelVersion,
		Feature:      f.ModelFeature,
		Installation: f.ModelInstallation,
		Synthesizer:  f.ModelSynthesizer,
		Embedding:    f.ModelEmbedding,
		Temperature:  f.Temperature,
	}.Normalize()
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	URL       []string `short:"u" help:"Index specific URLs instead of the default page list (repeatable)"`
	Local     bool     `help:"Fetch with plain HTTP and local extraction instead of Firecrawl"`
	FromCache bool     `help:"Rebuild the index from cached pages instead of refetching"`
	Delay     int      `short:"d" default:"2" help:"Seconds to wait between requests"`
}

// DiscoverCmd is the "discover" subcommand.
type DiscoverCmd struct {
	Sitemap bool   `help:"Discover URLs from the site's sitemap instead of the docs sidebar"`
	Base    string `default:"https://laravel.com/docs/12.x" help:"Documentation base URL"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to ask about the Laravel documentation"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct {
	Session string `default:"default" help:"Session ID for conversation history"`
}
