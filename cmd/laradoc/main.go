package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/mwalkowski/laradoc"
	"github.com/mwalkowski/laradoc/firecrawl"
	"github.com/mwalkowski/laradoc/gemini"
	larahttp "github.com/mwalkowski/laradoc/http"
	"github.com/mwalkowski/laradoc/mem"
	"github.com/mwalkowski/laradoc/rag"
	"github.com/mwalkowski/laradoc/sqlite"
	"github.com/mwalkowski/laradoc/vector"
	"github.com/mwalkowski/laradoc/web"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Index database path. Set before calling Run().
	DBPath string

	// SQLite database holding pages and the chunk index.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		Models: gemini.DefaultModels(),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("laradoc"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'laradoc --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Models = cli.Models.Resolve()

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set LARADOC_INDEX to use a different index path\n")
		return fmt.Errorf("failed to open index at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	deps.Pages = sqlite.NewPageService(m.DB)
	deps.Index = sqlite.NewIndexStore(m.DB)
	deps.Sidebar = web.NewSidebar(nil)
	deps.Sitemap = larahttp.NewSitemap(nil)

	if cmd == "index" && !cli.Index.FromCache {
		if err := m.wireFetcher(cli, deps, stderr); err != nil {
			return err
		}
		defer deps.Fetcher.Close()
	}

	if cmd == "index" || cmd == "ask" || cmd == "chat" {
		if err := m.wireGemini(ctx, deps, stderr); err != nil {
			return err
		}
	}

	if cmd == "ask" || cmd == "chat" {
		counter, err := gemini.NewTokenCounter(tokenizerModel)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}
		deps.TokenCounter = counter
	}

	return kongCtx.Run(deps)
}

// wireFetcher selects the page fetcher for the index command: the
// Firecrawl scrape API by default, plain HTTP with local extraction when
// --local is set.
func (m *Main) wireFetcher(cli *CLI, deps *Dependencies, stderr io.Writer) error {
	if cli.Index.Local {
		deps.Fetcher = web.NewFetcher()
		return nil
	}

	fetcher, err := firecrawl.NewClient(os.Getenv("FIRECRAWL_API_KEY"))
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Set FIRECRAWL_API_KEY, or pass --local to fetch without Firecrawl")
		return err
	}
	deps.Fetcher = fetcher
	return nil
}

// wireGemini connects the Gemini client and builds the services every
// model-backed command shares.
func (m *Main) wireGemini(ctx context.Context, deps *Dependencies, stderr io.Writer) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	deps.Embedder = gemini.NewEmbedder(client, deps.Models.Embedding)
	deps.Generator = gemini.NewGenerator(client)
	return nil
}

// newEngine loads the stored index and assembles the question pipeline.
// Shared by the ask and chat commands.
func newEngine(deps *Dependencies) (*rag.Engine, error) {
	chunks, err := deps.Index.LoadChunks(deps.Ctx)
	if err != nil {
		return nil, err
	}

	ix, err := vector.New(chunks)
	if err != nil {
		return nil, err
	}

	var opts []rag.RetrieverOption
	if deps.TokenCounter != nil {
		opts = append(opts, rag.WithTokenBudget(deps.TokenCounter, rag.DefaultContextTokenBudget))
	}
	retriever := rag.NewRetriever(vector.NewSearcher(deps.Embedder, ix), opts...)

	models := deps.Models
	var tools []*rag.Tool
	for _, kind := range []laradoc.ToolKind{laradoc.ToolGeneral, laradoc.ToolVersion, laradoc.ToolFeature, laradoc.ToolInstallation} {
		tools = append(tools, rag.NewTool(kind, retriever, deps.Generator, models.ForTool(kind), models.Temperature))
	}

	orchestrator := rag.NewOrchestrator(deps.Generator, models.Orchestrator, models.Temperature)
	synthesizer := rag.NewSynthesizer(deps.Generator, models.Synthesizer, models.Temperature)

	return rag.NewEngine(orchestrator, tools, synthesizer, mem.NewHistoryService()), nil
}

// tokenizerModel selects the local tokenizer vocabulary used for the
// context token budget. All current Gemini models share it.
const tokenizerModel = "gemini-2.5-flash"

func defaultDBPath() string {
	if path := os.Getenv("LARADOC_INDEX"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "laradoc.db"
	}
	dir := filepath.Join(home, ".laradoc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "laradoc.db")
}
