package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/patdoc"
	"github.com/fwojciec/patdoc/goquery"
	"github.com/fwojciec/patdoc/htmltomarkdown"
	pathttp "github.com/fwojciec/patdoc/http"
	"github.com/fwojciec/patdoc/readability"
	"github.com/fwojciec/patdoc/rod"
	patslog "github.com/fwojciec/patdoc/slog"
	"github.com/fwojciec/patdoc/sqlite"
	"github.com/fwojciec/patdoc/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database backing the catalog.
	DB *sqlite.DB

	// Catalog service for end-to-end testing.
	CatalogService patdoc.CatalogService
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
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("patfetch"),
		kong.Description("Fetch Google Patents pages and extract structured patent records"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'patfetch --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PATFETCH_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.CatalogService = sqlite.NewCatalogService(m.DB)
	deps.DB = m.DB
	deps.Catalog = m.CatalogService

	// Wire the retrieval pipeline for the commands that fetch
	if cmd == "fetch" || cmd == "get" {
		opts := cli.Fetch.pipelineOptions()
		if cmd == "get" {
			opts = cli.Get.pipelineOptions()
		}

		deps.Logger = newLogger(stderr, opts.verbose)

		fetcher, err := newFetcher(opts, deps.Logger)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer fetcher.Close()
		deps.Fetcher = fetcher

		deps.Extractor = patslog.NewLoggingExtractor(
			goquery.NewExtractor(trafilatura.NewExtractor(), readability.NewExtractor()),
			deps.Logger,
		)
		deps.Converter = htmltomarkdown.NewConverter()
	}

	return kongCtx.Run(deps)
}

// newFetcher builds the configured network fetcher, wrapped so that local
// file paths may appear among the sources.
func newFetcher(opts pipelineOptions, logger *slog.Logger) (patdoc.Fetcher, error) {
	var network patdoc.Fetcher
	if opts.browser {
		rf, err := rod.NewFetcher(rod.WithFetchTimeout(opts.timeout))
		if err != nil {
			return nil, err
		}
		network = rf
	} else {
		network = pathttp.NewFetcher(pathttp.WithTimeout(opts.timeout))
	}
	return patslog.NewLoggingFetcher(NewSourceFetcher(network), logger), nil
}

// newLogger returns a debug-level text logger on stderr when verbose is
// set, otherwise a logger that discards everything.
func newLogger(stderr io.Writer, verbose bool) *slog.Logger {
	if verbose {
		return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func defaultDBPath() string {
	if path := os.Getenv("PATFETCH_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "patfetch.db"
	}
	dir := filepath.Join(home, ".patfetch")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "patfetch.db")
}
