package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/patdoc"
	"github.com/fwojciec/patdoc/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	DB      *sqlite.DB
	Catalog patdoc.CatalogService

	// Retrieval pipeline, wired only for the fetch and get commands.
	Fetcher   patdoc.Fetcher
	Extractor patdoc.DocumentExtractor
	Converter patdoc.Converter
	Logger    *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Fetch     FetchCmd     `cmd:"" help:"Fetch and extract patent documents from a source list"`
	Get       GetCmd       `cmd:"" help:"Fetch and extract a single patent document"`
	Citations CitationsCmd `cmd:"" help:"List cited-by patent URLs from saved records"`
	Export    ExportCmd    `cmd:"" help:"Export saved records to a CSV summary"`
	List      ListCmd      `cmd:"" help:"List catalog records"`
	Delete    DeleteCmd    `cmd:"" help:"Delete a catalog record"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	Sources     string        `arg:"" help:"Source list file (.txt or .csv) or a single URL"`
	Output      string        `short:"o" default:"output" help:"Output directory"`
	Concurrency int           `short:"c" default:"10" help:"Concurrent fetch limit"`
	Timeout     time.Duration `short:"t" default:"30s" help:"Fetch timeout per document"`
	Force       bool          `short:"f" help:"Reprocess documents whose output already exists"`
	Limit       int           `help:"Process at most this many sources"`
	Strategy    string        `default:"pool" enum:"pool,gate" help:"Concurrency strategy (pool or gate)"`
	Format      string        `default:"yaml" enum:"yaml,json,xml" help:"Record format"`
	Browser     bool          `help:"Render pages in a headless browser"`
	Verbose     bool          `short:"v" help:"Log fetch and extraction details to stderr"`
}

// GetCmd is the "get" subcommand.
type GetCmd struct {
	Source  string        `arg:"" help:"Patent URL or local HTML file"`
	Output  string        `short:"o" default:"output" help:"Output directory"`
	Timeout time.Duration `short:"t" default:"30s" help:"Fetch timeout"`
	Force   bool          `short:"f" help:"Reprocess even if output already exists"`
	Format  string        `default:"yaml" enum:"yaml,json,xml" help:"Record format"`
	Browser bool          `help:"Render the page in a headless browser"`
	Verbose bool          `short:"v" help:"Log fetch and extraction details to stderr"`
}

// CitationsCmd is the "citations" subcommand.
type CitationsCmd struct {
	Dir    string `arg:"" help:"Directory of saved records"`
	Output string `short:"o" help:"Output file (default: <dir>/cited_by_urls.txt)"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir    string `arg:"" help:"Directory of saved records"`
	Output string `short:"o" help:"Output file (default: <dir>/patent_data.csv)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Limit int `help:"Show at most this many records"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Identifier string `arg:"" help:"Document identifier, e.g. US9876543B2"`
}

// pipelineOptions carries the flags fetch and get share for wiring the
// retrieval pipeline.
type pipelineOptions struct {
	browser bool
	timeout time.Duration
	verbose bool
}

func (c *FetchCmd) pipelineOptions() pipelineOptions {
	return pipelineOptions{browser: c.Browser, timeout: c.Timeout, verbose: c.Verbose}
}

func (c *GetCmd) pipelineOptions() pipelineOptions {
	return pipelineOptions{browser: c.Browser, timeout: c.Timeout, verbose: c.Verbose}
}
