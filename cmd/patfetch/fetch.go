package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/patdoc"
	"github.com/fwojciec/patdoc/batch"
	"github.com/fwojciec/patdoc/fs"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	sources, err := readSources(c.Sources)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", patdoc.ErrorMessage(err))
		return err
	}
	if c.Limit > 0 && len(sources) > c.Limit {
		sources = sources[:c.Limit]
	}
	if len(sources) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no sources found in %s\n", c.Sources)
		return patdoc.Errorf(patdoc.EINVALID, "no sources found in %s", c.Sources)
	}

	format, err := fs.ParseFormat(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", patdoc.ErrorMessage(err))
		return err
	}
	store := fs.NewStore(c.Output, format)

	if err := os.MkdirAll(c.Output, 0755); err != nil {
		return err
	}
	logFile, err := os.Create(filepath.Join(c.Output, "extraction_errors.log"))
	if err != nil {
		return err
	}
	defer logFile.Close()
	batchLog := batch.NewLog(logFile)

	processor := &batch.Processor{
		Fetcher:   deps.Fetcher,
		Extractor: deps.Extractor,
		Converter: deps.Converter,
		Store:     store,
		Catalog:   deps.Catalog,
		Log:       batchLog,
		Force:     c.Force,
	}

	runner := newRunner(c.Strategy, processor, c.Concurrency)

	fmt.Fprintf(deps.Stdout, "Processing %d sources\n", len(sources))

	// Report progress as sources complete
	progress := func(p patdoc.FetchProgress) {
		if p.Error != nil {
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", p.Source, p.Error)
		}
		fmt.Fprintf(deps.Stdout, "\r[%d/%d] %s", p.Completed, p.Total, batch.TruncateURL(p.Source, 40))
	}

	outcomes := runner.Run(deps.Ctx, sources, progress)

	// Clear progress line
	fmt.Fprintf(deps.Stdout, "\r%80s\r", "")

	// A failed source never fails the batch; the summary reports the tally
	summary := patdoc.Summarize(outcomes)
	batchLog.Summary(summary)
	fmt.Fprint(deps.Stdout, batch.FormatSummary(summary))

	return nil
}

// newRunner selects the batch execution strategy.
func newRunner(strategy string, processor *batch.Processor, concurrency int) batch.Runner {
	if strategy == "gate" {
		return &batch.Gate{
			Processor:   processor,
			Concurrency: concurrency,
			Hosts:       batch.NewDomainLimiter(1.0),
		}
	}
	return &batch.Pool{Processor: processor, Concurrency: concurrency}
}

// readSources loads the source list: .txt and .csv files are read by
// extension, anything else is treated as a single source.
func readSources(arg string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(arg)) {
	case ".txt":
		return fs.ReadSourceList(arg)
	case ".csv":
		return fs.ReadSourceCSV(arg)
	default:
		return []string{arg}, nil
	}
}
