package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/patdoc"
	"github.com/fwojciec/patdoc/batch"
	"github.com/fwojciec/patdoc/fs"
)

// Run executes the get command.
func (c *GetCmd) Run(deps *Dependencies) error {
	format, err := fs.ParseFormat(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", patdoc.ErrorMessage(err))
		return err
	}
	store := fs.NewStore(c.Output, format)

	processor := &batch.Processor{
		Fetcher:   deps.Fetcher,
		Extractor: deps.Extractor,
		Converter: deps.Converter,
		Store:     store,
		Catalog:   deps.Catalog,
		Force:     c.Force,
	}

	out := processor.ProcessOne(deps.Ctx, c.Source)
	if out.Err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", patdoc.ErrorMessage(out.Err))
		return out.Err
	}

	if out.Skipped {
		fmt.Fprintf(deps.Stdout, "Skipped %s (already processed, use --force to reprocess)\n", out.Identifier)
		return nil
	}

	// Read the saved record back so the console shows what was extracted
	data, err := os.ReadFile(store.RecordPath(out.Identifier))
	if err != nil {
		return err
	}
	doc, err := fs.DecodeRecord(data, format)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %s\n", store.RecordPath(out.Identifier))
	fmt.Fprintf(deps.Stdout, "  Title:    %s\n", doc.Title)
	fmt.Fprintf(deps.Stdout, "  Claims:   %d\n", len(doc.Claims))
	fmt.Fprintf(deps.Stdout, "  Cited by: %d\n", len(doc.CitedBy))

	return nil
}
