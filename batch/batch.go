// Package batch orchestrates concurrent retrieval and extraction of
// patent documents. It coordinates fetching, extraction, Markdown
// conversion and storage for an ordered list of sources, with bounded
// concurrency and per-item failure isolation.
package batch

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/patdoc"
)

// DefaultConcurrency bounds in-flight sources when the caller does not
// configure a limit.
const DefaultConcurrency = 10

// Runner executes a batch of sources, one ProcessOne call per source.
// The returned slice is in input order regardless of completion order,
// with one outcome per source. Per-item failures are recorded in the
// outcomes, never returned; the call returns only after every source has
// completed.
type Runner interface {
	Run(ctx context.Context, sources []string, progress patdoc.ProgressFunc) []patdoc.Outcome
}

// indexed carries a completed outcome back to its input-order slot.
type indexed struct {
	position int
	outcome  patdoc.Outcome
}

// Processor holds the per-item pipeline shared by all execution
// strategies: skip check, fetch with retry, extract, convert, persist.
type Processor struct {
	Fetcher   patdoc.Fetcher
	Extractor patdoc.DocumentExtractor
	Converter patdoc.Converter
	Store     patdoc.DocumentStore

	// Catalog, when set, records each processed document. Recording is
	// best effort and never fails the item.
	Catalog patdoc.CatalogService

	// Log, when set, receives an ERROR line for every failed item.
	Log *Log

	// RetryDelays configures fetch retry backoff. Nil means the defaults.
	RetryDelays []time.Duration

	// Timeout bounds one item's processing. Zero means no per-item bound
	// beyond the fetcher's own.
	Timeout time.Duration

	// Force reprocesses sources whose output already exists.
	Force bool
}

// ProcessOne runs the full pipeline for a single source and classifies
// the result. It never returns an error: failures are recorded in the
// outcome so that batch strategies can treat every item uniformly.
func (p *Processor) ProcessOne(ctx context.Context, source string) patdoc.Outcome {
	out := patdoc.Outcome{Source: source, Identifier: ProvisionalIdentifier(source)}

	if !p.Force && out.Identifier != "" && p.Store.Exists(out.Identifier) {
		out.Skipped = true
		return out
	}

	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	delays := p.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, source, p.Fetcher.Fetch, nil, delays)
	if err != nil {
		return p.fail(out, err)
	}

	doc, err := p.Extractor.Extract(html)
	if err != nil {
		return p.fail(out, err)
	}
	if doc.Identifier == "" {
		return p.fail(out, patdoc.Errorf(patdoc.EINVALID, "no document number found in %s", source))
	}
	out.Identifier = doc.Identifier
	out.Title = doc.Title

	var rendition string
	if p.Converter != nil {
		if rendition, err = p.Converter.Convert(html); err != nil {
			return p.fail(out, err)
		}
	}

	if err := p.Store.Save(ctx, doc, rendition); err != nil {
		return p.fail(out, err)
	}

	p.recordDocument(ctx, doc, source, rendition)

	return out
}

// fail finalizes a failed outcome and appends it to the batch log.
func (p *Processor) fail(out patdoc.Outcome, err error) patdoc.Outcome {
	out.Err = err
	if p.Log != nil {
		p.Log.Error(out.Source, err)
	}
	return out
}

// recordDocument registers the processed document in the catalog. A
// catalog failure never fails the item: the record on disk is the source
// of truth and the catalog can be rebuilt from it.
func (p *Processor) recordDocument(ctx context.Context, doc *patdoc.PatentDocument, source, rendition string) {
	if p.Catalog == nil {
		return
	}
	_ = p.Catalog.RecordDocument(ctx, &patdoc.CatalogRecord{
		Identifier:  doc.Identifier,
		SourceURL:   source,
		Title:       doc.Title,
		ClaimCount:  len(doc.Claims),
		ContentHash: ComputeHash(rendition),
		FetchedAt:   time.Now().UTC(),
	})
}

// ProvisionalIdentifier derives the identifier a source is expected to
// produce, used for the skip check before any fetch. URL sources carry it
// in the /patent/<ID>/ path segment; local paths use the file base name.
// Returns "" when the source encodes no identifier, which disables the
// skip check for that source.
func ProvisionalIdentifier(source string) string {
	if i := strings.Index(source, "/patent/"); i >= 0 {
		id := source[i+len("/patent/"):]
		if j := strings.IndexAny(id, "/?#"); j >= 0 {
			id = id[:j]
		}
		return id
	}
	if strings.Contains(source, "://") {
		return ""
	}
	base := path.Base(strings.ReplaceAll(source, "\\", "/"))
	base = strings.TrimSuffix(base, path.Ext(base))
	if base == "." || base == "/" {
		return ""
	}
	return base
}

// ComputeHash computes a content hash using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
