package main

import (
	"context"
	"strings"

	"github.com/fwojciec/patdoc"
	"github.com/fwojciec/patdoc/fs"
)

// Ensure SourceFetcher implements patdoc.Fetcher at compile time.
var _ patdoc.Fetcher = (*SourceFetcher)(nil)

// SourceFetcher routes each source to the right fetcher: URLs go to the
// network fetcher, anything else is read from the local filesystem. Source
// lists may mix both forms, so the pipeline needs one fetcher that accepts
// either.
type SourceFetcher struct {
	network patdoc.Fetcher
	local   patdoc.Fetcher
}

// NewSourceFetcher creates a SourceFetcher around the given network fetcher.
func NewSourceFetcher(network patdoc.Fetcher) *SourceFetcher {
	return &SourceFetcher{network: network, local: fs.NewFetcher()}
}

// Fetch retrieves the HTML for a URL or local path.
func (f *SourceFetcher) Fetch(ctx context.Context, source string) (string, error) {
	if isURL(source) {
		return f.network.Fetch(ctx, source)
	}
	return f.local.Fetch(ctx, source)
}

// Close releases the network fetcher's resources.
func (f *SourceFetcher) Close() error {
	return f.network.Close()
}

// isURL reports whether the source names a network location rather than a
// local file.
func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
