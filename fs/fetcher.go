package fs

import (
	"context"
	"os"

	"github.com/fwojciec/patdoc"
)

// Ensure Fetcher implements patdoc.Fetcher at compile time.
var _ patdoc.Fetcher = (*Fetcher)(nil)

// Fetcher reads page HTML from local files. It lets saved pages be
// reprocessed through the extraction pipeline without network access.
type Fetcher struct{}

// NewFetcher creates a local file Fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{}
}

// Fetch reads the file at path and returns its contents.
func (f *Fetcher) Fetch(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Close implements patdoc.Fetcher. It is a no-op.
func (f *Fetcher) Close() error {
	return nil
}
