package patdoc

import "context"

// Fetcher retrieves patent page HTML from a source location.
// Implementations cover plain HTTP, local files, and browser automation
// for client-rendered pages.
type Fetcher interface {
	// Fetch retrieves the HTML for a single source location.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
