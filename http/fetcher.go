// Package http provides an HTTP-based implementation of patdoc.Fetcher
// for retrieving patent pages that don't require JavaScript rendering.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/patdoc"
)

// DefaultFetchTimeout is the default timeout for HTTP requests. Patent
// pages are large and the upstream can be slow, so this is deliberately
// generous.
const DefaultFetchTimeout = 30 * time.Second

// DefaultMaxConnsPerHost caps connections to one origin so a batch never
// overwhelms a single host regardless of the concurrency limit.
const DefaultMaxConnsPerHost = 5

// DefaultUserAgent is a browser-like user agent. Patent sites serve
// reduced markup, or none at all, to clients that identify as bots.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Ensure Fetcher implements patdoc.Fetcher at compile time.
var _ patdoc.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests
// with a browser-like header set. Unlike rod.Fetcher it does not execute
// JavaScript.
type Fetcher struct {
	client          *http.Client
	timeout         time.Duration
	userAgent       string
	maxConnsPerHost int
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxConnsPerHost caps simultaneous connections per origin host.
// Defaults to DefaultMaxConnsPerHost (5) if not specified.
func WithMaxConnsPerHost(n int) Option {
	return func(f *Fetcher) {
		f.maxConnsPerHost = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:         DefaultFetchTimeout,
		userAgent:       DefaultUserAgent,
		maxConnsPerHost: DefaultMaxConnsPerHost,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
		Transport: &http.Transport{
			MaxConnsPerHost:     f.maxConnsPerHost,
			MaxIdleConnsPerHost: f.maxConnsPerHost,
		},
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases idle connections held by the transport.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
