package batch

import (
	"context"
	"net/url"
	"sync"

	"github.com/fwojciec/patdoc"
	"golang.org/x/sync/semaphore"
)

var _ Runner = (*Gate)(nil)

// Gate runs sources under a counting admission gate: every source gets a
// goroutine up front, but at most Concurrency of them may hold the gate
// at once, which caps simultaneously in-flight fetches at the same limit
// a worker pool would. Hosts, when set, additionally spaces requests to
// the same origin.
type Gate struct {
	Processor   *Processor
	Concurrency int
	Hosts       *DomainLimiter
}

// Run processes all sources and returns their outcomes in input order.
func (g *Gate) Run(ctx context.Context, sources []string, progress patdoc.ProgressFunc) []patdoc.Outcome {
	concurrency := g.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	sem := semaphore.NewWeighted(int64(concurrency))

	total := len(sources)
	outcomes := make([]patdoc.Outcome, total)
	resultCh := make(chan indexed, total)

	var wg sync.WaitGroup
	for i, source := range sources {
		i, source := i, source
		wg.Add(1)
		go func() {
			defer wg.Done()
			resultCh <- indexed{position: i, outcome: g.processGated(ctx, sem, source)}
		}()
	}
	go func() {
		wg.Wait()
		close(resultCh)
	}()

	collect(outcomes, resultCh, progress)

	return outcomes
}

// processGated acquires the admission gate and the per-host rate slot,
// then runs the shared pipeline. Gate acquisition fails only on context
// cancellation.
func (g *Gate) processGated(ctx context.Context, sem *semaphore.Weighted, source string) patdoc.Outcome {
	if err := sem.Acquire(ctx, 1); err != nil {
		return patdoc.Outcome{Source: source, Identifier: ProvisionalIdentifier(source), Err: err}
	}
	defer sem.Release(1)

	if g.Hosts != nil {
		if host := sourceHost(source); host != "" {
			if err := g.Hosts.Wait(ctx, host); err != nil {
				return patdoc.Outcome{Source: source, Identifier: ProvisionalIdentifier(source), Err: err}
			}
		}
	}

	return g.Processor.ProcessOne(ctx, source)
}

// sourceHost extracts the host from a URL source. Local paths have no
// host and are exempt from per-host limiting.
func sourceHost(source string) string {
	u, err := url.Parse(source)
	if err != nil {
		return ""
	}
	return u.Host
}
