package batch

import (
	"context"

	"github.com/fwojciec/patdoc"
	"golang.org/x/sync/errgroup"
)

var _ Runner = (*Pool)(nil)

// Pool runs sources through a bounded worker pool: at most Concurrency
// workers each run the full per-item pipeline synchronously.
type Pool struct {
	Processor   *Processor
	Concurrency int
}

// Run processes all sources and returns their outcomes in input order.
func (p *Pool) Run(ctx context.Context, sources []string, progress patdoc.ProgressFunc) []patdoc.Outcome {
	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(sources)
	outcomes := make([]patdoc.Outcome, total)
	resultCh := make(chan indexed, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, source := range sources {
			i, source := i, source
			g.Go(func() error {
				resultCh <- indexed{position: i, outcome: p.Processor.ProcessOne(gctx, source)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	collect(outcomes, resultCh, progress)

	return outcomes
}

// collect drains completed outcomes into their input-order slots,
// reporting progress as each arrives. It returns only after the result
// channel closes, which is the batch's join point.
func collect(outcomes []patdoc.Outcome, resultCh <-chan indexed, progress patdoc.ProgressFunc) {
	completed := 0
	for r := range resultCh {
		completed++
		outcomes[r.position] = r.outcome
		if progress != nil {
			progress(patdoc.FetchProgress{
				Source:    r.outcome.Source,
				Completed: completed,
				Total:     len(outcomes),
				Error:     r.outcome.Err,
			})
		}
	}
}
