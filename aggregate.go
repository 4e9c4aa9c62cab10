package pagesift

import (
	"context"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Progress reports how many segments have been answered.
type Progress struct {
	Completed int
	Total     int
}

// ProgressFunc is called after every answered segment.
type ProgressFunc func(Progress)

// Aggregator sends segments to a Model and joins the answers.
type Aggregator struct {
	Model Model

	// Concurrency bounds the number of in-flight model calls.
	// Values below 2 process segments strictly one after another.
	Concurrency int

	// Progress, if set, is called after each segment is answered.
	// With Concurrency > 1 it may be called from several goroutines.
	Progress ProgressFunc
}

// Run asks the model about every segment and returns the answers joined by
// newlines in segment order.
//
// The first model error aborts the run: no further segments are sent and
// the error is returned without a partial result.
func (a *Aggregator) Run(ctx context.Context, segments []string, description string) (string, error) {
	if description == "" {
		return "", Errorf(EINVALID, "parse description required")
	}
	if len(segments) == 0 {
		return "", nil
	}

	results := make([]string, len(segments))
	var completed atomic.Int64
	report := func() {
		n := completed.Add(1)
		if a.Progress != nil {
			a.Progress(Progress{Completed: int(n), Total: len(segments)})
		}
	}

	if a.Concurrency < 2 {
		for i, segment := range segments {
			answer, err := a.Model.Generate(ctx, BuildPrompt(segment, description))
			if err != nil {
				return "", err
			}
			results[i] = answer
			report()
		}
		return strings.Join(results, "\n"), nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.Concurrency)
	for i, segment := range segments {
		g.Go(func() error {
			// A sibling already failed; don't send more work.
			if err := gctx.Err(); err != nil {
				return err
			}
			answer, err := a.Model.Generate(gctx, BuildPrompt(segment, description))
			if err != nil {
				return err
			}
			results[i] = answer
			report()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}
	return strings.Join(results, "\n"), nil
}
