package worldgen

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// minChunk keeps per-goroutine work large enough to amortize scheduling.
const minChunk = 256

// forEachChunk splits [0, n) into contiguous ranges and runs fn over them on
// at most workers goroutines. It returns once every range is done, or with
// the context error if ctx is cancelled first. Ranges do not overlap, so fn
// may write to its own indices without locking.
func forEachChunk(ctx context.Context, n, workers int, fn func(lo, hi int)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	chunk := n / (workers * 4)
	if chunk < minChunk {
		chunk = minChunk
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
