package resample

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParallelThreshold is the output length below which StretchContext gathers
// serially.
const ParallelThreshold = 4096

// afterChunk, when set, runs after each parallel chunk is gathered.
var afterChunk func()

// StretchContext is Stretch with the output gathered by up to workers
// goroutines, each filling contiguous chunks of at most ParallelThreshold
// elements. workers <= 0 means GOMAXPROCS.
// It returns ctx.Err() if the context is done before the output is complete.
func StretchContext[T any](ctx context.Context, src []T, length, workers int) ([]T, error) {
	// Fast path for already canceled context
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := Check(len(src), length); err != nil {
		return nil, err
	}

	if length < ParallelThreshold {
		return resampled(src, length), nil
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunkSize := min((length+workers-1)/workers, ParallelThreshold)

	out := make([]T, length)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < length; lo += chunkSize {
		hi := min(lo+chunkSize, length)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			gather(out, src, lo, hi)
			if afterChunk != nil {
				afterChunk()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
