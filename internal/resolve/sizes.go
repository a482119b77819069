package resolve

import (
	"context"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Sizes stats every input concurrently and returns the byte sizes in input
// order. jobs bounds the number of concurrent stats; jobs <= 0 uses
// GOMAXPROCS. The first failure cancels the remaining work.
func Sizes(ctx context.Context, inputs []Input, jobs int) ([]int64, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	sizes := make([]int64, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(inputs)))

	for i, in := range inputs {
		i, in := i, in // per-iteration copies for pre-1.22 loop semantics
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			info, err := os.Stat(in.Path)
			if err != nil {
				return err
			}
			sizes[i] = info.Size()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sizes, nil
}
