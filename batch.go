package mediainfo

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// InformMany inspects paths concurrently and returns their reports in input
// order. Each worker uses its own handle. The first failure cancels the
// remaining work and is returned wrapped with its path.
//
// Example:
//
//	infos, err := mediainfo.InformMany(ctx, paths, mediainfo.WithConcurrency(4))
func InformMany(ctx context.Context, paths []string, opts ...Option) ([]Info, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	o := newInformOptions(opts)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	results := make([]Info, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			// Check for cancellation
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			info, err := Inform(path, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = info
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
