package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/almanac/interval"
	"github.com/katalvlaran/almanac/rulemap"
)

// mapParallel maps each interval of in through m on its own goroutine, at most
// workers at a time. Pieces are concatenated in input order, so the result is
// identical to m.ApplyToIntervals(in).
func mapParallel(ctx context.Context, m rulemap.RuleMap, in []interval.Interval, workers int) ([]interval.Interval, error) {
	parts := make([][]interval.Interval, len(in))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, iv := range in {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			pieces, err := m.MapInterval(iv)
			if err != nil {
				return err
			}
			parts[i] = pieces
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]interval.Interval, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out, nil
}
