package pipeline

import (
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/almanac/interval"
	"github.com/katalvlaran/almanac/rulemap"
)

// New seals maps, in the given order, into a Pipeline. The maps and their
// rules are copied, so later changes by the caller do not leak in.
//
// Returns ErrBadWorkers if WithWorkers was given a value below 1.
func New(maps []rulemap.RuleMap, opts ...Option) (*Pipeline, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.normalize()
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadWorkers, cfg.Workers)
	}

	sealed := make([]rulemap.RuleMap, len(maps))
	for i, m := range maps {
		sealed[i] = rulemap.RuleMap{Name: m.Name, Rules: slices.Clone(m.Rules)}
	}
	return &Pipeline{maps: sealed, opts: cfg}, nil
}

// Stages returns a copy of the pipeline's RuleMaps in application order.
func (p *Pipeline) Stages() []rulemap.RuleMap {
	out := make([]rulemap.RuleMap, len(p.maps))
	for i, m := range p.maps {
		out[i] = rulemap.RuleMap{Name: m.Name, Rules: slices.Clone(m.Rules)}
	}
	return out
}

// Len returns the number of stages.
func (p *Pipeline) Len() int {
	return len(p.maps)
}

// ApplyScalar pushes seed through every stage, left to right.
func (p *Pipeline) ApplyScalar(seed int64) int64 {
	v := seed
	for _, m := range p.maps {
		v = m.Apply(v)
	}
	return v
}

// MinimumOverSeeds returns the smallest ApplyScalar(seed) over seeds.
// Returns ErrNoSeeds if seeds is empty.
func (p *Pipeline) MinimumOverSeeds(seeds []int64) (int64, error) {
	locations := make([]int64, len(seeds))
	for i, s := range seeds {
		locations[i] = p.ApplyScalar(s)
	}
	lowest, ok := minimum(locations)
	if !ok {
		return 0, ErrNoSeeds
	}
	return lowest, nil
}

// SeedIntervals converts (start, length) pairs into closed intervals
// [start, start+length-1]. Returns ErrBadSeedRange for a pair with length ≤ 0.
func SeedIntervals(ranges []SeedRange) ([]interval.Interval, error) {
	out := make([]interval.Interval, 0, len(ranges))
	for i, r := range ranges {
		iv, err := interval.FromLength(r.Start, r.Length)
		if err != nil {
			return nil, fmt.Errorf("%w: pair %d: %w", ErrBadSeedRange, i, err)
		}
		out = append(out, iv)
	}
	return out, nil
}

// ApplyIntervals folds every stage over the interval set in. Each stage
// receives the previous stage's output and returns a new slice; in itself is
// never modified.
//
// Returns the context error if Options.Ctx is done before a stage starts,
// and interval.ErrDegenerate if in holds an interval with Start > End.
func (p *Pipeline) ApplyIntervals(in []interval.Interval) ([]interval.Interval, error) {
	current := in
	for i, m := range p.maps {
		if err := p.opts.Ctx.Err(); err != nil {
			return nil, err
		}
		var (
			next []interval.Interval
			err  error
		)
		if p.opts.Workers > 1 && len(current) > 1 {
			next, err = mapParallel(p.opts.Ctx, m, current, p.opts.Workers)
		} else {
			next, err = m.ApplyToIntervals(current)
		}
		if err != nil {
			return nil, fmt.Errorf("stage %d %q: %w", i, m.Name, err)
		}
		p.opts.Logger.Debug("stage applied",
			"stage", i,
			"map", m.Name,
			"rules", len(m.Rules),
			"in", len(current),
			"out", len(next),
		)
		current = next
	}
	if len(p.maps) == 0 {
		// Keep the "fresh output" contract even with no stages.
		current = slices.Clone(in)
	}
	return current, nil
}

// MinimumOverIntervals converts ranges to intervals, pushes them through every
// stage and returns the smallest Start of the final set.
//
// Returns ErrBadSeedRange for a bad pair and ErrEmptyResult when the final set
// is empty (which only happens when ranges is).
func (p *Pipeline) MinimumOverIntervals(ranges []SeedRange) (int64, error) {
	seeds, err := SeedIntervals(ranges)
	if err != nil {
		return 0, err
	}
	final, err := p.ApplyIntervals(seeds)
	if err != nil {
		return 0, err
	}
	starts := make([]int64, len(final))
	for i, iv := range final {
		starts[i] = iv.Start
	}
	lowest, ok := minimum(starts)
	if !ok {
		return 0, ErrEmptyResult
	}
	return lowest, nil
}

// Coverage pushes ranges through the pipeline and returns the set of final
// values, merged. Useful to inspect how fragmented the result is compared to
// how many values it actually holds.
func (p *Pipeline) Coverage(ranges []SeedRange) (*interval.Coverage, error) {
	seeds, err := SeedIntervals(ranges)
	if err != nil {
		return nil, err
	}
	final, err := p.ApplyIntervals(seeds)
	if err != nil {
		return nil, err
	}
	return interval.NewCoverage(final...), nil
}

// minimum returns the smallest element of vs; false if vs is empty.
func minimum[T constraints.Ordered](vs []T) (T, bool) {
	var lowest T
	if len(vs) == 0 {
		return lowest, false
	}
	lowest = vs[0]
	for _, v := range vs[1:] {
		if v < lowest {
			lowest = v
		}
	}
	return lowest, true
}
