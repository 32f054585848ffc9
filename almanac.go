package almanac

import (
	"fmt"
	"io"

	"github.com/katalvlaran/almanac/parser"
	"github.com/katalvlaran/almanac/pipeline"
)

// Result holds both answers for one almanac.
//   - Scalar: lowest location over the individual seeds.
//   - Bulk:   lowest location over the seeds read as (start, length) ranges.
type Result struct {
	Seeds  int   `json:"seeds" yaml:"seeds"`
	Maps   int   `json:"maps" yaml:"maps"`
	Scalar int64 `json:"scalar" yaml:"scalar"`
	Bulk   int64 `json:"bulk" yaml:"bulk"`
}

// Solve parses r and computes both reductions with a pipeline built from opts.
func Solve(r io.Reader, opts ...pipeline.Option) (Result, error) {
	a, err := parser.Parse(r)
	if err != nil {
		return Result{}, err
	}
	return SolveAlmanac(a, opts...)
}

// SolveFile is Solve on the file at path.
func SolveFile(path string, opts ...pipeline.Option) (Result, error) {
	a, err := parser.ParseFile(path)
	if err != nil {
		return Result{}, err
	}
	return SolveAlmanac(a, opts...)
}

// SolveAlmanac computes both reductions for an already parsed almanac.
func SolveAlmanac(a *parser.Almanac, opts ...pipeline.Option) (Result, error) {
	p, err := a.Pipeline(opts...)
	if err != nil {
		return Result{}, err
	}
	res := Result{Seeds: len(a.Seeds), Maps: p.Len()}

	res.Scalar, err = p.MinimumOverSeeds(a.Seeds)
	if err != nil {
		return Result{}, fmt.Errorf("scalar seeds: %w", err)
	}

	ranges, err := a.SeedRanges()
	if err != nil {
		return Result{}, fmt.Errorf("seed ranges: %w", err)
	}
	res.Bulk, err = p.MinimumOverIntervals(ranges)
	if err != nil {
		return Result{}, fmt.Errorf("seed ranges: %w", err)
	}
	return res, nil
}
