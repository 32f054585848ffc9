package pipeline_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/almanac/interval"
	"github.com/katalvlaran/almanac/pipeline"
	"github.com/katalvlaran/almanac/rulemap"
)

func iv(s, e int64) interval.Interval { return interval.Interval{Start: s, End: e} }

// buildMap builds a named RuleMap from (dest, src, length) triples.
func buildMap(name string, triples ...[3]int64) rulemap.RuleMap {
	m := rulemap.New(name)
	for _, tr := range triples {
		r, err := rulemap.NewRule(tr[0], tr[1], tr[2])
		if err != nil {
			panic(err)
		}
		m.Add(r)
	}
	return m
}

// twoStage is the A/B pipeline: A shifts [10,20] by +100, B maps [110,115] onto [0,5].
func twoStage() []rulemap.RuleMap {
	return []rulemap.RuleMap{
		buildMap("a-to-b map:", [3]int64{110, 10, 11}),
		buildMap("b-to-c map:", [3]int64{0, 110, 6}),
	}
}

// PipelineSuite exercises scalar and bulk composition.
type PipelineSuite struct {
	suite.Suite
}

func TestPipelineSuite(t *testing.T) {
	suite.Run(t, new(PipelineSuite))
}

// TestTwoStageIntervals follows [10,20] through A then B.
func (s *PipelineSuite) TestTwoStageIntervals() {
	p, err := pipeline.New(twoStage())
	require.NoError(s.T(), err)

	out, err := p.ApplyIntervals([]interval.Interval{iv(10, 20)})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []interval.Interval{iv(0, 5), iv(116, 120)}, out)

	lowest, err := p.MinimumOverIntervals([]pipeline.SeedRange{{Start: 10, Length: 11}})
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(0), lowest)
}

// TestScalar checks ApplyScalar composes left to right.
func (s *PipelineSuite) TestScalar() {
	p, err := pipeline.New(twoStage())
	require.NoError(s.T(), err)

	require.Equal(s.T(), int64(3), p.ApplyScalar(13))   // 13 -> 113 -> 3
	require.Equal(s.T(), int64(118), p.ApplyScalar(18)) // 18 -> 118 -> 118
	require.Equal(s.T(), int64(9), p.ApplyScalar(9))    // untouched by both

	lowest, err := p.MinimumOverSeeds([]int64{18, 9, 13})
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(3), lowest)
}

// TestNoSeeds verifies an empty seed list is an error, not zero.
func (s *PipelineSuite) TestNoSeeds() {
	p, err := pipeline.New(twoStage())
	require.NoError(s.T(), err)

	_, err = p.MinimumOverSeeds(nil)
	require.ErrorIs(s.T(), err, pipeline.ErrNoSeeds)

	_, err = p.MinimumOverIntervals(nil)
	require.ErrorIs(s.T(), err, pipeline.ErrEmptyResult)
}

// TestBadSeedRange verifies a zero-length pair is rejected.
func (s *PipelineSuite) TestBadSeedRange() {
	p, err := pipeline.New(twoStage())
	require.NoError(s.T(), err)

	_, err = p.MinimumOverIntervals([]pipeline.SeedRange{{Start: 1, Length: 3}, {Start: 5, Length: 0}})
	require.ErrorIs(s.T(), err, pipeline.ErrBadSeedRange)
	require.ErrorIs(s.T(), err, interval.ErrBadLength)
}

// TestDegenerateInput verifies bulk mode rejects start > end at the first stage.
func (s *PipelineSuite) TestDegenerateInput() {
	for _, workers := range []int{1, 4} {
		p, err := pipeline.New(twoStage(), pipeline.WithWorkers(workers))
		require.NoError(s.T(), err)

		_, err = p.ApplyIntervals([]interval.Interval{iv(1, 2), iv(8, 3)})
		require.ErrorIs(s.T(), err, interval.ErrDegenerate, "workers=%d", workers)
	}
}

// TestCompositionConsistency compares scalar mode against bulk mode on
// single-value ranges.
func (s *PipelineSuite) TestCompositionConsistency() {
	maps := append(twoStage(), buildMap("c-to-d map:", [3]int64{1000, 0, 3}, [3]int64{7, 116, 10}))
	p, err := pipeline.New(maps)
	require.NoError(s.T(), err)

	for seed := int64(0); seed <= 40; seed++ {
		scalar, err := p.MinimumOverSeeds([]int64{seed})
		require.NoError(s.T(), err)
		bulk, err := p.MinimumOverIntervals([]pipeline.SeedRange{{Start: seed, Length: 1}})
		require.NoError(s.T(), err)
		require.Equal(s.T(), scalar, bulk, "seed %d", seed)
	}
}

// TestBulkMatchesBruteForce checks the bulk minimum against enumerating
// every seed of every range.
func (s *PipelineSuite) TestBulkMatchesBruteForce() {
	maps := []rulemap.RuleMap{
		buildMap("x", [3]int64{40, 0, 10}, [3]int64{0, 30, 5}),
		buildMap("y", [3]int64{100, 35, 20}, [3]int64{3, 44, 2}),
		buildMap("z", [3]int64{60, 100, 3}),
	}
	p, err := pipeline.New(maps)
	require.NoError(s.T(), err)

	ranges := []pipeline.SeedRange{{Start: 2, Length: 7}, {Start: 28, Length: 9}, {Start: 50, Length: 4}}
	var seeds []int64
	for _, r := range ranges {
		for x := r.Start; x < r.Start+r.Length; x++ {
			seeds = append(seeds, x)
		}
	}
	want, err := p.MinimumOverSeeds(seeds)
	require.NoError(s.T(), err)
	got, err := p.MinimumOverIntervals(ranges)
	require.NoError(s.T(), err)
	require.Equal(s.T(), want, got)

	cov, err := p.Coverage(ranges)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(len(seeds)), cov.Count(), "a pipeline of shifts never merges distinct values here")
}

// TestDeterminism runs the same input twice and expects identical answers.
func (s *PipelineSuite) TestDeterminism() {
	p, err := pipeline.New(twoStage(), pipeline.WithWorkers(3))
	require.NoError(s.T(), err)
	ranges := []pipeline.SeedRange{{Start: 0, Length: 30}, {Start: 12, Length: 5}, {Start: 100, Length: 20}}

	first, err := p.MinimumOverIntervals(ranges)
	require.NoError(s.T(), err)
	second, err := p.MinimumOverIntervals(ranges)
	require.NoError(s.T(), err)
	require.Equal(s.T(), first, second)
}

// TestParallelMatchesSequential requires identical slices, order included.
func (s *PipelineSuite) TestParallelMatchesSequential() {
	seq, err := pipeline.New(twoStage())
	require.NoError(s.T(), err)
	par, err := pipeline.New(twoStage(), pipeline.WithWorkers(4))
	require.NoError(s.T(), err)

	in := []interval.Interval{iv(0, 12), iv(14, 30), iv(5, 5), iv(108, 200), iv(-10, -1)}
	want, err := seq.ApplyIntervals(in)
	require.NoError(s.T(), err)
	got, err := par.ApplyIntervals(in)
	require.NoError(s.T(), err)
	require.Equal(s.T(), want, got)
}

// TestNoStages returns a copy of the input untouched.
func (s *PipelineSuite) TestNoStages() {
	p, err := pipeline.New(nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, p.Len())

	in := []interval.Interval{iv(4, 9)}
	out, err := p.ApplyIntervals(in)
	require.NoError(s.T(), err)
	require.Equal(s.T(), in, out)
	out[0] = iv(0, 0)
	require.Equal(s.T(), iv(4, 9), in[0])
	require.Equal(s.T(), int64(42), p.ApplyScalar(42))
}

// TestSealed verifies New copies the maps it is given.
func (s *PipelineSuite) TestSealed() {
	maps := twoStage()
	p, err := pipeline.New(maps)
	require.NoError(s.T(), err)

	maps[0].Rules[0].Delta = 0
	maps[1].Add(rulemap.Rule{SourceStart: 0, SourceEnd: 1000, Delta: 5})
	require.Equal(s.T(), int64(3), p.ApplyScalar(13))

	stages := p.Stages()
	require.Len(s.T(), stages, 2)
	stages[0].Rules[0].Delta = 0
	require.Equal(s.T(), int64(3), p.ApplyScalar(13))
}

// TestBadWorkers rejects a non-positive worker count.
func (s *PipelineSuite) TestBadWorkers() {
	_, err := pipeline.New(twoStage(), pipeline.WithWorkers(0))
	require.ErrorIs(s.T(), err, pipeline.ErrBadWorkers)
}

// TestCancelled stops before the first stage.
func (s *PipelineSuite) TestCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p, err := pipeline.New(twoStage(), pipeline.WithContext(ctx))
	require.NoError(s.T(), err)

	_, err = p.ApplyIntervals([]interval.Interval{iv(10, 20)})
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestStageLogging checks one debug record per stage with its counts.
func (s *PipelineSuite) TestStageLogging() {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p, err := pipeline.New(twoStage(), pipeline.WithLogger(logger))
	require.NoError(s.T(), err)

	_, err = p.ApplyIntervals([]interval.Interval{iv(10, 20)})
	require.NoError(s.T(), err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(s.T(), lines, 2)

	var rec struct {
		Msg   string `json:"msg"`
		Stage int    `json:"stage"`
		Map   string `json:"map"`
		In    int    `json:"in"`
		Out   int    `json:"out"`
	}
	require.NoError(s.T(), json.Unmarshal([]byte(lines[1]), &rec))
	require.Equal(s.T(), "stage applied", rec.Msg)
	require.Equal(s.T(), 1, rec.Stage)
	require.Equal(s.T(), "b-to-c map:", rec.Map)
	require.Equal(s.T(), 1, rec.In)
	require.Equal(s.T(), 2, rec.Out)
}
