package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/almanac/pipeline"
	"github.com/katalvlaran/almanac/rulemap"
)

const (
	seedsPrefix  = "seeds:"
	headerMarker = "map:"
)

// Almanac is the fully parsed input: the seed values and the RuleMaps in
// file order.
type Almanac struct {
	Seeds []int64
	Maps  []rulemap.RuleMap
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (*Almanac, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open almanac: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads the whole input and returns the seeds and sealed RuleMaps.
func Parse(r io.Reader) (*Almanac, error) {
	var (
		a       Almanac
		current rulemap.RuleMap
		inMap   bool
		seeded  bool
		lineNo  int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		raw := sc.Text()
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
			continue

		case strings.HasPrefix(line, seedsPrefix):
			seeds, err := parseInts(strings.TrimPrefix(line, seedsPrefix))
			if err != nil {
				return nil, &LineError{Line: lineNo, Text: raw, Err: err}
			}
			a.Seeds = append(a.Seeds, seeds...)
			seeded = true

		case strings.Contains(line, headerMarker):
			if inMap {
				a.Maps = append(a.Maps, current)
			}
			current = rulemap.New(line)
			inMap = true

		case !inMap:
			return nil, &LineError{Line: lineNo, Text: raw, Err: ErrRuleOutsideMap}

		default:
			rule, err := parseRule(line)
			if err != nil {
				return nil, &LineError{Line: lineNo, Text: raw, Err: err}
			}
			current.Add(rule)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read almanac: %w", err)
	}
	// The last section has no following header to seal it.
	if inMap {
		a.Maps = append(a.Maps, current)
	}
	if !seeded {
		return nil, ErrMissingSeeds
	}
	return &a, nil
}

// parseRule reads one "destStart sourceStart length" triple.
func parseRule(line string) (rulemap.Rule, error) {
	nums, err := parseInts(line)
	if err != nil {
		return rulemap.Rule{}, err
	}
	if len(nums) != 3 {
		return rulemap.Rule{}, fmt.Errorf("%w: want 3 integers, got %d", ErrMalformedLine, len(nums))
	}
	rule, err := rulemap.NewRule(nums[0], nums[1], nums[2])
	if err != nil {
		return rulemap.Rule{}, fmt.Errorf("%w: %w", ErrMalformedLine, err)
	}
	return rule, nil
}

func parseInts(s string) ([]int64, error) {
	fields := strings.Fields(s)
	out := make([]int64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedLine, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// SeedRanges reads Seeds pairwise as (start, length).
// Returns ErrOddSeedCount if the number of seeds is odd.
func (a *Almanac) SeedRanges() ([]pipeline.SeedRange, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOddSeedCount, len(a.Seeds))
	}
	out := make([]pipeline.SeedRange, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		out = append(out, pipeline.SeedRange{Start: a.Seeds[i], Length: a.Seeds[i+1]})
	}
	return out, nil
}

// Pipeline seals the parsed maps into a pipeline.Pipeline.
func (a *Almanac) Pipeline(opts ...pipeline.Option) (*pipeline.Pipeline, error) {
	return pipeline.New(a.Maps, opts...)
}
