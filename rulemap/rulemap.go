package rulemap

import (
	"fmt"

	"github.com/katalvlaran/almanac/interval"
)

// Apply returns x+Delta for the first rule containing x, or x if none does.
// It is total over int64 and has no side effects.
func (m RuleMap) Apply(x int64) int64 {
	for _, r := range m.Rules {
		if r.Contains(x) {
			return x + r.Delta
		}
	}
	return x
}

// ApplyToIntervals maps every value of every interval in `in` through m and
// returns the result as a fresh slice of intervals. Pieces of one input
// interval appear in the order they were resolved: shifted overlaps first,
// in rule order, then the untouched leftovers. The input slice is not modified.
//
// Returns interval.ErrDegenerate (with the offending index) if any input has
// Start > End; no partial output is returned in that case.
func (m RuleMap) ApplyToIntervals(in []interval.Interval) ([]interval.Interval, error) {
	out := make([]interval.Interval, 0, len(in))
	for i, iv := range in {
		if !iv.Valid() {
			return nil, fmt.Errorf("input %d %v: %w", i, iv, interval.ErrDegenerate)
		}
		out = m.appendMapped(out, iv)
	}
	return out, nil
}

// MapInterval is ApplyToIntervals for a single interval.
func (m RuleMap) MapInterval(iv interval.Interval) ([]interval.Interval, error) {
	if !iv.Valid() {
		return nil, fmt.Errorf("%v: %w", iv, interval.ErrDegenerate)
	}
	return m.appendMapped(nil, iv), nil
}

// appendMapped splits iv against every rule and appends the resulting pieces to out.
//
// Invariant: the values of the pieces appended to out plus those still in
// remaining always equal the values of iv.
func (m RuleMap) appendMapped(out []interval.Interval, iv interval.Interval) []interval.Interval {
	remaining := []interval.Interval{iv}
	for _, r := range m.Rules {
		if len(remaining) == 0 {
			break
		}
		next := make([]interval.Interval, 0, len(remaining)+1)
		for _, piece := range remaining {
			overlap, ok := piece.Intersect(r.Source())
			if !ok {
				next = append(next, piece)
				continue
			}
			if piece.Start < overlap.Start {
				next = append(next, interval.Interval{Start: piece.Start, End: overlap.Start - 1})
			}
			out = append(out, overlap.Shift(r.Delta))
			if overlap.End < piece.End {
				next = append(next, interval.Interval{Start: overlap.End + 1, End: piece.End})
			}
		}
		remaining = next
	}
	// Nothing matched these: identity.
	return append(out, remaining...)
}
