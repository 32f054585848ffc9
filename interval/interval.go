package interval

import "fmt"

// Interval is a closed integer range [Start, End]. Both endpoints are inclusive.
// The zero value is the single value 0.
type Interval struct {
	Start int64
	End   int64
}

// New returns [start, end] or ErrDegenerate if start > end.
func New(start, end int64) (Interval, error) {
	if start > end {
		return Interval{}, fmt.Errorf("%w: [%d, %d]", ErrDegenerate, start, end)
	}
	return Interval{Start: start, End: end}, nil
}

// FromLength converts a (start, length) pair into [start, start+length-1].
// Returns ErrBadLength if length ≤ 0.
func FromLength(start, length int64) (Interval, error) {
	if length <= 0 {
		return Interval{}, fmt.Errorf("%w: start=%d length=%d", ErrBadLength, start, length)
	}
	return Interval{Start: start, End: start + length - 1}, nil
}

// Valid reports whether Start ≤ End.
func (iv Interval) Valid() bool {
	return iv.Start <= iv.End
}

// Len returns the number of values in iv, or 0 for a degenerate interval.
func (iv Interval) Len() int64 {
	if !iv.Valid() {
		return 0
	}
	return iv.End - iv.Start + 1
}

// Contains reports whether Start ≤ x ≤ End.
func (iv Interval) Contains(x int64) bool {
	return iv.Start <= x && x <= iv.End
}

// Intersect returns the overlap of iv and o. The boolean is false when they
// share no value, in which case the returned Interval must not be used.
func (iv Interval) Intersect(o Interval) (Interval, bool) {
	lo := max(iv.Start, o.Start)
	hi := min(iv.End, o.End)
	if lo > hi {
		return Interval{}, false
	}
	return Interval{Start: lo, End: hi}, true
}

// Shift moves both endpoints by delta.
func (iv Interval) Shift(delta int64) Interval {
	return Interval{Start: iv.Start + delta, End: iv.End + delta}
}

// String formats iv as "[start, end]".
func (iv Interval) String() string {
	return fmt.Sprintf("[%d, %d]", iv.Start, iv.End)
}
