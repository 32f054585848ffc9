package interval

import (
	"slices"
	"sort"
)

// Coverage is the set of values covered by a collection of Intervals.
// Internally the ranges are kept sorted by Start, pairwise disjoint and
// never adjacent, so two Coverages holding the same values are Equal
// regardless of how they were built.
//
// The zero value is an empty Coverage ready to use.
type Coverage struct {
	ranges []Interval
}

// NewCoverage builds a Coverage from ivs. Degenerate intervals are ignored.
func NewCoverage(ivs ...Interval) *Coverage {
	c := &Coverage{}
	for _, iv := range ivs {
		c.Add(iv)
	}
	return c
}

// Add merges iv into the set. Degenerate intervals add nothing.
func (c *Coverage) Add(iv Interval) {
	if !iv.Valid() {
		return
	}
	// i: first range that ends at or right before iv.Start (touching counts).
	i := sort.Search(len(c.ranges), func(k int) bool {
		r := c.ranges[k]
		return r.End >= iv.Start || r.End+1 == iv.Start
	})
	// j: first range that starts strictly after iv.End+1.
	j := sort.Search(len(c.ranges), func(k int) bool {
		r := c.ranges[k]
		return r.Start > iv.End && r.Start-1 != iv.End
	})
	merged := iv
	if i < j {
		merged.Start = min(merged.Start, c.ranges[i].Start)
		merged.End = max(merged.End, c.ranges[j-1].End)
	}
	c.ranges = slices.Replace(c.ranges, i, j, merged)
}

// Covers reports whether x lies in any range of the set.
func (c *Coverage) Covers(x int64) bool {
	k := sort.Search(len(c.ranges), func(k int) bool { return c.ranges[k].End >= x })
	return k < len(c.ranges) && c.ranges[k].Start <= x
}

// Count returns the number of distinct values in the set.
func (c *Coverage) Count() int64 {
	var n int64
	for _, r := range c.ranges {
		n += r.Len()
	}
	return n
}

// Ranges returns a copy of the normalized ranges in ascending order.
func (c *Coverage) Ranges() []Interval {
	return slices.Clone(c.ranges)
}

// Equal reports whether c and o cover exactly the same values.
func (c *Coverage) Equal(o *Coverage) bool {
	return slices.Equal(c.ranges, o.ranges)
}
