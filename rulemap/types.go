package rulemap

import (
	"fmt"

	"github.com/katalvlaran/almanac/interval"
)

// Rule maps every x in [SourceStart, SourceEnd] to x+Delta.
// Rules are immutable once built by NewRule.
type Rule struct {
	SourceStart int64 // first source value, inclusive
	SourceEnd   int64 // last source value, inclusive
	Delta       int64 // destStart - sourceStart
}

// NewRule builds a Rule from the input triple (destStart, sourceStart, length).
// Returns ErrBadLength if length ≤ 0.
func NewRule(destStart, sourceStart, length int64) (Rule, error) {
	if length <= 0 {
		return Rule{}, fmt.Errorf("%w: got %d", ErrBadLength, length)
	}
	return Rule{
		SourceStart: sourceStart,
		SourceEnd:   sourceStart + length - 1,
		Delta:       destStart - sourceStart,
	}, nil
}

// Source returns the rule's source interval.
func (r Rule) Source() interval.Interval {
	return interval.Interval{Start: r.SourceStart, End: r.SourceEnd}
}

// Dest returns the interval the source interval is shifted onto.
func (r Rule) Dest() interval.Interval {
	return r.Source().Shift(r.Delta)
}

// Contains reports whether x lies in the source interval.
func (r Rule) Contains(x int64) bool {
	return r.SourceStart <= x && x <= r.SourceEnd
}

// String formats the rule as "src [a, b] -> dst [c, d] (delta n)".
func (r Rule) String() string {
	return fmt.Sprintf("src %v -> dst %v (delta %d)", r.Source(), r.Dest(), r.Delta)
}

// RuleMap is one pipeline stage. Name is diagnostic only (the section header,
// e.g. "seed-to-soil map:"). Rules are matched in slice order.
type RuleMap struct {
	Name  string
	Rules []Rule
}

// New returns an empty RuleMap with the given name.
func New(name string) RuleMap {
	return RuleMap{Name: name}
}

// Add appends r after the existing rules, so it loses to any of them on overlap.
func (m *RuleMap) Add(r Rule) {
	m.Rules = append(m.Rules, r)
}

// String summarizes the map as "name (n rules)".
func (m RuleMap) String() string {
	return fmt.Sprintf("%s (%d rules)", m.Name, len(m.Rules))
}
