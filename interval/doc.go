// Package interval provides the closed integer range used by the almanac
// engine as its unit of bulk transformation, plus a small normalized set of
// such ranges for counting and comparing covered values.
//
// What:
//
//   - Interval is an inclusive range [Start, End] over int64 with Start ≤ End.
//   - Coverage keeps a sorted, disjoint, non-adjacent list of Intervals;
//     adding an Interval merges everything it touches.
//
// Why:
//
//   - Seed ranges of billions of values are represented by two numbers.
//   - Coverage answers "which values are represented" independently of how a
//     set of pieces was split, which is what value-preservation checks need.
//
// Complexity:
//
//   - Interval operations: O(1).
//   - Coverage.Add: O(log n + k) where k ranges are merged, plus slice shifting.
//   - Coverage.Covers: O(log n).
//
// Errors:
//
//   - ErrDegenerate: Start > End, the range holds no values.
//   - ErrBadLength:  a (start, length) pair with length ≤ 0.
package interval
