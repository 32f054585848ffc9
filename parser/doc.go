// Package parser reads the almanac text format into seeds and RuleMaps.
//
// Format:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
//	soil-to-fertilizer map:
//	...
//
//   - The "seeds:" line lists whitespace-separated integers. They are single
//     seeds in exhaustive mode and (start, length) pairs in bulk mode.
//   - Every line containing "map:" opens a new RuleMap named after the line.
//   - Each following line is a "destStart sourceStart length" triple.
//   - Blank lines are ignored. Sections keep file order; nothing is sorted.
//
// Errors carry the 1-based line number as a *LineError and unwrap to one of
// the sentinels below, so callers can use errors.Is.
package parser
