// Package rulemap implements one stage of the almanac pipeline: an ordered
// list of offset rules forming a piecewise-defined function over the integers.
//
// 🚀 What is a RuleMap?
//
//	Each input line "destStart sourceStart length" becomes a Rule:
//
//	  source interval: [sourceStart, sourceStart+length-1]
//	  delta:           destStart - sourceStart
//
//	A RuleMap applies the first rule (in stored order) whose source interval
//	contains x and returns x+delta; values matched by no rule map to themselves.
//
// ✨ Two ways to apply a map:
//   - Apply(x): a single value, O(rules).
//   - ApplyToIntervals(in): whole closed intervals at once. Each interval is
//     cut against the rules into resolved (shifted) pieces and unresolved
//     remainders; remainders keep being matched against later rules and
//     whatever is left at the end passes through unchanged.
//
// Guarantees of ApplyToIntervals:
//   - The values covered by the output equal {Apply(x) : x in input}.
//   - No piece is produced with Start > End.
//   - A resolved piece is final and never split again.
//   - Overlapping rules are tolerated: the earlier rule wins, exactly as in Apply.
//
// Complexity:
//
//   - Time:   O(intervals × rules) per call (each rule adds at most one
//     remainder per piece it cuts).
//   - Memory: O(output pieces).
//
// Errors:
//
//   - ErrBadLength:            NewRule with length ≤ 0.
//   - interval.ErrDegenerate:  an input interval with Start > End.
package rulemap
