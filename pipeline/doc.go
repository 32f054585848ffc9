// Package pipeline composes rulemap stages into the full almanac transform
//
//	location = f_n ∘ f_{n-1} ∘ … ∘ f_1 (seed)
//
// and reduces its outputs to a minimum.
//
// What:
//
//   - Pipeline holds the RuleMaps in file order; it is immutable after New.
//   - Exhaustive mode: ApplyScalar folds RuleMap.Apply over one value;
//     MinimumOverSeeds does it for every seed and keeps the smallest result.
//   - Bulk mode: ApplyIntervals folds RuleMap.ApplyToIntervals over a whole
//     interval set, each stage consuming the previous stage's output and
//     returning a freshly allocated set; MinimumOverIntervals converts
//     (start, length) seed ranges and returns the smallest final Start.
//
// Options:
//
//   - WithContext(ctx): checked before every bulk stage.
//   - WithWorkers(n):   n > 1 maps the intervals of a stage concurrently.
//     Results are merged by input position, so output never depends on
//     goroutine scheduling.
//   - WithLogger(l):    one debug record per bulk stage.
//
// Errors:
//
//   - ErrNoSeeds:      MinimumOverSeeds called with no seeds.
//   - ErrEmptyResult:  bulk mode finished with no intervals to take a minimum of.
//   - ErrBadSeedRange: a seed range with length ≤ 0.
//   - ErrBadWorkers:   WithWorkers(n) with n < 1.
package pipeline
