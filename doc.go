// Package almanac answers the "lowest location" question of a seed almanac:
// a pipeline of piecewise-linear integer maps applied to seed values and to
// whole seed ranges.
//
// 🚀 What is in the box?
//
//	• interval/  closed int64 ranges and a merged value set (Coverage)
//	• rulemap/   one stage: ordered offset rules, scalar and interval application
//	• pipeline/  stage composition, minimum reductions, optional parallel bulk mode
//	• parser/    the "seeds:" / "... map:" text format
//
// Under the hood, bulk mode never enumerates seeds: each stage cuts the
// current interval set along its rules' source boundaries, shifts the
// overlapping pieces and passes the rest through, so the cost grows with
// intervals × rules rather than with the number of seeds.
//
// Quick example:
//
//	res, err := almanac.SolveFile("input.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Scalar, res.Bulk)
//
// The cmd/almanac binary wraps Solve with configuration, logging and
// text/JSON/YAML output.
package almanac
