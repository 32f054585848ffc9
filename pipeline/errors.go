package pipeline

import "errors"

var (
	// ErrNoSeeds indicates an empty seed list; the minimum is undefined.
	ErrNoSeeds = errors.New("pipeline: at least one seed is required")
	// ErrEmptyResult indicates the final interval set holds nothing to minimize.
	ErrEmptyResult = errors.New("pipeline: final interval set is empty")
	// ErrBadSeedRange indicates a (start, length) seed pair that covers no values.
	ErrBadSeedRange = errors.New("pipeline: invalid seed range")
	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("pipeline: workers must be at least 1")
)
