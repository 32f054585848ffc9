package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine indicates a line that is not a valid seeds line or rule triple.
	ErrMalformedLine = errors.New("parser: malformed line")
	// ErrRuleOutsideMap indicates a rule line that appears before any "map:" header.
	ErrRuleOutsideMap = errors.New("parser: rule line outside of a map section")
	// ErrMissingSeeds indicates the input has no "seeds:" line.
	ErrMissingSeeds = errors.New("parser: no seeds line")
	// ErrOddSeedCount indicates seeds that cannot be read as (start, length) pairs.
	ErrOddSeedCount = errors.New("parser: seed ranges need an even number of values")
)

// LineError reports a parse failure at a given input line.
type LineError struct {
	Line int    // 1-based
	Text string // raw line
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("parser: line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
