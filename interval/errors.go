package interval

import "errors"

var (
	// ErrDegenerate indicates an interval whose Start is greater than its End.
	ErrDegenerate = errors.New("interval: start must not exceed end")
	// ErrBadLength indicates a (start, length) pair whose length is not positive.
	ErrBadLength = errors.New("interval: length must be positive")
)
