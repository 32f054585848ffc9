package rulemap

import "errors"

// ErrBadLength indicates a rule triple whose length is not positive.
var ErrBadLength = errors.New("rulemap: rule length must be positive")
