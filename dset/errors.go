package dset

import (
	"errors"
	"fmt"
)

// ErrInvariantViolation indicates an internal precondition failure — Unite
// called with an argument that is not currently a representative, or with
// a == b. These are programming errors: unreachable for a caller that
// respects Unite's contract, never a validation outcome.
var ErrInvariantViolation = errors.New("dset: internal invariant violated")

// assertf panics wrapping ErrInvariantViolation when cond is false.
func assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...)))
	}
}
