package reach

import "errors"

// Sentinel is the position bound to the zero sum: reachable with no element.
const Sentinel = -1

var (
	// ErrNegativeTarget is returned by Build when the target sum is negative.
	ErrNegativeTarget = errors.New("reach: target must be non-negative")

	// ErrLengthMismatch is returned by Build when groups and weights differ in length.
	ErrLengthMismatch = errors.New("reach: groups and weights must have equal length")
)
