package scoring

import "errors"

// Sentinel error kinds for this package. These allow errors.Is from callers.
var (
	ErrKindMismatch = errors.New("component kind mismatch")
)
