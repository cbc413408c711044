package baseline

import "errors"

// Sentinel error kinds for this package. These allow errors.Is from callers.
var (
	ErrNoSamples    = errors.New("no enrollment samples")
	ErrKindMismatch = errors.New("component kind mismatch")
)
