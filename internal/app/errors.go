package app

import "errors"

// Sentinel error kinds for this package. These allow errors.Is from callers.
var (
	ErrInsufficientSamples = errors.New("not enough accepted enrollment samples")
)
