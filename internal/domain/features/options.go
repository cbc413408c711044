package features

// Option applies a configuration option to the Extractor.
type Option func(*Extractor)

// WithPauseThreshold sets the inter-stroke gap, in milliseconds, above which
// a gap counts as a pause.
func WithPauseThreshold(ms int64) Option {
	return func(e *Extractor) {
		if ms > 0 {
			e.pauseThresholdMS = ms
		}
	}
}

// WithSuspiciousPause sets the gap length, in milliseconds, above which a
// pause is long enough to suggest tracing, and the jitter below which a set
// of such pauses counts as unnaturally regular.
func WithSuspiciousPause(ms int64, jitterMS float64) Option {
	return func(e *Extractor) {
		if ms > 0 {
			e.suspiciousPauseMS = ms
		}
		if jitterMS > 0 {
			e.suspiciousJitterMS = jitterMS
		}
	}
}

// WithEnhancedFeatures toggles the geometry and security feature categories.
// Threaded per extractor instance so concurrent callers can use different
// configurations safely.
func WithEnhancedFeatures(enabled bool) Option {
	return func(e *Extractor) {
		e.enhanced = enabled
	}
}

// WithReversalAngle sets the direction-change angle, in radians, above which
// a turn counts as a reversal.
func WithReversalAngle(rad float64) Option {
	return func(e *Extractor) {
		if rad > 0 {
			e.reversalAngle = rad
		}
	}
}
