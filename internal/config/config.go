// Package config defines the tunable parameters of the stroke authentication
// core and their loading hooks.
//
// Conventions:
//   - Defaults live in New; Load layers an optional YAML file and env on top.
//   - All numeric tunables are plain values with no environment-specific
//     wiring, so different callers can run different configurations at once.
package config

// Config contains every tunable of the feature extraction and scoring
// pipeline. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// DecayK is the similarity decay constant k in
	// 100*exp(-|live-mean|/(k*stddev)).
	DecayK float64 `koanf:"decay_k"`

	// StddevFloor is the minimum per-feature standard deviation recorded in
	// a baseline, preventing zero-variance over-penalization.
	StddevFloor float64 `koanf:"stddev_floor"`

	// PauseThresholdMS is the inter-stroke gap counted as a pause.
	PauseThresholdMS int64 `koanf:"pause_threshold_ms"`

	// SuspiciousPauseMS and SuspiciousJitterMS tune tracing detection: gaps
	// longer than the former and more regular than the latter are flagged.
	SuspiciousPauseMS  int64   `koanf:"suspicious_pause_ms"`
	SuspiciousJitterMS float64 `koanf:"suspicious_jitter_ms"`

	// MinEnrollmentSamples is how many accepted captures enrollment needs
	// before a baseline is built.
	MinEnrollmentSamples int `koanf:"min_enrollment_samples"`

	// PassThreshold is the aggregate confidence at or above which an
	// authentication attempt passes.
	PassThreshold float64 `koanf:"pass_threshold"`

	// EnhancedFeatures toggles the geometry and security feature categories.
	EnhancedFeatures bool `koanf:"enhanced_features"`

	// StrictMissing scores baseline features absent from the live capture as
	// mismatches instead of exclusions.
	StrictMissing bool `koanf:"strict_missing"`

	// CategoryWeights maps feature categories to scoring weights;
	// DefaultCategoryWeight covers categories not listed.
	CategoryWeights       map[string]float64 `koanf:"category_weights"`
	DefaultCategoryWeight float64            `koanf:"default_category_weight"`

	// KindWeights maps component kinds to aggregation multipliers;
	// DefaultKindWeight covers kinds not listed.
	KindWeights       map[string]float64 `koanf:"kind_weights"`
	DefaultKindWeight float64            `koanf:"default_kind_weight"`

	// MetricsEnabled toggles Prometheus metric collection in the service.
	MetricsEnabled bool `koanf:"metrics_enabled"`
}

// New creates a Config holding the defaults the product shipped with.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		DecayK:               2.0,
		StddevFloor:          0.15,
		PauseThresholdMS:     150,
		SuspiciousPauseMS:    800,
		SuspiciousJitterMS:   50,
		MinEnrollmentSamples: 3,
		PassThreshold:        70,
		EnhancedFeatures:     true,
		StrictMissing:        false,
		CategoryWeights: map[string]float64{
			"basic":    0.5,
			"pressure": 1.2,
			"geometry": 1.2,
			"security": 1.5,
			"shape":    1.5,
		},
		DefaultCategoryWeight: 1.0,
		KindWeights: map[string]float64{
			"circle":   1.1,
			"square":   1.1,
			"triangle": 1.1,
			"face":     1.2,
			"star":     1.2,
			"house":    1.2,
		},
		DefaultKindWeight: 1.0,
		MetricsEnabled:    true,
	}
}
