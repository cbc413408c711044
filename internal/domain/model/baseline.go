package model

// FeatureStat is the per-feature statistical summary inside a baseline.
type FeatureStat struct {
	Mean   float64 `json:"mean"`
	Stddev float64 `json:"stddev"`
	// PresentIn counts how many enrollment samples carried this feature.
	PresentIn int `json:"present_in"`
}

// Baseline is the per-user, per-kind statistical summary built from
// enrollment captures. Created once at enrollment completion, immutable
// thereafter; re-enrollment replaces it wholesale.
type Baseline struct {
	Kind        ComponentKind          `json:"kind"`
	SampleCount int                    `json:"sample_count"`
	PerFeature  map[string]FeatureStat `json:"per_feature"`

	// Device records the capabilities in effect when the baseline was built,
	// so later comparisons can tell device-driven exclusions from drift.
	Device DeviceCapabilities `json:"device"`
}

// Has reports whether the baseline tracks the named feature.
func (b Baseline) Has(name string) bool {
	_, ok := b.PerFeature[name]
	return ok
}
