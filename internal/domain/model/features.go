package model

// FeatureMap holds the named numeric biometric measurements derived from one
// capture, plus bookkeeping about features the capturing device could not
// supply. Keys are always drawn from the fixed schema for the capture's kind.
type FeatureMap struct {
	Kind   ComponentKind      `json:"kind"`
	Values map[string]float64 `json:"values"`

	// Excluded lists features omitted from Values because the device cannot
	// support them; ExclusionReason says why.
	Excluded        map[string]bool `json:"excluded,omitempty"`
	ExclusionReason string          `json:"exclusion_reason,omitempty"`

	// Empty marks a capture that carried no stroke data. Values still holds
	// the full schema at neutral zero so downstream consumers see a complete,
	// well-typed map.
	Empty bool `json:"empty,omitempty"`

	// Warnings carries non-fatal annotations from component analyzers that
	// received data they could not interpret.
	Warnings []string `json:"warnings,omitempty"`
}

// NewFeatureMap returns an empty feature map for the given kind.
func NewFeatureMap(kind ComponentKind) FeatureMap {
	return FeatureMap{
		Kind:     kind,
		Values:   make(map[string]float64),
		Excluded: make(map[string]bool),
	}
}

// Set records a feature value.
func (f FeatureMap) Set(name string, v float64) { f.Values[name] = v }

// Get returns a feature value and whether it is present.
func (f FeatureMap) Get(name string) (float64, bool) {
	v, ok := f.Values[name]
	return v, ok
}

// Exclude marks a feature as unsupported on the capturing device.
func (f *FeatureMap) Exclude(reason string, names ...string) {
	if f.Excluded == nil {
		f.Excluded = make(map[string]bool)
	}
	for _, n := range names {
		f.Excluded[n] = true
		delete(f.Values, n)
	}
	f.ExclusionReason = reason
}

// Merge copies every value, exclusion, and warning from other into f.
// Both maps must be for the same kind; mismatches are a programmer error
// and the merge is skipped.
func (f *FeatureMap) Merge(other FeatureMap) {
	if other.Kind != f.Kind {
		return
	}
	for name, v := range other.Values {
		f.Values[name] = v
	}
	for name := range other.Excluded {
		if f.Excluded == nil {
			f.Excluded = make(map[string]bool)
		}
		f.Excluded[name] = true
	}
	if other.ExclusionReason != "" && f.ExclusionReason == "" {
		f.ExclusionReason = other.ExclusionReason
	}
	f.Warnings = append(f.Warnings, other.Warnings...)
}
