package model

// Reason codes attached to a ScoreResult whose overall score is the reserved
// zero ("failed to compare", as opposed to "compared and matched badly").
const (
	ReasonEmptyCapture         = "empty_capture"
	ReasonNoComparableFeatures = "no_comparable_features"
)

// FeatureComparison is the per-feature breakdown inside a ScoreResult.
type FeatureComparison struct {
	LiveValue      float64 `json:"live_value"`
	BaselineMean   float64 `json:"baseline_mean"`
	BaselineStddev float64 `json:"baseline_stddev"`
	// Contribution is the bounded 0-100 similarity this feature contributed
	// to its category score.
	Contribution float64 `json:"contribution"`
}

// ScoreResult is the outcome of comparing one live FeatureMap against a
// Baseline of the same kind. Ephemeral; persistence is a caller concern.
type ScoreResult struct {
	Kind    ComponentKind `json:"kind"`
	Overall float64       `json:"overall"` // 0-100; exactly 0 is reserved for "no comparable features"

	PerFeature  map[string]FeatureComparison `json:"per_feature"`
	PerCategory map[string]float64           `json:"per_category"`

	// ExcludedFeatureCount counts features skipped because they were present
	// only in the baseline or only in the live map.
	ExcludedFeatureCount int `json:"excluded_feature_count"`

	// Reason is set when Overall is the reserved zero.
	Reason string `json:"reason,omitempty"`
}

// Comparable reports whether the comparison actually measured anything.
func (r ScoreResult) Comparable() bool { return r.Reason == "" }

// Decision is the outcome of aggregating per-component scores against a
// pass threshold.
type Decision struct {
	Pass    bool    `json:"pass"`
	Overall float64 `json:"overall"`
	// Components echoes the per-kind overall scores that fed the decision.
	Components map[ComponentKind]float64 `json:"components"`
}
