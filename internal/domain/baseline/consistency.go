package baseline

import (
	"math"

	"github.com/okian/drawauth/internal/domain/features"
	"github.com/okian/drawauth/internal/domain/model"
)

// ConsistencyReport summarizes how repeatable a user's enrollment samples
// are on a few headline features. Values are 0-1, where 1 means the samples
// agree exactly. Callers use it to advise threshold tuning, not to gate
// enrollment.
type ConsistencyReport struct {
	Velocity    float64 `json:"velocity_consistency"`
	StrokeCount float64 `json:"stroke_count_consistency"`
	Area        float64 `json:"area_consistency"`
	SampleCount int     `json:"sample_count"`
}

// Consistency computes the report over enrollment samples. Fewer than two
// samples yields the zero report; there is nothing to compare.
func Consistency(samples []model.FeatureMap) ConsistencyReport {
	if len(samples) < 2 {
		return ConsistencyReport{SampleCount: len(samples)}
	}
	return ConsistencyReport{
		Velocity:    featureConsistency(samples, features.AverageVelocity),
		StrokeCount: featureConsistency(samples, features.StrokeCount),
		Area:        featureConsistency(samples, features.Area),
		SampleCount: len(samples),
	}
}

// featureConsistency is 1 minus the coefficient of variation of one feature
// across the samples, clamped to [0,1].
func featureConsistency(samples []model.FeatureMap, name string) float64 {
	var values []float64
	for _, s := range samples {
		if v, ok := s.Get(name); ok {
			values = append(values, v)
		}
	}
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	if math.Abs(m) < 1e-9 {
		return 0
	}
	return math.Max(0, math.Min(1, 1-stddev(values)/m))
}
