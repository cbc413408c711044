package features

import (
	"math"

	"github.com/okian/drawauth/internal/domain/model"
)

// minHumanVelocityCV is the coefficient of variation below which velocity
// looks too uniform for a human hand. Mechanical reproduction (plotters,
// replayed traces) tends to move at near-constant speed.
const minHumanVelocityCV = 0.25

// securityFeatures computes the anomaly category, part of the enhanced
// feature set. Values are 0-1 suspicion/authenticity scores, not raw
// measurements.
func (e *Extractor) securityFeatures(strokes []model.Stroke, fm model.FeatureMap) {
	suspicious := suspiciousPauses(strokeGaps(strokes), float64(e.suspiciousPauseMS), e.suspiciousJitterMS)
	fm.Set(SuspiciousPauseCount, float64(suspicious))

	// Velocity uniformity: 0 for naturally varied speed, approaching 1 as
	// the velocity profile flattens toward machine-like constancy.
	uniformity := 0.0
	if vs := velocities(strokes); len(vs) > 1 {
		cv := coeffVar(vs)
		uniformity = clamp01((minHumanVelocityCV - cv) / minHumanVelocityCV)
	}
	fm.Set(VelocityUniformity, uniformity)

	pausePenalty := math.Min(1, float64(suspicious)/4)
	fm.Set(BehavioralAuthenticity, clamp01(1-0.5*uniformity-0.5*pausePenalty))
}

// suspiciousPauses counts long inter-stroke pauses that are also unnaturally
// regular. Tracing a reference image produces repeated look-then-draw pauses
// of near-identical length; genuine drawing does not.
func suspiciousPauses(gaps []float64, longMS, jitterMS float64) int {
	var long []float64
	for _, g := range gaps {
		if g > longMS {
			long = append(long, g)
		}
	}
	if len(long) < 2 {
		return 0
	}
	if stddev(long) < jitterMS {
		return len(long)
	}
	return 0
}
