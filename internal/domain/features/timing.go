package features

import (
	"math"

	"github.com/okian/drawauth/internal/domain/model"
)

// timingFeatures computes the timing/rhythm category from per-stroke
// durations and the gaps between consecutive strokes.
func (e *Extractor) timingFeatures(strokes []model.Stroke, fm model.FeatureMap) {
	durations := make([]float64, 0, len(strokes))
	for _, s := range strokes {
		durations = append(durations, float64(s.Duration()))
	}
	gaps := strokeGaps(strokes)

	pauses := 0
	pauseTime := 0.0
	for _, g := range gaps {
		if g > float64(e.pauseThresholdMS) {
			pauses++
		}
		pauseTime += g
	}
	fm.Set(PauseCount, float64(pauses))

	// Rhythm consistency: 1 for perfectly even stroke durations, falling
	// toward 0 as the coefficient of variation grows.
	fm.Set(DurationConsistency, clamp01(1-coeffVar(durations)))
	fm.Set(AverageDwellTime, mean(durations))
	fm.Set(AverageStrokeGap, mean(gaps))

	totalMS, _ := fm.Get(TotalDurationMS)
	if totalMS > epsilon {
		fm.Set(PauseTimeRatio, clamp01(pauseTime/totalMS))
	} else {
		fm.Set(PauseTimeRatio, 0)
	}
}

// strokeGaps returns the idle milliseconds between consecutive strokes.
// Overlapping timestamps clamp to zero rather than going negative.
func strokeGaps(strokes []model.Stroke) []float64 {
	var gaps []float64
	for i := 1; i < len(strokes); i++ {
		gaps = append(gaps, math.Max(0, float64(strokes[i].Start()-strokes[i-1].End())))
	}
	return gaps
}
