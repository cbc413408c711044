package features

import "github.com/okian/drawauth/internal/domain/model"

// rampWindow bounds how many points at a stroke's start/end feed the
// pressure buildup and release rates.
const rampWindow = 5

// pressureFeatures computes the pressure category. It runs regardless of
// device capability; Extract removes the whole category afterwards for
// devices without pressure sensing.
func (e *Extractor) pressureFeatures(strokes []model.Stroke, fm model.FeatureMap) {
	var ps []float64
	total := 0
	for _, s := range strokes {
		for _, p := range s.Points {
			total++
			if p.HasPressure {
				ps = append(ps, p.Pressure)
			}
		}
	}

	lo, hi := minMax(ps)
	fm.Set(AveragePressure, mean(ps))
	fm.Set(MaxPressure, hi)
	fm.Set(MinPressure, lo)
	fm.Set(PressureStd, stddev(ps))
	fm.Set(PressureRange, hi-lo)
	if total > 0 {
		fm.Set(PressureCoverage, float64(len(ps))/float64(total))
	} else {
		fm.Set(PressureCoverage, 0)
	}
	fm.Set(PressureBuildupRate, mean(pressureRamps(strokes, false)))
	fm.Set(PressureReleaseRate, mean(pressureRamps(strokes, true)))
}

// pressureRamps returns per-stroke pressure change rates (per ms) over the
// first few points of each stroke, or the last few when release is true.
// Release rates are reported as positive drop rates.
func pressureRamps(strokes []model.Stroke, release bool) []float64 {
	var rates []float64
	for _, s := range strokes {
		pts := pressurePoints(s)
		if len(pts) < 2 {
			continue
		}
		window := pts[:min(rampWindow, len(pts))]
		if release {
			window = pts[max(0, len(pts)-rampWindow):]
		}
		first, last := window[0], window[len(window)-1]
		dt := last.T - first.T
		if dt <= 0 {
			continue
		}
		rate := (last.Pressure - first.Pressure) / float64(dt)
		if release {
			rate = -rate
		}
		rates = append(rates, rate)
	}
	return rates
}

func pressurePoints(s model.Stroke) []model.Point {
	var pts []model.Point
	for _, p := range s.Points {
		if p.HasPressure {
			pts = append(pts, p)
		}
	}
	return pts
}
