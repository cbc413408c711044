package shapes

import (
	"math"

	"github.com/okian/drawauth/internal/domain/model"
)

// analyzeCircle scores how circular the capture is: radial consistency
// around the centroid, and how completely the expected single stroke closes
// on itself.
func (a *Analyzer) analyzeCircle(strokes []model.Stroke, fm model.FeatureMap) {
	cx, cy, n := centroid(strokes)
	if n < 3 {
		fm.Set(Roundness, 0)
		fm.Set(ClosureGap, 0)
		fm.Warnings = append(fm.Warnings, "too few points for circle analysis")
		return
	}

	var radii []float64
	for _, s := range strokes {
		for _, p := range s.Points {
			radii = append(radii, math.Hypot(p.X-cx, p.Y-cy))
		}
	}

	// A perfect circle has constant radius; roundness is 1 minus the radial
	// coefficient of variation.
	m := mean(radii)
	if m < epsilon {
		fm.Set(Roundness, 0)
		fm.Set(ClosureGap, 0)
		fm.Warnings = append(fm.Warnings, "degenerate circle radius")
		return
	}
	fm.Set(Roundness, clamp01(1-stddev(radii)/m))
	fm.Set(ClosureGap, closureGap(strokes))
}

// closureGap returns the distance between the first and last drawn point,
// normalized by the perimeter estimate. 0 means perfectly closed.
func closureGap(strokes []model.Stroke) float64 {
	if len(strokes) == 0 {
		return 0
	}
	firstStroke := strokes[0]
	lastStroke := strokes[len(strokes)-1]
	if len(firstStroke.Points) == 0 || len(lastStroke.Points) == 0 {
		return 0
	}
	first := firstStroke.Points[0]
	last := lastStroke.Points[len(lastStroke.Points)-1]

	perimeter := pathLength(strokes)
	if perimeter < epsilon {
		return 0
	}
	return clamp01(math.Hypot(last.X-first.X, last.Y-first.Y) / perimeter)
}
