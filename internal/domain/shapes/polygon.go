package shapes

import (
	"math"

	"github.com/okian/drawauth/internal/domain/model"
)

// Interior-angle targets and tolerance for corner regularity scoring.
const (
	squareInterior   = math.Pi / 2
	triangleInterior = math.Pi / 3
	angleTolerance   = math.Pi / 4
)

// analyzeSquare detects direction-change points and scores how close their
// interior angles come to 90 degrees.
func (a *Analyzer) analyzeSquare(strokes []model.Stroke, fm model.FeatureMap) {
	b := boundingBox(strokes)
	cs := detectCorners(strokes, minSegFor(b), a.cornerAngle)

	fm.Set(CornerCount, float64(len(cs)))
	fm.Set(CornerRegularity, cornerRegularity(cs, squareInterior))
	if len(cs) == 0 {
		fm.Warnings = append(fm.Warnings, "no corners detected in square capture")
	}
}

// analyzeTriangle scores three expected vertices against the equilateral
// interior angle, plus the closure gap of the outline.
func (a *Analyzer) analyzeTriangle(strokes []model.Stroke, fm model.FeatureMap) {
	b := boundingBox(strokes)
	cs := detectCorners(strokes, minSegFor(b), a.cornerAngle)

	fm.Set(CornerRegularity, cornerRegularity(cs, triangleInterior))
	fm.Set(ClosureGap, closureGap(strokes))
	if len(cs) == 0 {
		fm.Warnings = append(fm.Warnings, "no corners detected in triangle capture")
	}
}

// cornerRegularity scores detected corners by how close their interior
// angles are to the target, 1 for exact and falling to 0 at the tolerance.
func cornerRegularity(cs []corner, target float64) float64 {
	if len(cs) == 0 {
		return 0
	}
	var scores []float64
	for _, c := range cs {
		interior := math.Pi - math.Abs(c.turn)
		scores = append(scores, clamp01(1-math.Abs(interior-target)/angleTolerance))
	}
	return mean(scores)
}

// cornerAngles returns each corner's angular position about the centroid.
func cornerAngles(cs []corner, cx, cy float64) []float64 {
	angles := make([]float64, 0, len(cs))
	for _, c := range cs {
		angles = append(angles, math.Atan2(c.pt.Y-cy, c.pt.X-cx))
	}
	return angles
}
