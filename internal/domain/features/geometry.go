package features

import (
	"math"

	"github.com/okian/drawauth/internal/domain/model"
)

// maxComplexity caps the path-to-chord ratio so near-closed strokes do not
// dominate the feature with unbounded values.
const maxComplexity = 100.0

// geometryFeatures computes the geometric-complexity category, part of the
// enhanced feature set.
func (e *Extractor) geometryFeatures(strokes []model.Stroke, fm model.FeatureMap) {
	var complexities []float64
	var turns []float64
	reversals := 0

	for _, s := range strokes {
		if len(s.Points) < 2 {
			continue
		}
		first, last := s.Points[0], s.Points[len(s.Points)-1]
		chord := dist(first.X, first.Y, last.X, last.Y)
		length := 0.0
		for i := 1; i < len(s.Points); i++ {
			p1, p2 := s.Points[i-1], s.Points[i]
			length += dist(p1.X, p1.Y, p2.X, p2.Y)
		}
		if chord > epsilon {
			complexities = append(complexities, math.Min(maxComplexity, math.Max(1, length/chord)))
		} else if length > epsilon {
			// Closed or self-returning stroke: all ink, no displacement.
			complexities = append(complexities, maxComplexity)
		}

		for _, turn := range headingChanges(s) {
			a := math.Abs(turn)
			turns = append(turns, a)
			if a > e.reversalAngle {
				reversals++
			}
		}
	}

	fm.Set(AverageComplexity, mean(complexities))
	// Smoothness shrinks as the local direction angle becomes erratic.
	variance := stddev(turns) * stddev(turns)
	fm.Set(Smoothness, 1/(1+variance))
	fm.Set(DirectionReversals, float64(reversals))
	fm.Set(AverageCurvature, mean(turns))

	total, _ := fm.Get(TotalLength)
	w, _ := fm.Get(Width)
	h, _ := fm.Get(Height)
	diag := math.Hypot(w, h)
	if diag > epsilon {
		fm.Set(SpatialEfficiency, total/diag)
	} else {
		fm.Set(SpatialEfficiency, 0)
	}
}

// headingChanges returns the signed heading change at each interior point of
// a stroke, normalized to (-pi, pi].
func headingChanges(s model.Stroke) []float64 {
	if len(s.Points) < 3 {
		return nil
	}
	var changes []float64
	prev := math.NaN()
	for i := 1; i < len(s.Points); i++ {
		p1, p2 := s.Points[i-1], s.Points[i]
		dx, dy := p2.X-p1.X, p2.Y-p1.Y
		if math.Abs(dx) < epsilon && math.Abs(dy) < epsilon {
			continue // stationary sample, no heading
		}
		h := math.Atan2(dy, dx)
		if !math.IsNaN(prev) {
			changes = append(changes, normAngle(h-prev))
		}
		prev = h
	}
	return changes
}

func normAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
