package shapes

import (
	"math"

	"github.com/okian/drawauth/internal/domain/model"
)

// analyzeConnectDots scores path-order fidelity against the expected dot
// sequence and the efficiency of the drawn path versus the optimal one.
// The dot sequence is configured in unit space and scaled to the capture's
// bounding box.
func (a *Analyzer) analyzeConnectDots(strokes []model.Stroke, fm model.FeatureMap) {
	b := boundingBox(strokes)
	if b.diag() < epsilon || len(a.dots) < 2 {
		fm.Set(OrderFidelity, 0)
		fm.Set(ConnectionEfficiency, 0)
		fm.Warnings = append(fm.Warnings, "connect-the-dots capture not interpretable")
		return
	}

	dots := scaleDots(a.dots, b)
	tolerance := b.diag() * a.dotTolerance

	fm.Set(OrderFidelity, orderFidelity(strokes, dots, tolerance))

	optimal := 0.0
	for i := 1; i < len(dots); i++ {
		optimal += math.Hypot(dots[i].X-dots[i-1].X, dots[i].Y-dots[i-1].Y)
	}
	drawn := pathLength(strokes)
	if drawn < epsilon {
		fm.Set(ConnectionEfficiency, 0)
		return
	}
	fm.Set(ConnectionEfficiency, clamp01(optimal/drawn))
}

// scaleDots maps unit-space dot positions onto the capture bounding box.
func scaleDots(dots []model.Point, b box) []model.Point {
	out := make([]model.Point, len(dots))
	for i, d := range dots {
		out[i] = model.Point{
			X: b.minX + d.X*b.width(),
			Y: b.minY + d.Y*b.height(),
		}
	}
	return out
}

// orderFidelity walks the expected dots in order and checks that the drawn
// path first reaches each one no earlier than it reached its predecessor.
func orderFidelity(strokes []model.Stroke, dots []model.Point, tolerance float64) float64 {
	hits := 0
	lastVisit := int64(math.MinInt64)
	for _, d := range dots {
		t, ok := firstVisit(strokes, d, tolerance)
		if ok && t >= lastVisit {
			hits++
			lastVisit = t
		}
	}
	return float64(hits) / float64(len(dots))
}

// firstVisit returns the timestamp at which the path first comes within
// tolerance of the dot.
func firstVisit(strokes []model.Stroke, dot model.Point, tolerance float64) (int64, bool) {
	best := int64(0)
	found := false
	for _, s := range strokes {
		for _, p := range s.Points {
			if math.Hypot(p.X-dot.X, p.Y-dot.Y) <= tolerance {
				if !found || p.T < best {
					best = p.T
					found = true
				}
			}
		}
	}
	return best, found
}
