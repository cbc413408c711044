package shapes

import (
	"math"

	"github.com/okian/drawauth/internal/domain/model"
)

const epsilon = 1e-9

// box is an axis-aligned bounding box.
type box struct {
	minX, maxX, minY, maxY float64
}

func (b box) width() float64  { return b.maxX - b.minX }
func (b box) height() float64 { return b.maxY - b.minY }
func (b box) diag() float64   { return math.Hypot(b.width(), b.height()) }
func (b box) centerX() float64 {
	return (b.minX + b.maxX) / 2
}
func (b box) centerY() float64 {
	return (b.minY + b.maxY) / 2
}

// boundingBox computes the bounding box over the given strokes. Raw strokes
// rarely carry precomputed bounds, so every analyzer goes through here.
// Degenerate input yields the zero box rather than failing.
func boundingBox(strokes []model.Stroke) box {
	var b box
	first := true
	for _, s := range strokes {
		for _, p := range s.Points {
			if first {
				b = box{minX: p.X, maxX: p.X, minY: p.Y, maxY: p.Y}
				first = false
				continue
			}
			b.minX = math.Min(b.minX, p.X)
			b.maxX = math.Max(b.maxX, p.X)
			b.minY = math.Min(b.minY, p.Y)
			b.maxY = math.Max(b.maxY, p.Y)
		}
	}
	return b
}

func centroid(strokes []model.Stroke) (x, y float64, n int) {
	for _, s := range strokes {
		for _, p := range s.Points {
			x += p.X
			y += p.Y
			n++
		}
	}
	if n == 0 {
		return 0, 0, 0
	}
	return x / float64(n), y / float64(n), n
}

func pathLength(strokes []model.Stroke) float64 {
	total := 0.0
	for _, s := range strokes {
		for i := 1; i < len(s.Points); i++ {
			p1, p2 := s.Points[i-1], s.Points[i]
			total += math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
		}
	}
	return total
}

// corner is a detected direction-change point.
type corner struct {
	pt   model.Point
	turn float64 // signed heading change in radians
}

// detectCorners finds direction-change points sharper than angleThresh
// across all strokes. Each stroke is first simplified to vertices at least
// minSeg apart so dense sampling noise does not fake corners.
func detectCorners(strokes []model.Stroke, minSeg, angleThresh float64) []corner {
	var out []corner
	for _, s := range strokes {
		verts := simplify(s.Points, minSeg)
		for i := 1; i < len(verts)-1; i++ {
			h1 := math.Atan2(verts[i].Y-verts[i-1].Y, verts[i].X-verts[i-1].X)
			h2 := math.Atan2(verts[i+1].Y-verts[i].Y, verts[i+1].X-verts[i].X)
			turn := normAngle(h2 - h1)
			if math.Abs(turn) > angleThresh {
				out = append(out, corner{pt: verts[i], turn: turn})
			}
		}
	}
	return out
}

// simplify keeps only vertices at least minSeg apart, always retaining the
// first and last point.
func simplify(pts []model.Point, minSeg float64) []model.Point {
	if len(pts) < 2 {
		return pts
	}
	out := []model.Point{pts[0]}
	for _, p := range pts[1 : len(pts)-1] {
		last := out[len(out)-1]
		if math.Hypot(p.X-last.X, p.Y-last.Y) >= minSeg {
			out = append(out, p)
		}
	}
	return append(out, pts[len(pts)-1])
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

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func stddev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)))
}

// minSegFor scales corner-detection segment length to the drawing size.
func minSegFor(b box) float64 {
	return math.Max(2, b.diag()*0.02)
}
