// Package synthetic generates deterministic hand-drawn captures for tests
// and tooling. Generated strokes carry realistic timing, a human-like
// velocity profile, and optional pressure, so extraction and scoring behave
// as they would on real input.
package synthetic

import (
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/okian/drawauth/internal/domain/model"
)

// Generation defaults.
const (
	defaultSeed      = 42
	defaultCanvas    = 400.0
	pointIntervalMS  = 12
	strokeGapMS      = 220
	jitterAmplitude  = 1.5
	pressureBase     = 0.55
	pressureSwing    = 0.25
	circlePoints     = 48
	sideSamplePoints = 12
)

// Generator builds deterministic synthetic captures. The zero seed is
// replaced with a fixed default so two generators with the same settings
// produce identical captures.
type Generator struct {
	rng    *rand.Rand
	canvas float64
	device model.DeviceCapabilities
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSeed fixes the random seed.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic captures for reproducible tests
	}
}

// WithCanvasSize sets the square canvas edge length in pixels.
func WithCanvasSize(px float64) Option {
	return func(g *Generator) {
		if px > 0 {
			g.canvas = px
		}
	}
}

// WithDevice sets the device capabilities stamped on generated captures.
func WithDevice(device model.DeviceCapabilities) Option {
	return func(g *Generator) {
		g.device = device
	}
}

// NewGenerator creates a Generator with configuration options applied over
// the defaults.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		rng:    rand.New(rand.NewSource(defaultSeed)), //nolint:gosec // deterministic captures for reproducible tests
		canvas: defaultCanvas,
		device: model.DeviceCapabilities{
			HasPressure:    true,
			PointerType:    "pen",
			PrecisionClass: "fine",
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Signature produces a multi-stroke wavy capture resembling a signature.
func (g *Generator) Signature() model.Capture {
	var strokes []model.Stroke
	t := int64(0)
	x0, y0 := g.canvas*0.1, g.canvas*0.5
	for s := 0; s < 3; s++ {
		stroke := model.Stroke{}
		for i := 0; i < 30; i++ {
			progress := float64(i) / 29
			x := x0 + progress*g.canvas*0.25
			y := y0 + math.Sin(progress*4*math.Pi+float64(s))*g.canvas*0.08
			stroke.Points = append(stroke.Points, g.point(x, y, t, progress))
			t += pointIntervalMS
		}
		strokes = append(strokes, stroke)
		x0 += g.canvas * 0.28
		t += strokeGapMS
	}
	return g.capture(model.KindSignature, strokes...)
}

// Circle produces a single nearly closed round stroke.
func (g *Generator) Circle() model.Capture {
	cx, cy := g.canvas/2, g.canvas/2
	r := g.canvas * 0.3
	stroke := model.Stroke{}
	t := int64(0)
	for i := 0; i <= circlePoints; i++ {
		angle := 2 * math.Pi * float64(i) / float64(circlePoints)
		progress := float64(i) / float64(circlePoints)
		stroke.Points = append(stroke.Points, g.point(
			cx+r*math.Cos(angle),
			cy+r*math.Sin(angle),
			t, progress))
		t += pointIntervalMS
	}
	return g.capture(model.KindCircle, stroke)
}

// Square produces a single stroke tracing the four sides of a square.
func (g *Generator) Square() model.Capture {
	lo, hi := g.canvas*0.2, g.canvas*0.8
	vertices := [][2]float64{{lo, lo}, {hi, lo}, {hi, hi}, {lo, hi}, {lo, lo}}
	return g.capture(model.KindSquare, g.polyline(vertices))
}

// Triangle produces a single stroke tracing a near-equilateral triangle.
func (g *Generator) Triangle() model.Capture {
	cx := g.canvas / 2
	top := g.canvas * 0.2
	base := g.canvas * 0.75
	half := g.canvas * 0.3
	vertices := [][2]float64{{cx, top}, {cx + half, base}, {cx - half, base}, {cx, top}}
	return g.capture(model.KindTriangle, g.polyline(vertices))
}

// Star produces a single stroke tracing a five-pointed star.
func (g *Generator) Star() model.Capture {
	cx, cy := g.canvas/2, g.canvas/2
	outer, inner := g.canvas*0.35, g.canvas*0.14
	var vertices [][2]float64
	for i := 0; i <= 10; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := -math.Pi/2 + math.Pi*float64(i)/5
		vertices = append(vertices, [2]float64{cx + r*math.Cos(angle), cy + r*math.Sin(angle)})
	}
	return g.capture(model.KindStar, g.polyline(vertices))
}

// Face produces an outline stroke, two eye strokes, and a mouth stroke.
func (g *Generator) Face() model.Capture {
	cx, cy := g.canvas/2, g.canvas/2
	r := g.canvas * 0.35
	outline := model.Stroke{}
	t := int64(0)
	for i := 0; i <= circlePoints; i++ {
		angle := 2 * math.Pi * float64(i) / float64(circlePoints)
		outline.Points = append(outline.Points, g.point(
			cx+r*math.Cos(angle), cy+r*math.Sin(angle), t, float64(i)/circlePoints))
		t += pointIntervalMS
	}

	strokes := []model.Stroke{outline}
	t += strokeGapMS
	for _, eyeX := range []float64{cx - r*0.4, cx + r*0.4} {
		eye := model.Stroke{}
		for i := 0; i < sideSamplePoints; i++ {
			angle := 2 * math.Pi * float64(i) / float64(sideSamplePoints-1)
			eye.Points = append(eye.Points, g.point(
				eyeX+r*0.1*math.Cos(angle), cy-r*0.3+r*0.1*math.Sin(angle),
				t, float64(i)/float64(sideSamplePoints-1)))
			t += pointIntervalMS
		}
		strokes = append(strokes, eye)
		t += strokeGapMS
	}

	mouth := model.Stroke{}
	for i := 0; i < sideSamplePoints; i++ {
		progress := float64(i) / float64(sideSamplePoints-1)
		mouth.Points = append(mouth.Points, g.point(
			cx-r*0.4+progress*r*0.8,
			cy+r*0.4+math.Sin(progress*math.Pi)*r*0.15,
			t, progress))
		t += pointIntervalMS
	}
	return g.capture(model.KindFace, append(strokes, mouth)...)
}

// House produces a roof stroke, a body stroke, and a door stroke.
func (g *Generator) House() model.Capture {
	left, right := g.canvas*0.25, g.canvas*0.75
	roofTop := g.canvas * 0.15
	wallTop := g.canvas * 0.45
	ground := g.canvas * 0.85
	cx := g.canvas / 2

	roof := g.polyline([][2]float64{{left, wallTop}, {cx, roofTop}, {right, wallTop}})
	body := g.polyline([][2]float64{{left, wallTop}, {right, wallTop}, {right, ground}, {left, ground}, {left, wallTop}})
	door := g.polyline([][2]float64{
		{cx - g.canvas*0.06, ground}, {cx - g.canvas*0.06, ground - g.canvas*0.18},
		{cx + g.canvas*0.06, ground - g.canvas*0.18}, {cx + g.canvas*0.06, ground},
	})
	return g.capture(model.KindHouse, roof, body, door)
}

// ConnectDots produces a stroke visiting the default dot layout in order.
func (g *Generator) ConnectDots() model.Capture {
	lo, hi := g.canvas*0.1, g.canvas*0.9
	mid := g.canvas / 2
	vertices := [][2]float64{
		{lo, g.canvas * 0.2}, {hi, g.canvas * 0.2}, {mid, mid},
		{lo, g.canvas * 0.8}, {hi, g.canvas * 0.8},
	}
	return g.capture(model.KindConnectDots, g.polyline(vertices))
}

// Capture produces a synthetic capture for any kind.
func (g *Generator) Capture(kind model.ComponentKind) model.Capture {
	switch kind {
	case model.KindCircle:
		return g.Circle()
	case model.KindSquare:
		return g.Square()
	case model.KindTriangle:
		return g.Triangle()
	case model.KindFace:
		return g.Face()
	case model.KindStar:
		return g.Star()
	case model.KindHouse:
		return g.House()
	case model.KindConnectDots:
		return g.ConnectDots()
	default:
		return g.Signature()
	}
}

// polyline samples the segments between vertices into one timed stroke.
func (g *Generator) polyline(vertices [][2]float64) model.Stroke {
	stroke := model.Stroke{}
	t := int64(0)
	total := float64((len(vertices) - 1) * sideSamplePoints)
	sampled := 0.0
	for v := 1; v < len(vertices); v++ {
		x1, y1 := vertices[v-1][0], vertices[v-1][1]
		x2, y2 := vertices[v][0], vertices[v][1]
		for i := 0; i < sideSamplePoints; i++ {
			frac := float64(i) / float64(sideSamplePoints-1)
			stroke.Points = append(stroke.Points, g.point(
				x1+(x2-x1)*frac, y1+(y2-y1)*frac, t, sampled/total))
			t += pointIntervalMS
			sampled++
		}
	}
	return stroke
}

// point adds hand jitter and, when the device supports it, a pressure value
// that builds at the start of a stroke and releases toward the end.
func (g *Generator) point(x, y float64, t int64, progress float64) model.Point {
	p := model.Point{
		X: x + (g.rng.Float64()-0.5)*jitterAmplitude,
		Y: y + (g.rng.Float64()-0.5)*jitterAmplitude,
		T: t,
	}
	if g.device.HasPressure {
		p.Pressure = pressureBase + pressureSwing*math.Sin(progress*math.Pi)
		p.HasPressure = true
	}
	return p
}

func (g *Generator) capture(kind model.ComponentKind, strokes ...model.Stroke) model.Capture {
	return model.Capture{
		ID:      uuid.NewString(),
		Kind:    kind,
		Strokes: strokes,
		Device:  g.device,
	}
}
