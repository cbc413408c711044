// Package features derives the generic biometric feature map from canonical
// strokes. Extraction is a pure function of its inputs: no clock, no
// randomness, no shared state, so concurrent use needs no locking.
//
// Every sub-extractor validates its own input and degrades to neutral zero
// values instead of failing, so one malformed stroke never aborts extraction
// of the remaining categories.
package features

import (
	"math"

	"github.com/okian/drawauth/internal/domain/model"
)

// Default extraction thresholds.
const (
	defaultPauseThresholdMS  = 150
	defaultSuspiciousPauseMS = 800
	defaultSuspiciousJitter  = 50.0
	defaultReversalAngle     = math.Pi / 2

	// aspectRatioSentinel substitutes for width/height on degenerate
	// zero-height captures.
	aspectRatioSentinel = 1000.0

	// ExclusionNoPressure is the reason recorded when pressure features are
	// excluded for a device without pressure sensing.
	ExclusionNoPressure = "device lacks pressure sensing"
)

// Extractor computes the generic feature categories for a capture.
type Extractor struct {
	pauseThresholdMS   int64
	suspiciousPauseMS  int64
	suspiciousJitterMS float64
	reversalAngle      float64
	enhanced           bool
}

// NewExtractor creates an Extractor with configuration options applied over
// the defaults.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		pauseThresholdMS:   defaultPauseThresholdMS,
		suspiciousPauseMS:  defaultSuspiciousPauseMS,
		suspiciousJitterMS: defaultSuspiciousJitter,
		reversalAngle:      defaultReversalAngle,
		enhanced:           true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Enhanced reports whether the geometry and security categories are enabled.
func (e *Extractor) Enhanced() bool { return e.enhanced }

// Extract computes the generic feature map for a capture. An empty capture
// yields the full schema at neutral zero with the Empty flag set; it never
// fails. Pressure features are excluded, not zeroed, when the capturing
// device cannot sense pressure.
func (e *Extractor) Extract(c model.Capture) model.FeatureMap {
	fm := model.NewFeatureMap(c.Kind)

	if c.Empty() {
		for _, name := range Generic(e.enhanced) {
			fm.Set(name, 0)
		}
		fm.Empty = true
	} else {
		e.basicFeatures(c.Strokes, fm)
		e.velocityFeatures(c.Strokes, fm)
		e.spatialFeatures(c.Strokes, fm)
		e.lengthFeatures(c.Strokes, fm)
		e.pressureFeatures(c.Strokes, fm)
		e.timingFeatures(c.Strokes, fm)
		if e.enhanced {
			e.geometryFeatures(c.Strokes, fm)
			e.securityFeatures(c.Strokes, fm)
		}
	}

	if !c.Device.HasPressure {
		fm.Exclude(ExclusionNoPressure,
			AveragePressure, MaxPressure, MinPressure, PressureStd,
			PressureRange, PressureCoverage, PressureBuildupRate, PressureReleaseRate)
	}
	return fm
}

func (e *Extractor) basicFeatures(strokes []model.Stroke, fm model.FeatureMap) {
	total := 0
	minT, maxT := int64(math.MaxInt64), int64(math.MinInt64)
	for _, s := range strokes {
		total += len(s.Points)
		for _, p := range s.Points {
			if p.T < minT {
				minT = p.T
			}
			if p.T > maxT {
				maxT = p.T
			}
		}
	}

	fm.Set(StrokeCount, float64(len(strokes)))
	fm.Set(TotalPoints, float64(total))
	if total > 0 {
		fm.Set(TotalDurationMS, float64(maxT-minT))
	} else {
		fm.Set(TotalDurationMS, 0)
	}
	if len(strokes) > 0 {
		fm.Set(AveragePointsPerStroke, float64(total)/float64(len(strokes)))
	} else {
		fm.Set(AveragePointsPerStroke, 0)
	}
}

func (e *Extractor) velocityFeatures(strokes []model.Stroke, fm model.FeatureMap) {
	vs := velocities(strokes)
	lo, hi := minMax(vs)
	fm.Set(AverageVelocity, mean(vs))
	fm.Set(MaxVelocity, hi)
	fm.Set(MinVelocity, lo)
	fm.Set(VelocityStd, stddev(vs))
}

// velocities returns instantaneous velocities (px/ms) between consecutive
// points, skipping intervals with no elapsed time.
func velocities(strokes []model.Stroke) []float64 {
	var vs []float64
	for _, s := range strokes {
		for i := 1; i < len(s.Points); i++ {
			p1, p2 := s.Points[i-1], s.Points[i]
			dt := p2.T - p1.T
			if dt <= 0 {
				continue
			}
			vs = append(vs, dist(p1.X, p1.Y, p2.X, p2.Y)/float64(dt))
		}
	}
	return vs
}

func (e *Extractor) spatialFeatures(strokes []model.Stroke, fm model.FeatureMap) {
	first := true
	var minX, maxX, minY, maxY float64
	for _, s := range strokes {
		for _, p := range s.Points {
			if first {
				minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
				first = false
				continue
			}
			minX = math.Min(minX, p.X)
			maxX = math.Max(maxX, p.X)
			minY = math.Min(minY, p.Y)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if first {
		for _, name := range []string{MinX, MaxX, MinY, MaxY, Width, Height, Area, AspectRatio, CenterX, CenterY} {
			fm.Set(name, 0)
		}
		return
	}

	w, h := maxX-minX, maxY-minY
	fm.Set(MinX, minX)
	fm.Set(MaxX, maxX)
	fm.Set(MinY, minY)
	fm.Set(MaxY, maxY)
	fm.Set(Width, w)
	fm.Set(Height, h)
	fm.Set(Area, w*h)
	if h > epsilon {
		fm.Set(AspectRatio, w/h)
	} else {
		fm.Set(AspectRatio, aspectRatioSentinel)
	}
	fm.Set(CenterX, (minX+maxX)/2)
	fm.Set(CenterY, (minY+maxY)/2)
}

func (e *Extractor) lengthFeatures(strokes []model.Stroke, fm model.FeatureMap) {
	lengths := strokeLengths(strokes)
	total := 0.0
	for _, l := range lengths {
		total += l
	}
	fm.Set(AverageStrokeLength, mean(lengths))
	fm.Set(TotalLength, total)
	fm.Set(LengthVariation, stddev(lengths))
}

func strokeLengths(strokes []model.Stroke) []float64 {
	lengths := make([]float64, 0, len(strokes))
	for _, s := range strokes {
		l := 0.0
		for i := 1; i < len(s.Points); i++ {
			p1, p2 := s.Points[i-1], s.Points[i]
			l += dist(p1.X, p1.Y, p2.X, p2.Y)
		}
		lengths = append(lengths, l)
	}
	return lengths
}
