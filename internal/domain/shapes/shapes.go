// Package shapes derives component-specific pattern features from canonical
// strokes: closure and roundness for circles, corner regularity for squares
// and triangles, symmetry for faces, structural decomposition for houses,
// and so on. Results live under the shape_ feature namespace and merge into
// the generic feature map.
//
// Analyzers never fail on bad input. Degenerate or uninterpretable stroke
// data produces neutral zero scores with a warning annotation.
package shapes

import (
	"github.com/okian/drawauth/internal/domain/features"
	"github.com/okian/drawauth/internal/domain/model"
)

// Shape feature names.
const (
	Roundness            = "shape_roundness"
	ClosureGap           = "shape_closure_gap"
	CornerRegularity     = "shape_corner_regularity"
	CornerCount          = "shape_corner_count"
	Symmetry             = "shape_symmetry"
	FeaturePlacement     = "shape_feature_placement"
	PointCount           = "shape_point_count"
	RayRegularity        = "shape_ray_regularity"
	StructureScore       = "shape_structure_score"
	ProportionScore      = "shape_proportion_score"
	OrderFidelity        = "shape_order_fidelity"
	ConnectionEfficiency = "shape_connection_efficiency"
)

// Analyzer computes shape features for every component kind.
type Analyzer struct {
	cornerAngle  float64 // radians; heading change that counts as a corner
	starAngle    float64 // radians; sharper threshold for star points
	dots         []model.Point
	dotTolerance float64 // fraction of the bounding-box diagonal
}

// NewAnalyzer creates an Analyzer with configuration options applied over
// the defaults.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		cornerAngle:  defaultCornerAngle,
		starAngle:    defaultStarAngle,
		dots:         defaultDotSequence(),
		dotTolerance: defaultDotTolerance,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze computes the shape features for a capture's kind. Kinds without
// shape features (signature) return an empty map; an empty capture returns
// the kind's shape features at neutral zero with a warning.
func (a *Analyzer) Analyze(c model.Capture) model.FeatureMap {
	fm := model.NewFeatureMap(c.Kind)
	names := features.ShapeFeatures(c.Kind)
	if len(names) == 0 {
		return fm
	}

	if c.Empty() || c.PointCount() == 0 {
		for _, name := range names {
			fm.Set(name, 0)
		}
		fm.Warnings = append(fm.Warnings, "no stroke data for shape analysis")
		return fm
	}

	switch c.Kind {
	case model.KindCircle:
		a.analyzeCircle(c.Strokes, fm)
	case model.KindSquare:
		a.analyzeSquare(c.Strokes, fm)
	case model.KindTriangle:
		a.analyzeTriangle(c.Strokes, fm)
	case model.KindFace:
		a.analyzeFace(c.Strokes, fm)
	case model.KindStar:
		a.analyzeStar(c.Strokes, fm)
	case model.KindHouse:
		a.analyzeHouse(c.Strokes, fm)
	case model.KindConnectDots:
		a.analyzeConnectDots(c.Strokes, fm)
	}
	return fm
}
