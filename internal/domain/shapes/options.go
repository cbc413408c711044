package shapes

import (
	"math"

	"github.com/okian/drawauth/internal/domain/model"
)

// Default analysis thresholds.
const (
	defaultCornerAngle  = 0.6 // ~34 degrees
	defaultStarAngle    = 1.75
	defaultDotTolerance = 0.15
)

// defaultDotSequence is the connect-the-dots layout the capture UI presents,
// in unit space; it is scaled to the capture's bounding box at analysis time.
func defaultDotSequence() []model.Point {
	return []model.Point{
		{X: 0.1, Y: 0.2},
		{X: 0.9, Y: 0.2},
		{X: 0.5, Y: 0.5},
		{X: 0.1, Y: 0.8},
		{X: 0.9, Y: 0.8},
	}
}

// Option applies a configuration option to the Analyzer.
type Option func(*Analyzer)

// WithCornerAngle sets the heading change, in radians, above which a turn
// counts as a polygon corner.
func WithCornerAngle(rad float64) Option {
	return func(a *Analyzer) {
		if rad > 0 && rad < math.Pi {
			a.cornerAngle = rad
		}
	}
}

// WithStarAngle sets the sharper heading-change threshold used when counting
// star points.
func WithStarAngle(rad float64) Option {
	return func(a *Analyzer) {
		if rad > 0 && rad < math.Pi {
			a.starAngle = rad
		}
	}
}

// WithDotSequence sets the expected connect-the-dots sequence, in unit
// coordinates scaled to the capture's bounding box.
func WithDotSequence(dots []model.Point) Option {
	return func(a *Analyzer) {
		if len(dots) > 0 {
			a.dots = dots
		}
	}
}

// WithDotTolerance sets how close, as a fraction of the bounding-box
// diagonal, the path must come to a dot to count as visiting it.
func WithDotTolerance(frac float64) Option {
	return func(a *Analyzer) {
		if frac > 0 && frac < 1 {
			a.dotTolerance = frac
		}
	}
}
