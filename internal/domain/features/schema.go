package features

import "github.com/okian/drawauth/internal/domain/model"

// SchemaVersion identifies the fixed feature schema emitted by this package.
// Bump it whenever a feature is added, removed, or renamed so persisted
// FeatureMaps and Baselines can be told apart across versions.
const SchemaVersion = 1

// Feature categories. Scoring weights are applied per category.
const (
	CategoryBasic    = "basic"
	CategoryVelocity = "velocity"
	CategorySpatial  = "spatial"
	CategoryLength   = "length"
	CategoryPressure = "pressure"
	CategoryTiming   = "timing"
	CategoryGeometry = "geometry"
	CategorySecurity = "security"
	CategoryShape    = "shape"
)

// Generic feature names, grouped by category.
const (
	StrokeCount            = "stroke_count"
	TotalPoints            = "total_points"
	TotalDurationMS        = "total_duration_ms"
	AveragePointsPerStroke = "average_points_per_stroke"

	AverageVelocity = "average_velocity"
	MaxVelocity     = "max_velocity"
	MinVelocity     = "min_velocity"
	VelocityStd     = "velocity_std"

	MinX        = "min_x"
	MaxX        = "max_x"
	MinY        = "min_y"
	MaxY        = "max_y"
	Width       = "width"
	Height      = "height"
	Area        = "area"
	AspectRatio = "aspect_ratio"
	CenterX     = "center_x"
	CenterY     = "center_y"

	AverageStrokeLength = "average_stroke_length"
	TotalLength         = "total_length"
	LengthVariation     = "length_variation"

	AveragePressure     = "average_pressure"
	MaxPressure         = "max_pressure"
	MinPressure         = "min_pressure"
	PressureStd         = "pressure_std"
	PressureRange       = "pressure_range"
	PressureCoverage    = "pressure_coverage"
	PressureBuildupRate = "pressure_buildup_rate"
	PressureReleaseRate = "pressure_release_rate"

	PauseCount          = "pause_count"
	DurationConsistency = "duration_consistency"
	AverageDwellTime    = "average_dwell_time"
	AverageStrokeGap    = "average_stroke_gap"
	PauseTimeRatio      = "pause_time_ratio"

	AverageComplexity  = "average_complexity"
	Smoothness         = "smoothness"
	DirectionReversals = "direction_reversals"
	AverageCurvature   = "average_curvature"
	SpatialEfficiency  = "spatial_efficiency"

	SuspiciousPauseCount   = "suspicious_pause_count"
	VelocityUniformity     = "velocity_uniformity"
	BehavioralAuthenticity = "behavioral_authenticity"
)

// schemaEntry ties a feature name to its category; order here is the stable
// flat ordering callers rely on when feeding feature vectors elsewhere.
type schemaEntry struct {
	name     string
	category string
}

var genericSchema = []schemaEntry{
	{StrokeCount, CategoryBasic},
	{TotalPoints, CategoryBasic},
	{TotalDurationMS, CategoryBasic},
	{AveragePointsPerStroke, CategoryBasic},

	{AverageVelocity, CategoryVelocity},
	{MaxVelocity, CategoryVelocity},
	{MinVelocity, CategoryVelocity},
	{VelocityStd, CategoryVelocity},

	{MinX, CategorySpatial},
	{MaxX, CategorySpatial},
	{MinY, CategorySpatial},
	{MaxY, CategorySpatial},
	{Width, CategorySpatial},
	{Height, CategorySpatial},
	{Area, CategorySpatial},
	{AspectRatio, CategorySpatial},
	{CenterX, CategorySpatial},
	{CenterY, CategorySpatial},

	{AverageStrokeLength, CategoryLength},
	{TotalLength, CategoryLength},
	{LengthVariation, CategoryLength},

	{AveragePressure, CategoryPressure},
	{MaxPressure, CategoryPressure},
	{MinPressure, CategoryPressure},
	{PressureStd, CategoryPressure},
	{PressureRange, CategoryPressure},
	{PressureCoverage, CategoryPressure},
	{PressureBuildupRate, CategoryPressure},
	{PressureReleaseRate, CategoryPressure},

	{PauseCount, CategoryTiming},
	{DurationConsistency, CategoryTiming},
	{AverageDwellTime, CategoryTiming},
	{AverageStrokeGap, CategoryTiming},
	{PauseTimeRatio, CategoryTiming},

	{AverageComplexity, CategoryGeometry},
	{Smoothness, CategoryGeometry},
	{DirectionReversals, CategoryGeometry},
	{AverageCurvature, CategoryGeometry},
	{SpatialEfficiency, CategoryGeometry},

	{SuspiciousPauseCount, CategorySecurity},
	{VelocityUniformity, CategorySecurity},
	{BehavioralAuthenticity, CategorySecurity},
}

// shapeSchema lists the component-specific features per kind, in stable
// order. Signature captures carry generic features only.
var shapeSchema = map[model.ComponentKind][]string{
	model.KindCircle:      {"shape_roundness", "shape_closure_gap"},
	model.KindSquare:      {"shape_corner_regularity", "shape_corner_count"},
	model.KindTriangle:    {"shape_corner_regularity", "shape_closure_gap"},
	model.KindFace:        {"shape_symmetry", "shape_feature_placement"},
	model.KindStar:        {"shape_point_count", "shape_ray_regularity"},
	model.KindHouse:       {"shape_structure_score", "shape_proportion_score"},
	model.KindConnectDots: {"shape_order_fidelity", "shape_connection_efficiency"},
}

// Generic returns the ordered generic feature names. When enhanced is false
// the geometry and security categories are omitted.
func Generic(enhanced bool) []string {
	out := make([]string, 0, len(genericSchema))
	for _, e := range genericSchema {
		if !enhanced && (e.category == CategoryGeometry || e.category == CategorySecurity) {
			continue
		}
		out = append(out, e.name)
	}
	return out
}

// ForKind returns the full ordered feature schema for a component kind:
// the generic features followed by the kind's shape features.
func ForKind(kind model.ComponentKind, enhanced bool) []string {
	out := Generic(enhanced)
	return append(out, shapeSchema[kind]...)
}

// ShapeFeatures returns the component-specific feature names for a kind.
func ShapeFeatures(kind model.ComponentKind) []string {
	return shapeSchema[kind]
}

// CategoryOf returns the category a feature belongs to, or "" for names
// outside the schema. Shape features are recognized by namespace.
func CategoryOf(name string) string {
	if len(name) > 6 && name[:6] == "shape_" {
		return CategoryShape
	}
	for _, e := range genericSchema {
		if e.name == name {
			return e.category
		}
	}
	return ""
}
