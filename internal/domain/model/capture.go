// Package model contains domain models passed between layers.
package model

// ComponentKind identifies the kind of drawn component a capture represents.
type ComponentKind string

// Recognized component kinds.
const (
	KindSignature   ComponentKind = "signature"
	KindCircle      ComponentKind = "circle"
	KindSquare      ComponentKind = "square"
	KindTriangle    ComponentKind = "triangle"
	KindFace        ComponentKind = "face"
	KindStar        ComponentKind = "star"
	KindHouse       ComponentKind = "house"
	KindConnectDots ComponentKind = "connect_dots"
)

// Kinds lists every recognized component kind in a stable order.
func Kinds() []ComponentKind {
	return []ComponentKind{
		KindSignature, KindCircle, KindSquare, KindTriangle,
		KindFace, KindStar, KindHouse, KindConnectDots,
	}
}

// Valid reports whether k is a recognized component kind.
func (k ComponentKind) Valid() bool {
	switch k {
	case KindSignature, KindCircle, KindSquare, KindTriangle,
		KindFace, KindStar, KindHouse, KindConnectDots:
		return true
	}
	return false
}

// Point is one sampled pointer position. Pressure and tilt are optional;
// HasPressure/HasTilt report whether the device supplied them.
type Point struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	T           int64   `json:"t"` // milliseconds, monotonically non-decreasing within a stroke
	Pressure    float64 `json:"pressure,omitempty"`
	HasPressure bool    `json:"has_pressure,omitempty"`
	TiltX       float64 `json:"tilt_x,omitempty"`
	TiltY       float64 `json:"tilt_y,omitempty"`
	HasTilt     bool    `json:"has_tilt,omitempty"`
}

// Stroke is one continuous pointer-down interval. The normalizer guarantees
// it holds at least one point and that points are time-ordered.
type Stroke struct {
	Points []Point `json:"points"`
}

// Duration returns the elapsed milliseconds between the first and last point.
func (s Stroke) Duration() int64 {
	if len(s.Points) == 0 {
		return 0
	}
	return s.Points[len(s.Points)-1].T - s.Points[0].T
}

// Start returns the timestamp of the first point.
func (s Stroke) Start() int64 {
	if len(s.Points) == 0 {
		return 0
	}
	return s.Points[0].T
}

// End returns the timestamp of the last point.
func (s Stroke) End() int64 {
	if len(s.Points) == 0 {
		return 0
	}
	return s.Points[len(s.Points)-1].T
}

// DeviceCapabilities describes what the capturing pointer device can sense.
// Recorded alongside baselines so later comparisons know which feature
// exclusions applied at enrollment time.
type DeviceCapabilities struct {
	HasPressure    bool   `json:"has_pressure"`
	HasTilt        bool   `json:"has_tilt"`
	PointerType    string `json:"pointer_type"`    // e.g. "pen", "touch", "mouse"
	PrecisionClass string `json:"precision_class"` // e.g. "fine", "coarse"
}

// Capture is one recorded drawing session for one component kind, in
// canonical form. A capture with zero strokes is valid and marks an empty
// submission; it never carries empty placeholder strokes.
type Capture struct {
	ID      string             `json:"id"`
	Kind    ComponentKind      `json:"kind"`
	Strokes []Stroke           `json:"strokes"`
	Device  DeviceCapabilities `json:"device"`
}

// Empty reports whether the capture carries no stroke data.
func (c Capture) Empty() bool { return len(c.Strokes) == 0 }

// PointCount returns the total number of points across all strokes.
func (c Capture) PointCount() int {
	n := 0
	for _, s := range c.Strokes {
		n += len(s.Points)
	}
	return n
}
