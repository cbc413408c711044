// Package normalize converts captured pointer data from any of the accepted
// wire shapes into the canonical model.Capture form. It is the only package
// permitted to know about wire-format variation; everything downstream
// operates on the validated canonical representation.
//
// Malformed input never raises: strokes without usable points are dropped,
// points without numeric coordinates are dropped, and payloads with no valid
// stroke data at all produce an explicit empty Capture.
package normalize

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/google/uuid"

	"github.com/okian/drawauth/internal/domain/model"
)

// format tags the recognized wire encodings.
type format int

const (
	formatUnknown       format = iota
	formatPointRows            // [[{x,y,t},...], ...]
	formatStrokeObjects        // [{"points":[...]}, ...]
	formatWrapper              // {"strokes":[...]} or legacy {"data":[...]}
)

// payload is the tagged union a raw body decodes into before conversion.
type payload struct {
	format  format
	id      string
	strokes []wireStroke
}

// wireStroke carries points as raw JSON so a missing or non-array points
// field skips just that stroke.
type wireStroke struct {
	Points json.RawMessage `json:"points"`
}

// wirePoint accepts the timestamp under any of the keys seen in the wild.
type wirePoint struct {
	X         *float64 `json:"x"`
	Y         *float64 `json:"y"`
	T         *int64   `json:"t"`
	Time      *int64   `json:"time"`
	Timestamp *int64   `json:"timestamp"`
	Pressure  *float64 `json:"pressure"`
	TiltX     *float64 `json:"tiltX"`
	TiltY     *float64 `json:"tiltY"`
}

// wireWrapper is the legacy envelope shape. Older clients posted the stroke
// rows under "data" instead of "strokes".
type wireWrapper struct {
	ID      string          `json:"id"`
	Strokes json.RawMessage `json:"strokes"`
	Data    json.RawMessage `json:"data"`
}

// Capture normalizes a raw wire body into a canonical Capture for the given
// kind and device. Unrecognized or structurally empty input yields an empty
// Capture value, never an error.
func Capture(kind model.ComponentKind, device model.DeviceCapabilities, raw []byte) model.Capture {
	p := decode(raw)
	c := model.Capture{
		ID:      p.id,
		Kind:    kind,
		Strokes: convert(p),
		Device:  device,
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return c
}

// Strokes normalizes a raw wire body into canonical strokes only. Exposed for
// callers that manage capture identity themselves.
func Strokes(raw []byte) []model.Stroke {
	return convert(decode(raw))
}

// decode sniffs the wire shape and produces the tagged payload. It never
// fails; anything unrecognizable comes back as formatUnknown with no strokes.
func decode(raw []byte) payload {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return payload{format: formatUnknown}
	}

	switch raw[0] {
	case '[':
		return decodeRows(raw)
	case '{':
		var w wireWrapper
		if err := json.Unmarshal(raw, &w); err != nil {
			return payload{format: formatUnknown}
		}
		inner := w.Strokes
		if inner == nil {
			inner = w.Data
		}
		if inner == nil {
			return payload{format: formatUnknown}
		}
		p := decodeRows(bytes.TrimSpace(inner))
		p.format = formatWrapper
		p.id = w.ID
		return p
	}
	return payload{format: formatUnknown}
}

// decodeRows handles the two top-level array shapes: rows of points, or
// stroke objects carrying a points field. Rows of the wrong shape are
// skipped rather than failing the whole payload.
func decodeRows(raw []byte) payload {
	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return payload{format: formatUnknown}
	}

	p := payload{format: formatPointRows}
	for _, row := range rows {
		row = bytes.TrimSpace(row)
		if len(row) == 0 {
			continue
		}
		switch row[0] {
		case '[':
			p.strokes = append(p.strokes, wireStroke{Points: row})
		case '{':
			var s wireStroke
			if err := json.Unmarshal(row, &s); err != nil {
				continue
			}
			p.format = formatStrokeObjects
			p.strokes = append(p.strokes, s)
		}
	}
	return p
}

// convert turns a decoded payload into canonical strokes, dropping invalid
// points and strokes left empty after filtering.
func convert(p payload) []model.Stroke {
	var out []model.Stroke
	for _, ws := range p.strokes {
		if len(ws.Points) == 0 {
			continue // stroke had no points field
		}
		var pts []wirePoint
		if err := json.Unmarshal(ws.Points, &pts); err != nil {
			continue // points was not a sequence
		}

		stroke := model.Stroke{}
		var prevT int64
		for _, wp := range pts {
			pt, ok := canonPoint(wp, prevT)
			if !ok {
				continue
			}
			prevT = pt.T
			stroke.Points = append(stroke.Points, pt)
		}
		if len(stroke.Points) == 0 {
			continue // nothing valid survived filtering
		}
		out = append(out, stroke)
	}
	return out
}

// canonPoint validates and converts one wire point. Points without finite
// numeric coordinates are rejected. A missing timestamp inherits the
// previous point's, and timestamps are clamped to be non-decreasing.
func canonPoint(wp wirePoint, prevT int64) (model.Point, bool) {
	if wp.X == nil || wp.Y == nil {
		return model.Point{}, false
	}
	x, y := *wp.X, *wp.Y
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return model.Point{}, false
	}

	pt := model.Point{X: x, Y: y, T: prevT}
	switch {
	case wp.T != nil:
		pt.T = *wp.T
	case wp.Time != nil:
		pt.T = *wp.Time
	case wp.Timestamp != nil:
		pt.T = *wp.Timestamp
	}
	if pt.T < prevT {
		pt.T = prevT
	}

	if wp.Pressure != nil && !math.IsNaN(*wp.Pressure) {
		pt.Pressure = math.Max(0, math.Min(1, *wp.Pressure))
		pt.HasPressure = true
	}
	if wp.TiltX != nil {
		pt.TiltX = *wp.TiltX
		pt.HasTilt = true
	}
	if wp.TiltY != nil {
		pt.TiltY = *wp.TiltY
		pt.HasTilt = true
	}
	return pt, true
}
