package shapes

import (
	"github.com/okian/drawauth/internal/domain/model"
)

// Structural weights and the roof/body height ratio a typical drawn house
// settles around.
const (
	roofWeight        = 0.4
	bodyWeight        = 0.4
	doorWeight        = 0.2
	idealRoofToBody   = 0.5
	roofBandFraction  = 1.0 / 3.0
	doorBandFraction  = 0.5
	doorMaxWidthFrac  = 0.4
	doorMaxHeightFrac = 0.6
)

// analyzeHouse decomposes strokes into roof, body, and door groups by their
// position within the bounding box, then scores structural completeness and
// roof-to-body proportion.
func (a *Analyzer) analyzeHouse(strokes []model.Stroke, fm model.FeatureMap) {
	b := boundingBox(strokes)
	if b.height() < epsilon {
		fm.Set(StructureScore, 0)
		fm.Set(ProportionScore, 0)
		fm.Warnings = append(fm.Warnings, "degenerate house bounding box")
		return
	}

	roofLine := b.minY + b.height()*roofBandFraction
	doorLine := b.minY + b.height()*doorBandFraction

	var roof, body, door []box
	for _, s := range strokes {
		sb := boundingBox([]model.Stroke{s})
		switch {
		case sb.maxY <= roofLine+b.height()*0.1:
			roof = append(roof, sb)
		case sb.minY >= doorLine &&
			sb.width() <= b.width()*doorMaxWidthFrac &&
			sb.height() <= b.height()*doorMaxHeightFrac:
			door = append(door, sb)
		default:
			body = append(body, sb)
		}
	}

	score := 0.0
	if len(roof) > 0 {
		score += roofWeight
	}
	if len(body) > 0 {
		score += bodyWeight
	}
	if len(door) > 0 {
		score += doorWeight
	}
	fm.Set(StructureScore, score)

	if len(roof) == 0 || len(body) == 0 {
		fm.Set(ProportionScore, 0)
		return
	}
	roofH := groupHeight(roof)
	bodyH := groupHeight(body)
	if bodyH < epsilon {
		fm.Set(ProportionScore, 0)
		return
	}
	ratio := roofH / bodyH
	fm.Set(ProportionScore, clamp01(1-abs(ratio-idealRoofToBody)/idealRoofToBody))
}

// groupHeight returns the vertical extent spanned by a group of boxes.
func groupHeight(group []box) float64 {
	lo, hi := group[0].minY, group[0].maxY
	for _, g := range group[1:] {
		if g.minY < lo {
			lo = g.minY
		}
		if g.maxY > hi {
			hi = g.maxY
		}
	}
	return hi - lo
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
