package shapes

import (
	"math"

	"github.com/okian/drawauth/internal/domain/model"
)

// Placement weights for the face-region score.
const (
	eyesWeight  = 0.6
	mouthWeight = 0.4
)

// analyzeFace scores bilateral symmetry about the vertical centerline and
// the plausibility of eye/mouth stroke placement within the bounding box.
func (a *Analyzer) analyzeFace(strokes []model.Stroke, fm model.FeatureMap) {
	b := boundingBox(strokes)
	if b.width() < epsilon || b.height() < epsilon {
		fm.Set(Symmetry, 0)
		fm.Set(FeaturePlacement, 0)
		fm.Warnings = append(fm.Warnings, "degenerate face bounding box")
		return
	}

	fm.Set(Symmetry, bilateralSymmetry(strokes, b))
	fm.Set(FeaturePlacement, facePlacement(strokes, b))
}

// bilateralSymmetry compares the point distribution left and right of the
// vertical centerline: balanced counts and matching mean offsets score high.
func bilateralSymmetry(strokes []model.Stroke, b box) float64 {
	cx := b.centerX()
	var leftOff, rightOff []float64
	for _, s := range strokes {
		for _, p := range s.Points {
			off := math.Abs(p.X - cx)
			if p.X < cx {
				leftOff = append(leftOff, off)
			} else {
				rightOff = append(rightOff, off)
			}
		}
	}
	total := len(leftOff) + len(rightOff)
	if total == 0 {
		return 0
	}

	countBalance := 1 - math.Abs(float64(len(leftOff)-len(rightOff)))/float64(total)
	halfWidth := b.width() / 2
	offsetBalance := 1 - math.Abs(mean(leftOff)-mean(rightOff))/math.Max(halfWidth, epsilon)
	return clamp01(0.5*clamp01(countBalance) + 0.5*clamp01(offsetBalance))
}

// facePlacement checks for eye-like strokes in the upper half, laterally
// separated, and a mouth-like stroke in the lower third.
func facePlacement(strokes []model.Stroke, b box) float64 {
	cx := b.centerX()
	upperY := b.minY + b.height()*0.5
	lowerY := b.minY + b.height()*2.0/3.0

	leftEye, rightEye, mouth := false, false, false
	for _, s := range strokes {
		sb := boundingBox([]model.Stroke{s})
		// Skip strokes spanning most of the face; those are the outline.
		if sb.width() > b.width()*0.7 && sb.height() > b.height()*0.7 {
			continue
		}
		cy := sb.centerY()
		switch {
		case cy < upperY && sb.centerX() < cx:
			leftEye = true
		case cy < upperY && sb.centerX() >= cx:
			rightEye = true
		case cy > lowerY:
			mouth = true
		}
	}

	score := 0.0
	if leftEye && rightEye {
		score += eyesWeight
	} else if leftEye || rightEye {
		score += eyesWeight / 2
	}
	if mouth {
		score += mouthWeight
	}
	return score
}
