package shapes

import (
	"math"
	"sort"

	"github.com/okian/drawauth/internal/domain/model"
)

// analyzeStar counts star points from sharp direction changes and scores how
// evenly the detected rays are spread around the centroid.
func (a *Analyzer) analyzeStar(strokes []model.Stroke, fm model.FeatureMap) {
	b := boundingBox(strokes)
	cs := detectCorners(strokes, minSegFor(b), a.starAngle)
	fm.Set(PointCount, float64(len(cs)))

	if len(cs) < 3 {
		fm.Set(RayRegularity, 0)
		if len(cs) == 0 {
			fm.Warnings = append(fm.Warnings, "no star points detected")
		}
		return
	}

	cx, cy, _ := centroid(strokes)
	angles := cornerAngles(cs, cx, cy)
	sort.Float64s(angles)

	// Angular spacing between consecutive rays, including the wrap-around
	// gap. Even spacing means spacings near 2*pi/n.
	spacings := make([]float64, 0, len(angles))
	for i := 1; i < len(angles); i++ {
		spacings = append(spacings, angles[i]-angles[i-1])
	}
	spacings = append(spacings, 2*math.Pi-(angles[len(angles)-1]-angles[0]))

	expected := 2 * math.Pi / float64(len(angles))
	var devs []float64
	for _, sp := range spacings {
		devs = append(devs, math.Abs(sp-expected)/expected)
	}
	fm.Set(RayRegularity, clamp01(1-mean(devs)))
}
