package features_test

import (
	"testing"

	"github.com/okian/drawauth/internal/domain/features"
	"github.com/okian/drawauth/internal/domain/model"
	"github.com/okian/drawauth/internal/synthetic"
	. "github.com/smartystreets/goconvey/convey"
)

// machineTrace builds strokes drawn at perfectly constant speed, separated by
// the given inter-stroke gaps. This is what a replayed or plotted capture
// looks like.
func machineTrace(gapsMS ...int64) model.Capture {
	var strokes []model.Stroke
	t := int64(0)
	for s := 0; s <= len(gapsMS); s++ {
		stroke := model.Stroke{}
		for i := 0; i <= 10; i++ {
			stroke.Points = append(stroke.Points, model.Point{
				X: float64(i * 10),
				Y: float64(s * 30),
				T: t,
			})
			t += 10
		}
		strokes = append(strokes, stroke)
		if s < len(gapsMS) {
			t += gapsMS[s] - 10
		}
	}
	return model.Capture{ID: "m", Kind: model.KindSignature, Strokes: strokes}
}

func TestExtractor_SecurityFeatures(t *testing.T) {
	Convey("Given a capture with machine-constant velocity and metronomic pauses", t, func() {
		e := features.NewExtractor()
		c := machineTrace(1000, 1000)

		Convey("When extracting features", func() {
			fm := e.Extract(c)

			Convey("Then both long pauses are flagged as suspicious", func() {
				So(fm.Values[features.SuspiciousPauseCount], ShouldEqual, 2)
			})

			Convey("And the flat velocity profile reads as fully uniform", func() {
				So(fm.Values[features.VelocityUniformity], ShouldAlmostEqual, 1, 1e-9)
			})

			Convey("And authenticity drops accordingly", func() {
				// 1 - 0.5*uniformity - 0.5*(2 long pauses / 4)
				So(fm.Values[features.BehavioralAuthenticity], ShouldAlmostEqual, 0.25, 1e-9)
			})
		})
	})

	Convey("Given long pauses of clearly different lengths", t, func() {
		e := features.NewExtractor()
		c := machineTrace(1000, 2000)

		Convey("When extracting features", func() {
			fm := e.Extract(c)

			Convey("Then irregular pauses are not flagged", func() {
				So(fm.Values[features.SuspiciousPauseCount], ShouldEqual, 0)
			})
		})
	})

	Convey("Given only one long pause", t, func() {
		e := features.NewExtractor()
		c := machineTrace(1000)

		Convey("When extracting features", func() {
			fm := e.Extract(c)

			Convey("Then a single pause is never suspicious on its own", func() {
				So(fm.Values[features.SuspiciousPauseCount], ShouldEqual, 0)
			})
		})
	})

	Convey("Given a natural hand-drawn capture", t, func() {
		e := features.NewExtractor()
		c := synthetic.NewGenerator().Signature()

		Convey("When extracting features", func() {
			fm := e.Extract(c)

			Convey("Then the velocity profile looks human", func() {
				So(fm.Values[features.VelocityUniformity], ShouldBeLessThan, 0.2)
				So(fm.Values[features.SuspiciousPauseCount], ShouldEqual, 0)
				So(fm.Values[features.BehavioralAuthenticity], ShouldBeGreaterThan, 0.85)
			})
		})
	})

	Convey("Given tightened suspicion thresholds", t, func() {
		e := features.NewExtractor(features.WithSuspiciousPause(300, 5))
		c := machineTrace(400, 402)

		Convey("When extracting features", func() {
			fm := e.Extract(c)

			Convey("Then near-identical moderate pauses are flagged", func() {
				So(fm.Values[features.SuspiciousPauseCount], ShouldEqual, 2)
			})
		})
	})
}
