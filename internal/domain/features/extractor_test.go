package features_test

import (
	"math"
	"testing"

	"github.com/okian/drawauth/internal/domain/features"
	"github.com/okian/drawauth/internal/domain/model"
	"github.com/okian/drawauth/internal/synthetic"
	. "github.com/smartystreets/goconvey/convey"
)

func penDevice() model.DeviceCapabilities {
	return model.DeviceCapabilities{HasPressure: true, PointerType: "pen", PrecisionClass: "fine"}
}

func mouseDevice() model.DeviceCapabilities {
	return model.DeviceCapabilities{PointerType: "mouse", PrecisionClass: "fine"}
}

// threeStrokes builds a small capture with known geometry: three horizontal
// strokes of 100px each, drawn left to right with 200ms gaps.
func threeStrokes(device model.DeviceCapabilities) model.Capture {
	var strokes []model.Stroke
	t := int64(0)
	for s := 0; s < 3; s++ {
		stroke := model.Stroke{}
		y := float64(50 + s*40)
		for i := 0; i <= 10; i++ {
			stroke.Points = append(stroke.Points, model.Point{
				X: float64(i * 10),
				Y: y,
				T: t,
			})
			t += 10
		}
		strokes = append(strokes, stroke)
		t += 200
	}
	return model.Capture{ID: "c1", Kind: model.KindSignature, Strokes: strokes, Device: device}
}

func TestExtractor_Extract(t *testing.T) {
	Convey("Given a capture with three known strokes", t, func() {
		e := features.NewExtractor()
		c := threeStrokes(mouseDevice())

		Convey("When extracting features", func() {
			fm := e.Extract(c)

			Convey("Then basic statistics are exact", func() {
				So(fm.Values[features.StrokeCount], ShouldEqual, 3)
				So(fm.Values[features.TotalPoints], ShouldEqual, 33)
				So(fm.Values[features.AveragePointsPerStroke], ShouldEqual, 11)
				// 3 strokes of 100ms plus two 200ms gaps plus inter-point spacing.
				So(fm.Values[features.TotalDurationMS], ShouldEqual, 720)
			})

			Convey("Then velocity is constant 1 px/ms", func() {
				So(fm.Values[features.AverageVelocity], ShouldAlmostEqual, 1.0, 1e-9)
				So(fm.Values[features.MaxVelocity], ShouldAlmostEqual, 1.0, 1e-9)
				So(fm.Values[features.MinVelocity], ShouldAlmostEqual, 1.0, 1e-9)
				So(fm.Values[features.VelocityStd], ShouldAlmostEqual, 0, 1e-9)
			})

			Convey("Then the bounding box is exact", func() {
				So(fm.Values[features.MinX], ShouldEqual, 0)
				So(fm.Values[features.MaxX], ShouldEqual, 100)
				So(fm.Values[features.MinY], ShouldEqual, 50)
				So(fm.Values[features.MaxY], ShouldEqual, 130)
				So(fm.Values[features.Width], ShouldEqual, 100)
				So(fm.Values[features.Height], ShouldEqual, 80)
				So(fm.Values[features.Area], ShouldEqual, 8000)
				So(fm.Values[features.AspectRatio], ShouldAlmostEqual, 1.25, 1e-9)
				So(fm.Values[features.CenterX], ShouldEqual, 50)
				So(fm.Values[features.CenterY], ShouldEqual, 90)
			})

			Convey("Then stroke lengths are uniform", func() {
				So(fm.Values[features.AverageStrokeLength], ShouldAlmostEqual, 100, 1e-9)
				So(fm.Values[features.TotalLength], ShouldAlmostEqual, 300, 1e-9)
				So(fm.Values[features.LengthVariation], ShouldAlmostEqual, 0, 1e-9)
			})

			Convey("Then timing sees two pauses above the threshold", func() {
				So(fm.Values[features.PauseCount], ShouldEqual, 2)
				So(fm.Values[features.AverageDwellTime], ShouldAlmostEqual, 100, 1e-9)
				So(fm.Values[features.AverageStrokeGap], ShouldAlmostEqual, 210, 1e-9)
				So(fm.Values[features.DurationConsistency], ShouldAlmostEqual, 1.0, 1e-9)
				So(fm.Values[features.PauseTimeRatio], ShouldAlmostEqual, 420.0/720.0, 1e-9)
			})

			Convey("Then straight strokes score minimal complexity", func() {
				So(fm.Values[features.AverageComplexity], ShouldAlmostEqual, 1.0, 1e-9)
				So(fm.Values[features.DirectionReversals], ShouldEqual, 0)
				So(fm.Values[features.AverageCurvature], ShouldAlmostEqual, 0, 1e-9)
				So(fm.Values[features.Smoothness], ShouldAlmostEqual, 1.0, 1e-9)
			})

			Convey("Then extraction is idempotent", func() {
				again := e.Extract(c)
				So(len(again.Values), ShouldEqual, len(fm.Values))
				for name, v := range fm.Values {
					So(again.Values[name], ShouldEqual, v)
				}
			})
		})
	})

	Convey("Given a device without pressure sensing", t, func() {
		e := features.NewExtractor()
		c := threeStrokes(mouseDevice())

		Convey("When extracting features", func() {
			fm := e.Extract(c)

			Convey("Then no pressure feature appears in the value map", func() {
				for _, name := range []string{
					features.AveragePressure, features.MaxPressure, features.MinPressure,
					features.PressureStd, features.PressureRange, features.PressureCoverage,
					features.PressureBuildupRate, features.PressureReleaseRate,
				} {
					_, present := fm.Get(name)
					So(present, ShouldBeFalse)
					So(fm.Excluded[name], ShouldBeTrue)
				}
				So(fm.ExclusionReason, ShouldEqual, features.ExclusionNoPressure)
			})

			Convey("And the remaining keys match the schema exactly", func() {
				expected := make(map[string]bool)
				for _, name := range features.Generic(true) {
					expected[name] = true
				}
				for name := range fm.Values {
					So(expected[name], ShouldBeTrue)
				}
				So(len(fm.Values)+len(fm.Excluded), ShouldEqual, len(features.Generic(true)))
			})
		})
	})

	Convey("Given a pressure-capable capture", t, func() {
		e := features.NewExtractor()
		gen := synthetic.NewGenerator(synthetic.WithSeed(7))
		c := gen.Signature()

		Convey("When extracting features", func() {
			fm := e.Extract(c)

			Convey("Then pressure features are present and sane", func() {
				So(fm.Values[features.AveragePressure], ShouldBeGreaterThan, 0)
				So(fm.Values[features.MaxPressure], ShouldBeLessThanOrEqualTo, 1)
				So(fm.Values[features.PressureCoverage], ShouldEqual, 1)
				So(fm.Values[features.PressureBuildupRate], ShouldBeGreaterThan, 0)
				So(fm.Values[features.PressureReleaseRate], ShouldBeGreaterThan, 0)
				So(fm.Excluded, ShouldBeEmpty)
			})

			Convey("And no value is NaN or infinite", func() {
				for name, v := range fm.Values {
					So(math.IsNaN(v), ShouldBeFalse)
					So(math.IsInf(v, 0), ShouldBeFalse)
					So(name, ShouldNotBeEmpty)
				}
			})
		})
	})

	Convey("Given an empty capture", t, func() {
		e := features.NewExtractor()
		c := model.Capture{ID: "empty", Kind: model.KindCircle, Device: penDevice()}

		Convey("When extracting features", func() {
			fm := e.Extract(c)

			Convey("Then the full schema is present at neutral zero", func() {
				So(fm.Empty, ShouldBeTrue)
				So(len(fm.Values), ShouldEqual, len(features.Generic(true)))
				for _, v := range fm.Values {
					So(v, ShouldEqual, 0)
				}
			})
		})

		Convey("When the empty capture comes from a non-pressure device", func() {
			c.Device = mouseDevice()
			fm := e.Extract(c)

			Convey("Then pressure features are excluded, not zeroed", func() {
				_, present := fm.Get(features.AveragePressure)
				So(present, ShouldBeFalse)
				So(fm.Excluded[features.AveragePressure], ShouldBeTrue)
			})
		})
	})

	Convey("Given the enhanced feature set is disabled", t, func() {
		e := features.NewExtractor(features.WithEnhancedFeatures(false))
		c := threeStrokes(penDevice())

		Convey("When extracting features", func() {
			fm := e.Extract(c)

			Convey("Then geometry and security features are absent", func() {
				_, hasComplexity := fm.Get(features.AverageComplexity)
				_, hasAuthenticity := fm.Get(features.BehavioralAuthenticity)
				So(hasComplexity, ShouldBeFalse)
				So(hasAuthenticity, ShouldBeFalse)
			})
		})
	})

	Convey("Given a capture with a degenerate single-point stroke", t, func() {
		e := features.NewExtractor()
		c := model.Capture{
			ID:   "degen",
			Kind: model.KindSignature,
			Strokes: []model.Stroke{
				{Points: []model.Point{{X: 5, Y: 5, T: 0}}},
			},
			Device: mouseDevice(),
		}

		Convey("When extracting features", func() {
			fm := e.Extract(c)

			Convey("Then nothing raises and values degrade to neutral", func() {
				So(fm.Values[features.StrokeCount], ShouldEqual, 1)
				So(fm.Values[features.TotalPoints], ShouldEqual, 1)
				So(fm.Values[features.AverageVelocity], ShouldEqual, 0)
				So(fm.Values[features.Width], ShouldEqual, 0)
				So(fm.Values[features.AspectRatio], ShouldEqual, 1000)
				for name, v := range fm.Values {
					So(math.IsNaN(v), ShouldBeFalse)
					So(name, ShouldNotBeEmpty)
				}
			})
		})
	})
}

func TestExtractor_Sensitivity(t *testing.T) {
	Convey("Given two captures differing in one coordinate", t, func() {
		e := features.NewExtractor()
		a := threeStrokes(mouseDevice())
		b := threeStrokes(mouseDevice())
		b.Strokes[1].Points[5].Y += 25

		Convey("When extracting features from both", func() {
			fa := e.Extract(a)
			fb := e.Extract(b)

			Convey("Then categories not touching that point are unchanged", func() {
				for _, name := range []string{
					features.StrokeCount, features.TotalPoints, features.TotalDurationMS,
					features.AveragePointsPerStroke,
					features.PauseCount, features.AverageDwellTime, features.AverageStrokeGap,
					features.DurationConsistency, features.PauseTimeRatio,
				} {
					So(fb.Values[name], ShouldEqual, fa.Values[name])
				}
			})

			Convey("And spatial, velocity, and length features move", func() {
				So(fb.Values[features.TotalLength], ShouldBeGreaterThan, fa.Values[features.TotalLength])
				So(fb.Values[features.VelocityStd], ShouldBeGreaterThan, fa.Values[features.VelocityStd])
			})
		})
	})
}

func TestSchema(t *testing.T) {
	Convey("Given the feature schema", t, func() {
		Convey("When listing the generic features", func() {
			all := features.Generic(true)
			reduced := features.Generic(false)

			Convey("Then the enhanced set carries 42 features", func() {
				So(len(all), ShouldEqual, 42)
			})

			Convey("And disabling the enhanced set removes geometry and security", func() {
				So(len(reduced), ShouldEqual, 34)
				for _, name := range reduced {
					cat := features.CategoryOf(name)
					So(cat, ShouldNotEqual, features.CategoryGeometry)
					So(cat, ShouldNotEqual, features.CategorySecurity)
				}
			})
		})

		Convey("When listing the schema for a kind", func() {
			circle := features.ForKind(model.KindCircle, true)
			signature := features.ForKind(model.KindSignature, true)

			Convey("Then shape features extend the generic set", func() {
				So(len(circle), ShouldEqual, 44)
				So(len(signature), ShouldEqual, 42)
				So(features.CategoryOf("shape_roundness"), ShouldEqual, features.CategoryShape)
			})
		})

		Convey("When asking for an unknown feature's category", func() {
			So(features.CategoryOf("bogus"), ShouldBeEmpty)
		})
	})
}
