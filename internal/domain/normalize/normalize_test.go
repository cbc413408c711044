package normalize_test

import (
	"testing"

	"github.com/okian/drawauth/internal/domain/model"
	"github.com/okian/drawauth/internal/domain/normalize"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalizeCapture(t *testing.T) {
	device := model.DeviceCapabilities{PointerType: "mouse"}

	Convey("Given a payload of point rows", t, func() {
		raw := []byte(`[
			[{"x":10,"y":20,"t":0},{"x":15,"y":25,"t":16},{"x":20,"y":30,"t":32}],
			[{"x":100,"y":100,"t":300},{"x":110,"y":105,"t":316}]
		]`)

		Convey("When normalizing", func() {
			c := normalize.Capture(model.KindSignature, device, raw)

			Convey("Then it should produce two canonical strokes", func() {
				So(c.Empty(), ShouldBeFalse)
				So(len(c.Strokes), ShouldEqual, 2)
				So(len(c.Strokes[0].Points), ShouldEqual, 3)
				So(len(c.Strokes[1].Points), ShouldEqual, 2)
				So(c.Strokes[0].Points[0].X, ShouldEqual, 10)
				So(c.Strokes[0].Points[2].T, ShouldEqual, 32)
			})

			Convey("And it should assign a capture ID", func() {
				So(c.ID, ShouldNotBeEmpty)
			})

			Convey("And it should stamp kind and device", func() {
				So(c.Kind, ShouldEqual, model.KindSignature)
				So(c.Device.PointerType, ShouldEqual, "mouse")
			})
		})
	})

	Convey("Given a payload of stroke objects", t, func() {
		raw := []byte(`[
			{"points":[{"x":1,"y":2,"time":0},{"x":3,"y":4,"time":10}]},
			{"points":[{"x":5,"y":6,"timestamp":50}]}
		]`)

		Convey("When normalizing", func() {
			c := normalize.Capture(model.KindCircle, device, raw)

			Convey("Then it should accept alternate timestamp keys", func() {
				So(len(c.Strokes), ShouldEqual, 2)
				So(c.Strokes[0].Points[1].T, ShouldEqual, 10)
				So(c.Strokes[1].Points[0].T, ShouldEqual, 50)
			})
		})
	})

	Convey("Given a legacy wrapper payload", t, func() {
		Convey("When the strokes live under the strokes key", func() {
			raw := []byte(`{"id":"cap-1","strokes":[[{"x":1,"y":1,"t":0},{"x":2,"y":2,"t":5}]]}`)
			c := normalize.Capture(model.KindSignature, device, raw)

			Convey("Then it should keep the wrapper's capture ID", func() {
				So(c.ID, ShouldEqual, "cap-1")
				So(len(c.Strokes), ShouldEqual, 1)
			})
		})

		Convey("When the strokes live under the legacy data key", func() {
			raw := []byte(`{"data":[[{"x":1,"y":1,"t":0},{"x":2,"y":2,"t":5}]]}`)
			c := normalize.Capture(model.KindSignature, device, raw)

			Convey("Then it should still find the strokes", func() {
				So(len(c.Strokes), ShouldEqual, 1)
				So(len(c.Strokes[0].Points), ShouldEqual, 2)
			})
		})
	})

	Convey("Given malformed stroke data", t, func() {
		Convey("When a stroke has no points field", func() {
			raw := []byte(`[{"color":"red"},{"points":[{"x":1,"y":1,"t":0}]}]`)
			strokes := normalize.Strokes(raw)

			Convey("Then only the valid stroke survives", func() {
				So(len(strokes), ShouldEqual, 1)
			})
		})

		Convey("When a stroke's points value is not a sequence", func() {
			raw := []byte(`[{"points":"garbage"},{"points":[{"x":1,"y":1,"t":0}]}]`)
			strokes := normalize.Strokes(raw)

			Convey("Then the stroke is skipped, not fatal", func() {
				So(len(strokes), ShouldEqual, 1)
			})
		})

		Convey("When points are missing numeric coordinates", func() {
			raw := []byte(`[[{"x":1,"y":1,"t":0},{"y":9,"t":5},{"x":2,"y":2,"t":10}]]`)
			strokes := normalize.Strokes(raw)

			Convey("Then the bad point is dropped and the rest kept", func() {
				So(len(strokes), ShouldEqual, 1)
				So(len(strokes[0].Points), ShouldEqual, 2)
			})
		})

		Convey("When every point in a stroke is invalid", func() {
			raw := []byte(`[[{"t":0},{"t":5}],[{"x":1,"y":1,"t":0}]]`)
			strokes := normalize.Strokes(raw)

			Convey("Then the empty stroke is dropped entirely", func() {
				So(len(strokes), ShouldEqual, 1)
			})
		})

		Convey("When timestamps go backwards within a stroke", func() {
			raw := []byte(`[[{"x":1,"y":1,"t":100},{"x":2,"y":2,"t":50},{"x":3,"y":3,"t":200}]]`)
			strokes := normalize.Strokes(raw)

			Convey("Then they are clamped to non-decreasing", func() {
				So(strokes[0].Points[0].T, ShouldEqual, 100)
				So(strokes[0].Points[1].T, ShouldEqual, 100)
				So(strokes[0].Points[2].T, ShouldEqual, 200)
			})
		})
	})

	Convey("Given unusable payloads", t, func() {
		cases := map[string][]byte{
			"empty input":      []byte(``),
			"not JSON":         []byte(`hello`),
			"empty array":      []byte(`[]`),
			"wrapper, no keys": []byte(`{"foo":1}`),
			"null":             []byte(`null`),
		}

		for name, raw := range cases {
			Convey("When normalizing "+name, func() {
				c := normalize.Capture(model.KindCircle, device, raw)

				Convey("Then it yields an explicit empty capture", func() {
					So(c.Empty(), ShouldBeTrue)
					So(c.Strokes, ShouldBeEmpty)
					So(c.Kind, ShouldEqual, model.KindCircle)
				})
			})
		}
	})

	Convey("Given a payload with pressure data", t, func() {
		raw := []byte(`[[{"x":1,"y":1,"t":0,"pressure":0.4},{"x":2,"y":2,"t":5,"pressure":1.7},{"x":3,"y":3,"t":10}]]`)

		Convey("When normalizing", func() {
			strokes := normalize.Strokes(raw)
			pts := strokes[0].Points

			Convey("Then pressure is carried and clamped to [0,1]", func() {
				So(pts[0].HasPressure, ShouldBeTrue)
				So(pts[0].Pressure, ShouldEqual, 0.4)
				So(pts[1].Pressure, ShouldEqual, 1.0)
				So(pts[2].HasPressure, ShouldBeFalse)
			})
		})
	})
}
