package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/okian/drawauth/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

// familySum gathers the registry and sums a counter family across all of its
// label combinations. Missing families sum to zero.
func familySum(g prometheus.Gatherer, name string) float64 {
	mfs, err := g.Gather()
	So(err, ShouldBeNil)
	total := 0.0
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if c := m.GetCounter(); c != nil {
				total += c.GetValue()
			}
		}
	}
	return total
}

func TestManager(t *testing.T) {
	Convey("Given a manager with its own registry", t, func() {
		reg := prometheus.NewRegistry()
		m := metrics.NewManager(metrics.WithPrometheusRegistry(reg))

		Convey("When pipeline events are recorded", func() {
			m.RecordNormalization("circle", false)
			m.RecordNormalization("circle", true)
			m.RecordExtraction(0.002)
			m.RecordEnrollment("circle")
			m.RecordComparison("circle", 87.5, "")
			m.RecordComparison("circle", 0, "empty_capture")
			m.RecordExcludedFeatures("comparison", 8)
			m.RecordDecision(true)
			m.RecordDecision(false)

			Convey("Then the counters reflect the events", func() {
				So(familySum(reg, "drawauth_core_captures_normalized_total"), ShouldEqual, 2)
				So(familySum(reg, "drawauth_core_empty_captures_total"), ShouldEqual, 1)
				So(familySum(reg, "drawauth_core_enrollments_total"), ShouldEqual, 1)
				So(familySum(reg, "drawauth_core_comparisons_total"), ShouldEqual, 2)
				So(familySum(reg, "drawauth_core_incomparable_comparisons_total"), ShouldEqual, 1)
				So(familySum(reg, "drawauth_core_excluded_features_total"), ShouldEqual, 8)
				So(familySum(reg, "drawauth_core_decisions_total"), ShouldEqual, 2)
			})

			Convey("Then incomparable runs stay out of the score histogram", func() {
				mfs, err := reg.Gather()
				So(err, ShouldBeNil)
				for _, mf := range mfs {
					if mf.GetName() != "drawauth_core_comparison_score" {
						continue
					}
					for _, metric := range mf.GetMetric() {
						So(metric.GetHistogram().GetSampleCount(), ShouldEqual, 1)
					}
				}
			})
		})

		Convey("When recording a non-positive exclusion count", func() {
			m.RecordExcludedFeatures("comparison", 0)

			Convey("Then nothing is counted", func() {
				So(familySum(reg, "drawauth_core_excluded_features_total"), ShouldEqual, 0)
			})
		})
	})

	Convey("Given a disabled manager", t, func() {
		m := metrics.NewManager(metrics.WithMetricsEnabled(false))

		Convey("When every record method is called", func() {
			m.RecordNormalization("circle", true)
			m.RecordExtraction(0.001)
			m.RecordEnrollment("circle")
			m.RecordComparison("circle", 50, "")
			m.RecordExcludedFeatures("comparison", 3)
			m.RecordDecision(false)

			Convey("Then nothing panics without registered collectors", func() {
				So(m, ShouldNotBeNil)
			})
		})
	})

	Convey("Given a custom namespace and subsystem", t, func() {
		reg := prometheus.NewRegistry()
		m := metrics.NewManager(
			metrics.WithPrometheusRegistry(reg),
			metrics.WithNamespace("authsvc"),
			metrics.WithSubsystem("pipeline"))

		Convey("When an event is recorded", func() {
			m.RecordEnrollment("square")

			Convey("Then the metric name carries the custom prefix", func() {
				So(familySum(reg, "authsvc_pipeline_enrollments_total"), ShouldEqual, 1)
			})
		})
	})
}
