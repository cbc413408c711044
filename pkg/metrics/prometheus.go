// Package metrics provides Prometheus metrics for the stroke authentication
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the authentication pipeline.
type Manager struct {
	namespace string
	subsystem string
	enabled   bool
	registry  prometheus.Registerer

	// Capture intake
	capturesNormalized *prometheus.CounterVec
	emptyCaptures      *prometheus.CounterVec

	// Feature extraction
	extractionDuration prometheus.Histogram
	excludedFeatures   *prometheus.CounterVec

	// Enrollment and verification
	enrollments      *prometheus.CounterVec
	comparisons      *prometheus.CounterVec
	comparisonScores *prometheus.HistogramVec
	incomparableRuns *prometheus.CounterVec
	decisions        *prometheus.CounterVec
}

// NewManager creates a metrics manager with configuration options applied
// over the defaults and registers all collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "drawauth",
		subsystem: "core",
		enabled:   true,
		registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	if !m.enabled {
		return m
	}

	factory := promauto.With(m.registry)

	m.capturesNormalized = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "captures_normalized_total",
		Help:      "Captures normalized from wire payloads, by component kind.",
	}, []string{"kind"})

	m.emptyCaptures = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "empty_captures_total",
		Help:      "Normalized captures that carried no valid stroke data.",
	}, []string{"kind"})

	m.extractionDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "extraction_duration_seconds",
		Help:      "Wall-clock time of feature extraction per capture.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
	})

	m.excludedFeatures = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "excluded_features_total",
		Help:      "Features excluded from scoring, by cause.",
	}, []string{"cause"})

	m.enrollments = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "enrollments_total",
		Help:      "Baselines built, by component kind.",
	}, []string{"kind"})

	m.comparisons = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "comparisons_total",
		Help:      "Live-vs-baseline comparisons, by component kind.",
	}, []string{"kind"})

	m.comparisonScores = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "comparison_score",
		Help:      "Distribution of 0-100 comparison scores, by component kind.",
		Buckets:   prometheus.LinearBuckets(0, 10, 11),
	}, []string{"kind"})

	m.incomparableRuns = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "incomparable_comparisons_total",
		Help:      "Comparisons that produced the reserved zero score, by reason.",
	}, []string{"reason"})

	m.decisions = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "decisions_total",
		Help:      "Aggregate authentication decisions, by outcome.",
	}, []string{"outcome"})

	return m
}

// RecordNormalization counts one normalized capture.
func (m *Manager) RecordNormalization(kind string, empty bool) {
	if !m.enabled {
		return
	}
	m.capturesNormalized.WithLabelValues(kind).Inc()
	if empty {
		m.emptyCaptures.WithLabelValues(kind).Inc()
	}
}

// RecordExtraction observes one feature extraction duration in seconds.
func (m *Manager) RecordExtraction(seconds float64) {
	if !m.enabled {
		return
	}
	m.extractionDuration.Observe(seconds)
}

// RecordExcludedFeatures counts features excluded from scoring.
func (m *Manager) RecordExcludedFeatures(cause string, n int) {
	if !m.enabled || n <= 0 {
		return
	}
	m.excludedFeatures.WithLabelValues(cause).Add(float64(n))
}

// RecordEnrollment counts one built baseline.
func (m *Manager) RecordEnrollment(kind string) {
	if !m.enabled {
		return
	}
	m.enrollments.WithLabelValues(kind).Inc()
}

// RecordComparison counts one comparison and observes its score; reason is
// non-empty for incomparable runs.
func (m *Manager) RecordComparison(kind string, score float64, reason string) {
	if !m.enabled {
		return
	}
	m.comparisons.WithLabelValues(kind).Inc()
	if reason != "" {
		m.incomparableRuns.WithLabelValues(reason).Inc()
		return
	}
	m.comparisonScores.WithLabelValues(kind).Observe(score)
}

// RecordDecision counts one aggregate decision outcome ("pass" or "fail").
func (m *Manager) RecordDecision(pass bool) {
	if !m.enabled {
		return
	}
	outcome := "fail"
	if pass {
		outcome = "pass"
	}
	m.decisions.WithLabelValues(outcome).Inc()
}
