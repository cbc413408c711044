// Package app provides the core service that wires normalization, feature
// extraction, baseline building, and scoring into the operations callers
// use: enroll and verify.
package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/okian/drawauth/internal/config"
	"github.com/okian/drawauth/internal/domain/baseline"
	"github.com/okian/drawauth/internal/domain/features"
	"github.com/okian/drawauth/internal/domain/model"
	"github.com/okian/drawauth/internal/domain/normalize"
	"github.com/okian/drawauth/internal/domain/scoring"
	"github.com/okian/drawauth/internal/domain/shapes"
	"github.com/okian/drawauth/pkg/logger"
	"github.com/okian/drawauth/pkg/metrics"
)

// Service ties the pipeline together. It holds no mutable state of its own;
// every method is safe for concurrent use.
type Service struct {
	extractor  *features.Extractor
	analyzer   *shapes.Analyzer
	builder    *baseline.Builder
	comparator *scoring.Comparator
	aggregator *scoring.Aggregator

	minSamples int

	logger  logger.Logger
	metrics *metrics.Manager
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the metrics manager the service records into.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithMinEnrollmentSamples sets how many accepted captures enrollment needs.
func WithMinEnrollmentSamples(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.minSamples = n
		}
	}
}

// WithExtractor overrides the generic feature extractor.
func WithExtractor(e *features.Extractor) Option {
	return func(s *Service) {
		if e != nil {
			s.extractor = e
		}
	}
}

// WithAnalyzer overrides the shape analyzer.
func WithAnalyzer(a *shapes.Analyzer) Option {
	return func(s *Service) {
		if a != nil {
			s.analyzer = a
		}
	}
}

// WithBuilder overrides the baseline builder.
func WithBuilder(b *baseline.Builder) Option {
	return func(s *Service) {
		if b != nil {
			s.builder = b
		}
	}
}

// WithComparator overrides the comparator.
func WithComparator(c *scoring.Comparator) Option {
	return func(s *Service) {
		if c != nil {
			s.comparator = c
		}
	}
}

// WithAggregator overrides the decision aggregator.
func WithAggregator(a *scoring.Aggregator) Option {
	return func(s *Service) {
		if a != nil {
			s.aggregator = a
		}
	}
}

// New creates a Service with default components, then applies options.
func New(opts ...Option) *Service {
	s := &Service{
		extractor:  features.NewExtractor(),
		analyzer:   shapes.NewAnalyzer(),
		builder:    baseline.NewBuilder(),
		comparator: scoring.NewComparator(),
		aggregator: scoring.NewAggregator(),
		minSamples: baseline.DefaultMinSamples,
		metrics:    metrics.NewManager(metrics.WithMetricsEnabled(false)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s
}

// FromConfig creates a Service whose components reflect the loaded
// configuration. Options apply on top, so callers can still override
// individual components (typically the metrics manager and logger).
func FromConfig(cfg *config.Config, opts ...Option) *Service {
	kindWeights := make(map[model.ComponentKind]float64, len(cfg.KindWeights))
	for kind, wt := range cfg.KindWeights {
		kindWeights[model.ComponentKind(kind)] = wt
	}

	base := []Option{
		WithExtractor(features.NewExtractor(
			features.WithPauseThreshold(cfg.PauseThresholdMS),
			features.WithSuspiciousPause(cfg.SuspiciousPauseMS, cfg.SuspiciousJitterMS),
			features.WithEnhancedFeatures(cfg.EnhancedFeatures),
		)),
		WithBuilder(baseline.NewBuilder(
			baseline.WithStddevFloor(cfg.StddevFloor),
		)),
		WithComparator(scoring.NewComparator(
			scoring.WithDecayConstant(cfg.DecayK),
			scoring.WithCategoryWeightsFromConfig(cfg.CategoryWeights, cfg.DefaultCategoryWeight),
			scoring.WithStrictMissing(cfg.StrictMissing),
		)),
		WithAggregator(scoring.NewAggregator(
			scoring.WithPassThreshold(cfg.PassThreshold),
			scoring.WithKindWeightsFromConfig(kindWeights, cfg.DefaultKindWeight),
		)),
		WithMinEnrollmentSamples(cfg.MinEnrollmentSamples),
	}
	return New(append(base, opts...)...)
}

// NormalizeCapture converts a raw wire payload into a canonical capture.
func (s *Service) NormalizeCapture(ctx context.Context, kind model.ComponentKind, device model.DeviceCapabilities, raw []byte) model.Capture {
	c := normalize.Capture(kind, device, raw)
	s.metrics.RecordNormalization(string(kind), c.Empty())
	if c.Empty() {
		s.logger.Warn(ctx, "capture normalized empty",
			logger.String("capture_id", c.ID),
			logger.String("kind", string(kind)))
	}
	return c
}

// ExtractFeatures computes the full feature map for a capture: the generic
// categories merged with the kind's shape features.
func (s *Service) ExtractFeatures(ctx context.Context, c model.Capture) model.FeatureMap {
	start := time.Now()
	fm := s.extractor.Extract(c)
	fm.Merge(s.analyzer.Analyze(c))
	s.metrics.RecordExtraction(time.Since(start).Seconds())

	for _, w := range fm.Warnings {
		s.logger.Debug(ctx, "shape analysis warning",
			logger.String("capture_id", c.ID),
			logger.String("kind", string(c.Kind)),
			logger.String("warning", w))
	}
	return fm
}

// Enroll builds a baseline from enrollment captures of one kind. Empty
// captures are not accepted; if fewer than the configured minimum remain,
// enrollment fails with ErrInsufficientSamples. The returned consistency
// report advises threshold tuning.
func (s *Service) Enroll(ctx context.Context, kind model.ComponentKind, device model.DeviceCapabilities, captures []model.Capture) (model.Baseline, baseline.ConsistencyReport, error) {
	var samples []model.FeatureMap
	for _, c := range captures {
		if c.Kind != kind {
			return model.Baseline{}, baseline.ConsistencyReport{}, baseline.ErrKindMismatch
		}
		if c.Empty() {
			s.logger.Warn(ctx, "skipping empty enrollment capture",
				logger.String("capture_id", c.ID),
				logger.String("kind", string(kind)))
			continue
		}
		samples = append(samples, s.ExtractFeatures(ctx, c))
	}
	if len(samples) < s.minSamples {
		return model.Baseline{}, baseline.ConsistencyReport{}, ErrInsufficientSamples
	}

	b, err := s.builder.Build(kind, device, samples)
	if err != nil {
		return model.Baseline{}, baseline.ConsistencyReport{}, err
	}
	report := baseline.Consistency(samples)

	s.metrics.RecordEnrollment(string(kind))
	s.logger.Info(ctx, "baseline built",
		logger.String("kind", string(kind)),
		logger.Int("samples", b.SampleCount),
		logger.Int("features", len(b.PerFeature)),
		logger.Float64("velocity_consistency", report.Velocity))
	return b, report, nil
}

// Verify extracts features from a live capture and scores them against the
// baseline for the same kind.
func (s *Service) Verify(ctx context.Context, live model.Capture, base model.Baseline) (model.ScoreResult, error) {
	attemptID := uuid.NewString()
	fm := s.ExtractFeatures(ctx, live)

	result, err := s.comparator.Compare(fm, base)
	if err != nil {
		return model.ScoreResult{}, err
	}

	s.metrics.RecordComparison(string(live.Kind), result.Overall, result.Reason)
	s.metrics.RecordExcludedFeatures("comparison", result.ExcludedFeatureCount)
	s.logger.Info(ctx, "capture verified",
		logger.String("attempt_id", attemptID),
		logger.String("capture_id", live.ID),
		logger.String("kind", string(live.Kind)),
		logger.Float64("score", result.Overall),
		logger.String("reason", result.Reason))
	return result, nil
}

// Authenticate combines per-component results into the final decision.
func (s *Service) Authenticate(ctx context.Context, results map[model.ComponentKind]model.ScoreResult) model.Decision {
	d := s.aggregator.Decide(results)
	s.metrics.RecordDecision(d.Pass)
	s.logger.Info(ctx, "authentication decided",
		logger.Float64("overall", d.Overall),
		logger.Any("pass", d.Pass),
		logger.Int("components", len(results)))
	return d
}
