// Package baseline aggregates enrollment feature maps into the per-user,
// per-kind statistical baseline that live captures are compared against.
package baseline

import (
	"fmt"
	"math"

	"github.com/okian/drawauth/internal/domain/model"
)

// Default builder configuration.
const (
	// defaultStddevFloor keeps zero-variance features from over-penalizing
	// later comparisons.
	defaultStddevFloor = 0.15

	// DefaultMinSamples is the enrollment sample count the product normally
	// collects before building a baseline.
	DefaultMinSamples = 3
)

// Builder turns enrollment FeatureMaps into a Baseline.
type Builder struct {
	stddevFloor float64
}

// Option applies a configuration option to the Builder.
type Option func(*Builder)

// WithStddevFloor sets the minimum standard deviation recorded for any
// feature in a built baseline.
func WithStddevFloor(floor float64) Option {
	return func(b *Builder) {
		if floor > 0 {
			b.stddevFloor = floor
		}
	}
}

// NewBuilder creates a Builder with configuration options applied over the
// defaults.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{stddevFloor: defaultStddevFloor}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// StddevFloor returns the configured floor.
func (b *Builder) StddevFloor() float64 { return b.stddevFloor }

// Build aggregates enrollment samples of one kind into a Baseline. For each
// feature present in at least one sample and not excluded in all of them, it
// records the mean, the floored standard deviation, and how many samples
// carried it. Features excluded everywhere (for example pressure on a
// non-pressure device) are omitted rather than defaulted to zero, so they
// cannot bias the baseline.
//
// Build fails only on contract violations: no samples, or a sample whose
// kind disagrees with the requested one.
func (b *Builder) Build(kind model.ComponentKind, device model.DeviceCapabilities, samples []model.FeatureMap) (model.Baseline, error) {
	if len(samples) == 0 {
		return model.Baseline{}, ErrNoSamples
	}
	for i, s := range samples {
		if s.Kind != kind {
			return model.Baseline{}, fmt.Errorf("sample %d is %q, want %q: %w", i, s.Kind, kind, ErrKindMismatch)
		}
	}

	perFeature := make(map[string]model.FeatureStat)
	for _, name := range featureUnion(samples) {
		var values []float64
		excludedEverywhere := true
		for _, s := range samples {
			if !s.Excluded[name] {
				excludedEverywhere = false
			}
			if v, ok := s.Get(name); ok {
				values = append(values, v)
			}
		}
		if excludedEverywhere || len(values) == 0 {
			continue
		}
		perFeature[name] = model.FeatureStat{
			Mean:      mean(values),
			Stddev:    math.Max(stddev(values), b.stddevFloor),
			PresentIn: len(values),
		}
	}

	return model.Baseline{
		Kind:        kind,
		SampleCount: len(samples),
		PerFeature:  perFeature,
		Device:      device,
	}, nil
}

// featureUnion collects every feature name appearing in any sample, in a
// deterministic order not needed by callers but convenient for tests.
func featureUnion(samples []model.FeatureMap) []string {
	seen := make(map[string]bool)
	var names []string
	for _, s := range samples {
		for name := range s.Values {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
		for name := range s.Excluded {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stddev is the population standard deviation, matching the extractor's
// convention.
func stddev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)))
}
