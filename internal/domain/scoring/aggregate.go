package scoring

import (
	"math"

	"github.com/okian/drawauth/internal/domain/model"
)

// defaultKindWeights are the empirically chosen per-component multipliers.
// Shapes and drawings are weighted slightly above a plain signature score;
// the exact values are tunables, not load-bearing constants.
func defaultKindWeights() map[model.ComponentKind]float64 {
	return map[model.ComponentKind]float64{
		model.KindSignature:   1.0,
		model.KindCircle:      1.1,
		model.KindSquare:      1.1,
		model.KindTriangle:    1.1,
		model.KindFace:        1.2,
		model.KindStar:        1.2,
		model.KindHouse:       1.2,
		model.KindConnectDots: 1.0,
	}
}

// Aggregator combines per-component scores into one authentication
// confidence and a pass/fail decision.
type Aggregator struct {
	kindWeights   map[model.ComponentKind]float64
	defaultKindWt float64
	passThreshold float64
}

// AggregatorOption applies a configuration option to the Aggregator.
type AggregatorOption func(*Aggregator)

// WithPassThreshold sets the confidence at or above which Decide passes.
func WithPassThreshold(threshold float64) AggregatorOption {
	return func(a *Aggregator) {
		if threshold > 0 && threshold <= maxScoreValue {
			a.passThreshold = threshold
		}
	}
}

// WithKindWeightsFromConfig sets per-kind multipliers from a configuration
// map, and the multiplier used for kinds not listed.
func WithKindWeightsFromConfig(weights map[model.ComponentKind]float64, defaultWeight float64) AggregatorOption {
	return func(a *Aggregator) {
		a.kindWeights = make(map[model.ComponentKind]float64)
		for kind, wt := range weights {
			if wt > 0 {
				a.kindWeights[kind] = wt
			}
		}
		if defaultWeight > 0 {
			a.defaultKindWt = defaultWeight
		}
	}
}

// NewAggregator creates an Aggregator with configuration options applied
// over the defaults.
func NewAggregator(opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{
		kindWeights:   defaultKindWeights(),
		defaultKindWt: defaultWeight,
		passThreshold: defaultPassThreshold,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// PassThreshold returns the configured threshold.
func (a *Aggregator) PassThreshold() float64 { return a.passThreshold }

// Decide combines per-component scores into the final confidence. Components
// whose comparison produced the reserved zero (empty capture, no overlap)
// are skipped; if nothing was comparable the decision is a zero-confidence
// fail so callers can surface a validation problem instead of a rejection.
func (a *Aggregator) Decide(results map[model.ComponentKind]model.ScoreResult) model.Decision {
	d := model.Decision{Components: make(map[model.ComponentKind]float64)}

	sum, n := 0.0, 0
	for kind, r := range results {
		d.Components[kind] = r.Overall
		if !r.Comparable() {
			continue
		}
		wt, ok := a.kindWeights[kind]
		if !ok {
			wt = a.defaultKindWt
		}
		sum += math.Min(maxScoreValue, r.Overall*wt)
		n++
	}
	if n == 0 {
		return d
	}
	d.Overall = sum / float64(n)
	d.Pass = d.Overall >= a.passThreshold
	return d
}
