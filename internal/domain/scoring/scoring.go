// Package scoring compares live feature maps against enrollment baselines
// and produces the 0-100 similarity scores callers base authentication
// decisions on.
package scoring

import (
	"fmt"
	"math"

	"github.com/okian/drawauth/internal/domain/features"
	"github.com/okian/drawauth/internal/domain/model"
)

// Default scoring configuration constants.
const (
	defaultDecayK        = 2.0
	defaultWeight        = 1.0
	maxScoreValue        = 100.0
	minComparableStddev  = 1e-6
	defaultPassThreshold = 70.0
)

// defaultCategoryWeights biases the overall score toward the categories that
// discriminate best. Raw basic counts are easy to observe and imitate, so
// they carry the least weight; shape and anomaly features carry the most.
func defaultCategoryWeights() map[string]float64 {
	return map[string]float64{
		features.CategoryBasic:    0.5,
		features.CategoryVelocity: 1.0,
		features.CategorySpatial:  1.0,
		features.CategoryLength:   1.0,
		features.CategoryPressure: 1.2,
		features.CategoryTiming:   1.0,
		features.CategoryGeometry: 1.2,
		features.CategorySecurity: 1.5,
		features.CategoryShape:    1.5,
	}
}

// Comparator scores a live FeatureMap against a Baseline of the same kind.
type Comparator struct {
	decayK          float64
	categoryWeights map[string]float64
	defaultCatWt    float64
	// strictMissing treats a feature present in the baseline but absent from
	// the live map as a zero-similarity mismatch instead of an exclusion.
	strictMissing bool
}

// NewComparator creates a Comparator with configuration options applied over
// the defaults.
func NewComparator(opts ...Option) *Comparator {
	c := &Comparator{
		decayK:          defaultDecayK,
		categoryWeights: defaultCategoryWeights(),
		defaultCatWt:    defaultWeight,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compare scores live against base. The only hard failure is a component
// kind mismatch, which is a programmer-level contract violation. Every data
// problem degrades instead: an empty live capture or a baseline with zero
// overlapping features yields the reserved overall score of 0 with a reason
// code, so callers can tell "failed to compare" from "compared and failed".
func (c *Comparator) Compare(live model.FeatureMap, base model.Baseline) (model.ScoreResult, error) {
	if live.Kind != base.Kind {
		return model.ScoreResult{}, fmt.Errorf("live %q vs baseline %q: %w", live.Kind, base.Kind, ErrKindMismatch)
	}

	result := model.ScoreResult{
		Kind:        live.Kind,
		PerFeature:  make(map[string]model.FeatureComparison),
		PerCategory: make(map[string]float64),
	}

	if live.Empty {
		result.Reason = model.ReasonEmptyCapture
		result.ExcludedFeatureCount = len(live.Values) + len(live.Excluded)
		return result, nil
	}

	perCategory := make(map[string][]float64)
	for name, stat := range base.PerFeature {
		liveValue, ok := live.Get(name)
		if !ok {
			if c.strictMissing && !live.Excluded[name] {
				category := features.CategoryOf(name)
				perCategory[category] = append(perCategory[category], 0)
				result.PerFeature[name] = model.FeatureComparison{
					BaselineMean:   stat.Mean,
					BaselineStddev: stat.Stddev,
				}
				continue
			}
			result.ExcludedFeatureCount++
			continue
		}

		sim := c.similarity(liveValue, stat)
		category := features.CategoryOf(name)
		perCategory[category] = append(perCategory[category], sim)
		result.PerFeature[name] = model.FeatureComparison{
			LiveValue:      liveValue,
			BaselineMean:   stat.Mean,
			BaselineStddev: stat.Stddev,
			Contribution:   sim,
		}
	}

	// Live features the baseline never tracked are skipped, not penalized.
	for name := range live.Values {
		if !base.Has(name) {
			result.ExcludedFeatureCount++
		}
	}

	if len(perCategory) == 0 {
		result.Reason = model.ReasonNoComparableFeatures
		return result, nil
	}

	weightedSum, weightTotal := 0.0, 0.0
	for category, sims := range perCategory {
		score := meanOf(sims)
		result.PerCategory[category] = score
		wt, ok := c.categoryWeights[category]
		if !ok {
			wt = c.defaultCatWt
		}
		weightedSum += score * wt
		weightTotal += wt
	}
	result.Overall = math.Min(maxScoreValue, weightedSum/weightTotal)
	return result, nil
}

// similarity is the bounded per-feature score: 100 at an exact match,
// decaying exponentially with the distance from the baseline mean measured
// in units of k standard deviations.
func (c *Comparator) similarity(live float64, stat model.FeatureStat) float64 {
	sd := math.Max(stat.Stddev, minComparableStddev)
	sim := maxScoreValue * math.Exp(-math.Abs(live-stat.Mean)/(c.decayK*sd))
	return math.Max(0, math.Min(maxScoreValue, sim))
}

func meanOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
