package scoring

// Option applies a configuration option to the Comparator.
type Option func(*Comparator)

// WithDecayConstant sets k in the per-feature similarity
// 100*exp(-|live-mean|/(k*stddev)). Larger k is more forgiving.
func WithDecayConstant(k float64) Option {
	return func(c *Comparator) {
		if k > 0 {
			c.decayK = k
		}
	}
}

// WithCategoryWeightsFromConfig sets per-category weights from a
// configuration map, and the weight used for categories not listed.
func WithCategoryWeightsFromConfig(weights map[string]float64, defaultWeight float64) Option {
	return func(c *Comparator) {
		// Copy to avoid external modification of the live map.
		c.categoryWeights = make(map[string]float64)
		for category, wt := range weights {
			if wt > 0 {
				c.categoryWeights[category] = wt
			}
		}
		if defaultWeight > 0 {
			c.defaultCatWt = defaultWeight
		}
	}
}

// WithStrictMissing controls how a feature present in the baseline but
// absent from the live map is treated: excluded from scoring (default), or
// counted as a zero-similarity mismatch.
func WithStrictMissing(strict bool) Option {
	return func(c *Comparator) {
		c.strictMissing = strict
	}
}
