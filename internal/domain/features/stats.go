package features

import "math"

// Small-number guard shared by the ratio computations in this package.
const epsilon = 1e-9

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

// stddev is the population standard deviation, matching how enrollment
// statistics were computed historically.
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

func minMax(xs []float64) (lo, hi float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	lo, hi = xs[0], xs[0]
	for _, x := range xs[1:] {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	return lo, hi
}

// coeffVar returns the coefficient of variation, 0 when the mean is ~0.
func coeffVar(xs []float64) float64 {
	m := mean(xs)
	if math.Abs(m) < epsilon {
		return 0
	}
	return stddev(xs) / m
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

func dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
