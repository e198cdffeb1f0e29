package utils

import "cmp"

// Lerp linearly interpolates between a and b. The endpoints are returned
// unchanged for t == 0 and t == 1 so exact table hits do not drift.
func Lerp(a, b, t float64) float64 {
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	return a + (b-a)*t
}

// Clamp limits x to the closed range [low, high].
func Clamp[T cmp.Ordered](x, low, high T) T {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}

// Mean returns the arithmetic mean of xs, or fallback when xs is empty.
func Mean(xs []float64, fallback float64) float64 {
	if len(xs) == 0 {
		return fallback
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
