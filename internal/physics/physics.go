// Package physics provides the small numeric helpers used by the simulation.
package physics

import "math"

// Clamp limits v to the closed range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Truncate drops the fractional part of v, rounding toward zero.
// Positions advance by truncated velocity so that fractional speeds picked up
// from paddle hits never accumulate into sub-pixel drift.
func Truncate(v float64) float64 {
	return math.Trunc(v)
}

// InSpan reports whether v lies in the half-open range [lo, hi).
func InSpan(v, lo, hi float64) bool {
	return v >= lo && v < hi
}

// Sign returns -1, 0 or 1 according to the sign of v.
func Sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
