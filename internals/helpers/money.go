package helper

import "math"

// in cents; well above float64 noise for numeric(12,2) magnitudes
const centsTolerance = 1e-3

// ToCents converts an amount to whole cents, rounding half away from zero.
func ToCents(v float64) int64 {
	return int64(math.Round(v * 100))
}

func FromCents(c int64) float64 {
	return float64(c) / 100
}

// IsWholeCents reports whether v has at most two decimal places.
func IsWholeCents(v float64) bool {
	scaled := v * 100
	return math.Abs(scaled-math.Round(scaled)) < centsTolerance
}
