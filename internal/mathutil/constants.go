package mathutil

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Normalization thresholds. Epsilonf is looser to match float32's mantissa.
const (
	Epsilon       = 2.2204460492503131e-16
	Epsilonf      = 1.192092896e-07
	Rad2Deg       = 180.0 / math.Pi
	Deg2RadFactor = math.Pi / 180.0
)

// Clamp restricts v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
