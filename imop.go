package lowpoly

import (
	"math"

	"golang.org/x/exp/constraints"
)

// sin60 is the vertical distance between two rows of a unit edge lattice.
var sin60 = math.Sin(math.Pi / 3)

// Min returns the smallest value between two or more numbers.
func Min[T constraints.Ordered](values ...T) T {
	var acc T = values[0]

	for _, v := range values {
		if v < acc {
			acc = v
		}
	}
	return acc
}

// Max returns the biggest value between two or more numbers.
func Max[T constraints.Ordered](values ...T) T {
	var acc T = values[0]

	for _, v := range values {
		if v > acc {
			acc = v
		}
	}
	return acc
}

// Clamp restricts v to the closed interval [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return Min(Max(v, lo), hi)
}

// clampChannel converts an arbitrary integer to a valid 8 bit color channel.
func clampChannel[T constraints.Integer](v T) uint8 {
	return uint8(Clamp(int(v), 0, 255))
}
