package astistream

import (
	"math"
	"math/bits"

	"github.com/asticode/go-astiav"
)

// Reduce reduces num/den to lowest terms with both terms bounded by max.
// When no exact reduction fits within max, the best rational approximation within max is
// returned and exact is false. Zero terms are propagated: 0/x yields 0/1 and x/0 yields 1/0.
// Rationals hold C ints, therefore max is capped to math.MaxInt32.
func Reduce(num, den, max int64) (r astiav.Rational, exact bool) {
	// Cap bound
	max = min(max, math.MaxInt32)

	// Extract sign
	negative := (num < 0) != (den < 0)
	num, den = abs64(num), abs64(den)

	// Divide by the greatest common divisor
	if g := gcd64(num, den); g > 0 {
		num /= g
		den /= g
	}

	// a0 and a1 are the last two convergents
	a0n, a0d := int64(0), int64(1)
	a1n, a1d := int64(1), int64(0)

	// Already within bounds
	if num <= max && den <= max {
		a1n, a1d = num, den
		den = 0
	}

	// Walk the continued fraction
	for den != 0 {
		x := num / den
		next := num - den*x

		// Next convergent would exceed max
		if (a1n > 0 && x > (max-a0n)/a1n) || (a1d > 0 && x > (max-a0d)/a1d) {
			// Get the largest semiconvergent within bounds
			if a1n > 0 {
				x = (max - a0n) / a1n
			}
			if a1d > 0 {
				x = min(x, (max-a0d)/a1d)
			}

			// Semiconvergent is closer than the last convergent
			if greaterUint128(uint64(den), uint64(2*x*a1d+a0d), uint64(num), uint64(a1d)) {
				a1n, a1d = x*a1n+a0n, x*a1d+a0d
			}
			break
		}

		a0n, a0d, a1n, a1d = a1n, a1d, x*a1n+a0n, x*a1d+a0d
		num, den = den, next
	}

	// Restore sign
	if negative {
		a1n = -a1n
	}
	return astiav.NewRational(int(a1n), int(a1d)), den == 0
}

// greaterUint128 reports whether a*b > c*d without overflowing
func greaterUint128(a, b, c, d uint64) bool {
	hi1, lo1 := bits.Mul64(a, b)
	hi2, lo2 := bits.Mul64(c, d)
	if hi1 != hi2 {
		return hi1 > hi2
	}
	return lo1 > lo2
}

func gcd64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(i int64) int64 {
	if i < 0 {
		return -i
	}
	return i
}
