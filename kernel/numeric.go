// Package kernel implements the non-bigint elementwise binary-operation
// kernels: bitwise logic/shift/rotate, comparison, basic and fancy
// arithmetic, and true division, over the array storage defined in
// package array. It is the direct analogue of the teacher repo's
// backend/atype package, generalized from array-type bookkeeping to
// per-lane arithmetic.
package kernel

import "math"

// FloorDiv implements the real-valued floor-division helper from
// spec.md §4.4: returns NaN for 0/0 or for an infinite numerator against a
// finite-or-infinite denominator; returns the signed-infinity edge values
// for finite/infinite pairs; otherwise floor(n/d).
func FloorDiv(n, d float64) float64 {
	if n == 0 && d == 0 {
		return math.NaN()
	}
	if math.IsInf(n, 0) {
		if d != 0 || math.IsInf(d, 0) {
			return math.NaN()
		}
	}
	if n > 0 && math.IsInf(d, -1) {
		return -1
	}
	if n < 0 && math.IsInf(d, 1) {
		return -1
	}
	return math.Floor(n / d)
}

// Mod implements the real-valued floored-modulo helper from spec.md §4.4:
// compute the C-style truncated remainder, then add the divisor back when
// the remainder is nonzero and its sign differs from the divisor's sign --
// converting a truncated remainder into a floored one, matching
// Python/NumPy semantics.
func Mod(n, d float64) float64 {
	r := math.Mod(n, d)
	if r != 0 && (r < 0) != (d < 0) {
		r += d
	}
	return r
}

// IntFloorDiv implements `//` for two signed or two unsigned integer
// lanes sharing sign: a zero divisor yields 0 (spec.md §4.4), otherwise
// native (Euclidean-adjacent, Go-style truncating) division is used and
// then adjusted to floor semantics for mixed-sign operands.
func IntFloorDiv(n, d int64) int64 {
	if d == 0 {
		return 0
	}
	q := n / d
	if (n%d != 0) && ((n < 0) != (d < 0)) {
		q--
	}
	return q
}

// IntMod implements `%` for two signed integer lanes: a zero divisor
// yields 0, otherwise a floored modulo (not Go's truncated `%`) is
// returned so results share the divisor's sign, matching NumPy.
func IntMod(n, d int64) int64 {
	if d == 0 {
		return 0
	}
	r := n % d
	if r != 0 && (r < 0) != (d < 0) {
		r += d
	}
	return r
}

// UintFloorDiv implements `//` for two unsigned integer lanes: a zero
// divisor yields 0; otherwise unsigned division is already floor division.
func UintFloorDiv(n, d uint64) uint64 {
	if d == 0 {
		return 0
	}
	return n / d
}

// UintMod implements `%` for two unsigned integer lanes.
func UintMod(n, d uint64) uint64 {
	if d == 0 {
		return 0
	}
	return n % d
}
