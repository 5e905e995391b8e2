// SPDX-License-Identifier: MIT
// Package numeric provides the scalar building blocks shared by every
// algebraic type of glmath: clamp, linear blend, step functions and the
// size-adapting copy used by all constructors.
//
// Purpose:
//   - One generic definition per scalar op, usable for float32 and float64.
//   - Elementwise vector/matrix variants in linalg delegate here, so the
//     edge semantics (e.g. Step at x == edge) live in exactly one place.
//
// Determinism:
//   - Pure functions; no allocation; no hidden state.

package numeric

import "golang.org/x/exp/constraints"

// Clamp limits x to the closed interval [lo, hi].
// lo is returned when x < lo, hi when x > hi, x otherwise.
// No ordering check is performed on lo/hi: with lo > hi the lower bound wins
// for x < lo and the upper bound for x > hi.
//
// Complexity: O(1).
func Clamp[T constraints.Float](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}

// Mix returns the linear blend x*(1-k) + y*k.
// k is not clamped; k outside [0,1] extrapolates.
//
// Complexity: O(1).
func Mix[T constraints.Float](x, y, k T) T {
	return x*(1-k) + y*k
}

// Step returns 0 when x <= edge and 1 otherwise.
// The edge itself maps to 0.
func Step[T constraints.Float](x, edge T) T {
	if x <= edge {
		return 0
	}

	return 1
}

// Smoothstep performs Hermite interpolation between 0 and 1 when
// edge0 < x < edge1: t = clamp((x-edge0)/(edge1-edge0), 0, 1); t²(3-2t).
//
// Notes:
//   - edge0 == edge1 divides by zero; the IEEE result flows through Clamp
//     (±Inf clamps to 0 or 1, NaN passes through).
func Smoothstep[T constraints.Float](x, edge0, edge1 T) T {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)

	return t * t * (3 - 2*t)
}

// Fade is the quintic variant of Smoothstep (Perlin's improved curve):
// 6t⁵ - 15t⁴ + 10t³ with the same normalized t.
// First and second derivatives vanish at both edges.
func Fade[T constraints.Float](x, edge0, edge1 T) T {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)

	return t * t * t * (t*(t*6-15) + 10)
}
