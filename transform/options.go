// SPDX-License-Identifier: MIT

// Package transform: functional configuration for projection builders.
// This file defines:
//   - DepthRange / Handedness enums,
//   - Option / Options with documented defaults,
//   - WithX constructors that panic on out-of-range enum values,
//   - gatherOptions helper (internal).
//
// Defaults reproduce the classic OpenGL matrices (glOrtho, glFrustum,
// gluPerspective): right-handed eye space looking down -Z, clip depth -1..1.

package transform

// DepthRange selects the normalized device depth interval.
type DepthRange uint8

const (
	// DepthNegOneToOne maps near to -1 and far to +1 (OpenGL).
	DepthNegOneToOne DepthRange = iota
	// DepthZeroToOne maps near to 0 and far to 1 (Direct3D, Vulkan, Metal).
	DepthZeroToOne
)

// Handedness selects the eye-space convention.
type Handedness uint8

const (
	// RightHanded eye space looks down -Z.
	RightHanded Handedness = iota
	// LeftHanded eye space looks down +Z; the matrix is the right-handed one
	// with the eye-space z axis mirrored.
	LeftHanded
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDepthRange is the OpenGL clip depth.
	DefaultDepthRange = DepthNegOneToOne

	// DefaultHandedness is the OpenGL eye space.
	DefaultHandedness = RightHanded
)

const (
	panicDepthRangeInvalid = "transform: WithDepthRange: unknown depth range"
	panicHandednessInvalid = "transform: WithHandedness: unknown handedness"
)

// Option mutates internal options; constructors panic only on programmer error.
type Option func(*Options)

// Options stores the effective projection configuration.
type Options struct {
	depth DepthRange
	hand  Handedness
}

// WithDepthRange selects the clip depth interval.
// Panics on values other than DepthNegOneToOne and DepthZeroToOne.
func WithDepthRange(d DepthRange) Option {
	if d > DepthZeroToOne {
		panic(panicDepthRangeInvalid)
	}

	return func(o *Options) { o.depth = d }
}

// WithHandedness selects the eye-space convention.
// Panics on values other than RightHanded and LeftHanded.
//
// AI-Hints:
//   - Pair LeftHanded with DepthZeroToOne for Direct3D-style pipelines.
func WithHandedness(h Handedness) Option {
	if h > LeftHanded {
		panic(panicHandednessInvalid)
	}

	return func(o *Options) { o.hand = h }
}

// gatherOptions applies user setters over the defaults; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{depth: DefaultDepthRange, hand: DefaultHandedness}
	for _, set := range user {
		set(&o)
	}

	return o
}
