// SPDX-License-Identifier: MIT

// Package linalg: functional configuration for tolerance-based comparison.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Arithmetic never takes options: exact-zero singularity and IEEE-754
// division are fixed behavior. Only AllClose is configurable.

package linalg

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultAbsTol is the absolute tolerance atol of AllClose.
	DefaultAbsTol = 1e-9

	// DefaultRelTol is the relative tolerance rtol of AllClose, scaled by |b|.
	DefaultRelTol = 1e-9
)

// ---------- Internal panic messages ----------

const (
	panicAbsTolInvalid = "linalg: WithAbsTol: atol must be finite, non-negative"
	panicRelTolInvalid = "linalg: WithRelTol: rtol must be finite, non-negative"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	atol float64 // >= 0; DefaultAbsTol
	rtol float64 // >= 0; DefaultRelTol
}

// WithAbsTol sets the absolute tolerance used by AllClose.
// Panics when atol is NaN, ±Inf or negative.
func WithAbsTol(atol float64) Option {
	if isNonFinite(atol) || atol < 0 {
		panic(panicAbsTolInvalid)
	}

	return func(o *Options) { o.atol = atol }
}

// WithRelTol sets the relative tolerance used by AllClose.
// Panics when rtol is NaN, ±Inf or negative.
//
// AI-Hints:
//   - WithRelTol(0) turns AllClose into a pure absolute comparison.
func WithRelTol(rtol float64) Option {
	if isNonFinite(rtol) || rtol < 0 {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) { o.rtol = rtol }
}

// gatherOptions applies user setters over the defaults; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{atol: DefaultAbsTol, rtol: DefaultRelTol}
	for _, set := range user {
		set(&o)
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
