// SPDX-License-Identifier: MIT
// Package linalg_test contains test helpers
//
// Purpose:
//   • Deterministic random fixtures driven by a seeded PCG32 generator.
//   • Small Must* wrappers that fail the test instead of returning errors.

package linalg_test

import (
	"testing"

	"github.com/MichaelTJones/pcg"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glmath/linalg"
)

// pcgStream is the PCG32 stream selector shared by every fixture.
const pcgStream = 0xda3e39cb94b95bdb

// tol is the absolute tolerance for invariants computed in float64.
const tol = 1e-9

// rng wraps PCG32 with the float helpers the fixtures need.
type rng struct{ r *pcg.PCG32 }

// newRNG returns a generator seeded with seed; equal seeds give equal streams.
func newRNG(seed uint64) *rng {
	r := pcg.NewPCG32()
	r.Seed(seed, pcgStream)

	return &rng{r: r}
}

// float returns a uniform value in [lo, hi].
func (g *rng) float(lo, hi float64) float64 {
	return lo + (hi-lo)*float64(g.r.Random())/(1<<32-1)
}

// intn returns a uniform integer in [0, n).
func (g *rng) intn(n int) int { return int(g.r.Bounded(uint32(n))) }

// matrix returns an n×n matrix with entries in [-2, 2].
func (g *rng) matrix(n int) linalg.Matrix {
	vals := make([]float64, n*n)
	for i := range vals {
		vals[i] = g.float(-2, 2)
	}
	m, _ := linalg.NewMatrix(n, n, vals...)

	return m
}

// invertible draws matrices until |det| >= 0.5.
func (g *rng) invertible(n int) linalg.Matrix {
	for {
		m := g.matrix(n)
		if d, _ := m.Determinant(); d >= 0.5 || d <= -0.5 {
			return m
		}
	}
}

// vec3 returns a column 3-vector with components in [-5, 5].
func (g *rng) vec3() linalg.Vector {
	return linalg.Vec3(g.float(-5, 5), g.float(-5, 5), g.float(-5, 5))
}

// unitQuat returns a random unit quaternion.
func (g *rng) unitQuat() linalg.Quaternion {
	for {
		q := linalg.Quat(g.float(-1, 1), g.float(-1, 1), g.float(-1, 1), g.float(-1, 1))
		if q.Norm2() > 0.01 {
			return q.Normalize()
		}
	}
}

// MustMatrix builds a matrix from nested rows or fails the test.
func MustMatrix(t testing.TB, rows ...[]float64) linalg.Matrix {
	t.Helper()
	m, err := linalg.MatrixFromRows(rows)
	require.NoError(t, err)

	return m
}

// requireClose asserts AllClose(a, b) with the default tolerances.
func requireClose(t testing.TB, want, got linalg.Value, opts ...linalg.Option) {
	t.Helper()
	ok, err := linalg.AllClose(got, want, opts...)
	require.NoError(t, err)
	require.Truef(t, ok, "want %v, got %v", want, got)
}

// requireSameRotation asserts q ≈ p or q ≈ -p.
func requireSameRotation(t testing.TB, want, got linalg.Quaternion) {
	t.Helper()
	a, _ := linalg.AllClose(got, want, linalg.WithAbsTol(1e-8))
	b, _ := linalg.AllClose(got.Neg(), want, linalg.WithAbsTol(1e-8))
	require.Truef(t, a || b, "want ±%v, got %v", want, got)
}
