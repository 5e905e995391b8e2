// SPDX-License-Identifier: MIT

package linalg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/glmath/linalg"
)

// propertyTrials is the number of random cases per invariant.
const propertyTrials = 200

// PropertySuite checks algebraic invariants over seeded random inputs.
type PropertySuite struct {
	suite.Suite
	g *rng
}

// SetupTest reseeds before every test so each invariant is reproducible alone.
func (s *PropertySuite) SetupTest() { s.g = newRNG(20240601) }

// TestInverseTimesMatrixIsIdentity verifies M·M⁻¹ ≈ I for orders 2..4.
func (s *PropertySuite) TestInverseTimesMatrixIsIdentity() {
	for n := 2; n <= 4; n++ {
		id, err := linalg.Identity(n)
		require.NoError(s.T(), err)
		for i := 0; i < propertyTrials; i++ {
			m := s.g.invertible(n)
			inv, err := m.Inverse()
			require.NoError(s.T(), err)
			p, err := m.Mul(inv)
			require.NoError(s.T(), err)
			requireClose(s.T(), id, p, linalg.WithAbsTol(1e-8))
		}
	}
}

// TestDeterminantIsMultiplicative verifies det(AB) = det(A)·det(B).
func (s *PropertySuite) TestDeterminantIsMultiplicative() {
	for n := 2; n <= 4; n++ {
		for i := 0; i < propertyTrials; i++ {
			a, b := s.g.matrix(n), s.g.matrix(n)
			ab, err := a.Mul(b)
			require.NoError(s.T(), err)
			da, _ := a.Determinant()
			db, _ := b.Determinant()
			dab, err := ab.Determinant()
			require.NoError(s.T(), err)
			s.InDelta(da*db, dab, 1e-9*(1+math.Abs(dab)))
		}
	}
}

// TestNormalizeHasUnitNorm verifies |v/|v|| ≈ 1.
func (s *PropertySuite) TestNormalizeHasUnitNorm() {
	for i := 0; i < propertyTrials; i++ {
		v := s.g.vec3()
		if v.Norm() < 1e-6 {
			continue
		}
		s.InDelta(1.0, v.Normalize().Norm(), tol)
	}
}

// TestCrossIsAntiCommutative verifies a×b = -(b×a).
func (s *PropertySuite) TestCrossIsAntiCommutative() {
	for i := 0; i < propertyTrials; i++ {
		a, b := s.g.vec3(), s.g.vec3()
		ab, err := a.Cross(b)
		require.NoError(s.T(), err)
		ba, err := b.Cross(a)
		require.NoError(s.T(), err)
		s.Equal(ab, ba.Neg())
	}
}

// TestSlerpEndpointsAndNorm verifies slerp(q,p,0) ≈ q, slerp(q,p,1) ≈ ±p and
// unit norm along the arc.
func (s *PropertySuite) TestSlerpEndpointsAndNorm() {
	for i := 0; i < propertyTrials; i++ {
		q, p := s.g.unitQuat(), s.g.unitQuat()
		requireClose(s.T(), q, q.Slerp(p, 0))
		requireSameRotation(s.T(), p, q.Slerp(p, 1))
		t := float64(s.g.intn(1001)) / 1000
		s.InDelta(1.0, q.Slerp(p, t).Norm(), 1e-4)
	}
}

// TestQuatMatrixRoundTrip verifies matrix→quat(quat→matrix(q)) ≈ ±q.
func (s *PropertySuite) TestQuatMatrixRoundTrip() {
	for i := 0; i < propertyTrials; i++ {
		q := s.g.unitQuat()
		for _, order := range []int{3, 4} {
			m, err := q.ToMatrix(order)
			require.NoError(s.T(), err)
			got, err := linalg.QuatFromMatrix(m)
			require.NoError(s.T(), err)
			requireSameRotation(s.T(), q, got)
		}
	}
}

// TestRotateMatchesMatrix verifies q.Rotate(v) == Mat3(q)·v.
func (s *PropertySuite) TestRotateMatchesMatrix() {
	for i := 0; i < propertyTrials; i++ {
		q, v := s.g.unitQuat(), s.g.vec3()
		byQuat, err := q.Rotate(v)
		require.NoError(s.T(), err)
		byMat, err := q.Mat3().MulVec(v)
		require.NoError(s.T(), err)
		requireClose(s.T(), byMat, byQuat, linalg.WithAbsTol(1e-8))
	}
}

func TestPropertySuite(t *testing.T) {
	suite.Run(t, new(PropertySuite))
}
