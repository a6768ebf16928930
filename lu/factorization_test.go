// Package lu_test contains unit tests for the Factorization query surface.
package lu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidhariprashad/lufact/lu"
)

// fixtureVals is a fixed 3×3 system with one forced interchange:
//
//	A = [[1, 6, 2],
//	     [8, 2, 1],
//	     [2, 1, 9]]
//
// Pivot column 0 ratios: 1/6, 8/8=1, 2/9 → row 1 wins and swaps into place.
var fixtureVals = []float64{
	1, 6, 2,
	8, 2, 1,
	2, 1, 9,
}

// factorFixture decomposes fixtureVals and returns the factorization.
func factorFixture(t *testing.T) *lu.Factorization {
	t.Helper()
	s := MustStore(t, 3)
	MustFill(t, s, fixtureVals...)

	return MustDecompose(t, s)
}

// TestFactorization_TriangularShape verifies L is unit lower and U upper.
func TestFactorization_TriangularShape(t *testing.T) {
	f := factorFixture(t)

	l, err := f.L()
	require.NoError(t, err)
	u, err := f.U()
	require.NoError(t, err)

	n := f.Dim()
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err = l.At(i, j)
			require.NoError(t, err)
			switch {
			case j > i:
				assert.Zero(t, v, "L[%d,%d] above the diagonal", i, j)
			case j == i:
				assert.Equal(t, 1.0, v, "L[%d,%d] unit diagonal", i, j)
			}

			v, err = u.At(i, j)
			require.NoError(t, err)
			if j < i {
				assert.Zero(t, v, "U[%d,%d] below the diagonal", i, j)
			}
		}
	}
}

// TestFactorization_CompactComposes: the compact grid is exactly L's strict
// lower triangle overlaid with U.
func TestFactorization_CompactComposes(t *testing.T) {
	f := factorFixture(t)

	compact, err := f.Compact()
	require.NoError(t, err)
	l, err := f.L()
	require.NoError(t, err)
	u, err := f.U()
	require.NoError(t, err)

	n := f.Dim()
	var got, want float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			got, err = compact.At(i, j)
			require.NoError(t, err)
			if j < i {
				want, err = l.At(i, j)
			} else {
				want, err = u.At(i, j)
			}
			require.NoError(t, err)
			assert.Equal(t, want, got, "compact[%d,%d]", i, j)
		}
	}
}

// TestFactorization_PermMatrix: P has exactly one 1 per row, at the columns
// the permutation vector names, and P·A reconstructs L·U.
func TestFactorization_PermMatrix(t *testing.T) {
	f := factorFixture(t)

	assert.Equal(t, 1, f.Swaps())
	assert.Equal(t, -1, f.Sign())
	perm := f.Perm()
	assertBijection(t, perm, f.Dim())
	assert.Equal(t, []int{1, 0, 2}, perm)

	p, err := f.PermMatrix()
	require.NoError(t, err)
	n := f.Dim()
	var v float64
	for k := 0; k < n; k++ {
		for j := 0; j < n; j++ {
			v, err = p.At(k, j)
			require.NoError(t, err)
			if j == perm[k] {
				assert.Equal(t, 1.0, v, "P[%d,%d]", k, j)
			} else {
				assert.Zero(t, v, "P[%d,%d]", k, j)
			}
		}
	}

	assertReconstructs(t, f, n, floatTol, fixtureVals...)
}

// TestFactorization_Det: determinant recovered from the factors matches the
// cofactor expansion of the fixture, sign included.
func TestFactorization_Det(t *testing.T) {
	f := factorFixture(t)

	// det A = 1·(18-1) - 6·(72-2) + 2·(8-4) = 17 - 420 + 8 = -395.
	assert.InDelta(t, -395.0, f.Det(), 1e-9)
}

// TestFactorization_PermCopyIsDetached: mutating the returned slice must not
// affect later reads.
func TestFactorization_PermCopyIsDetached(t *testing.T) {
	f := factorFixture(t)

	perm := f.Perm()
	perm[0] = 99
	assert.Equal(t, []int{1, 0, 2}, f.Perm(), "Perm returns a fresh copy")
}
