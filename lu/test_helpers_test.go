// SPDX-License-Identifier: MIT
// Package lu_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for stores and reference matrices.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package lu_test

import (
	"testing"

	"github.com/davidhariprashad/lufact/lu"
	"github.com/davidhariprashad/lufact/matrix"
)

// floatTol is the reconstruction tolerance used across decomposition tests.
const floatTol = 1e-12

// MustStore allocates an n×n Store or fails the test (fatal on error).
func MustStore(t *testing.T, n int, opts ...lu.Option) *lu.Store {
	t.Helper()
	s, err := lu.New(n, opts...)
	if err != nil {
		t.Fatalf("lu.New(%d): %v", n, err)
	}

	return s
}

// MustFill populates s row-major or fails the test.
func MustFill(t *testing.T, s *lu.Store, vals ...float64) {
	t.Helper()
	if err := s.Fill(vals...); err != nil {
		t.Fatalf("Store.Fill: %v", err)
	}
}

// MustDecompose runs Decompose and fails the test on error.
func MustDecompose(t *testing.T, s *lu.Store) *lu.Factorization {
	t.Helper()
	f, err := s.Decompose()
	if err != nil {
		t.Fatalf("Store.Decompose: %v", err)
	}

	return f
}

// MustDense builds a reference *matrix.Dense from row-major values.
func MustDense(t *testing.T, n int, vals ...float64) *matrix.Dense {
	t.Helper()
	if len(vals) != n*n {
		t.Fatalf("MustDense: got %d values for n=%d", len(vals), n)
	}
	m, err := matrix.NewDense(n, n)
	if err != nil {
		t.Fatalf("matrix.NewDense(%d,%d): %v", n, n, err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err = m.Set(i, j, vals[i*n+j]); err != nil {
				t.Fatalf("Dense.Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// identityValues returns the row-major values of the n×n identity.
func identityValues(n int) []float64 {
	vals := make([]float64, n*n)
	for i := 0; i < n; i++ {
		vals[i*n+i] = 1
	}

	return vals
}

// assertReconstructs checks P·A ≈ L·U within tol for the factorization of
// the matrix given by vals (row-major, the exact values the store was filled
// with). Pass a tolerance proportional to the data scale: elimination
// roundoff grows with entry magnitude.
func assertReconstructs(t *testing.T, f *lu.Factorization, n int, tol float64, vals ...float64) {
	t.Helper()
	a := MustDense(t, n, vals...)

	p, err := f.PermMatrix()
	if err != nil {
		t.Fatalf("PermMatrix: %v", err)
	}
	l, err := f.L()
	if err != nil {
		t.Fatalf("L: %v", err)
	}
	u, err := f.U()
	if err != nil {
		t.Fatalf("U: %v", err)
	}

	pa, err := matrix.Mul(p, a)
	if err != nil {
		t.Fatalf("Mul(P, A): %v", err)
	}
	luProd, err := matrix.Mul(l, u)
	if err != nil {
		t.Fatalf("Mul(L, U): %v", err)
	}

	same, err := matrix.ApproxEqual(pa, luProd, tol)
	if err != nil {
		t.Fatalf("ApproxEqual: %v", err)
	}
	if !same {
		t.Fatalf("P·A != L·U\nP·A:\n%v\nL·U:\n%v", pa, luProd)
	}
}

// assertBijection checks perm is a bijection over [0, n).
func assertBijection(t *testing.T, perm []int, n int) {
	t.Helper()
	if len(perm) != n {
		t.Fatalf("perm length %d, want %d", len(perm), n)
	}
	seen := make([]bool, n)
	for k, p := range perm {
		if p < 0 || p >= n {
			t.Fatalf("perm[%d] = %d outside [0,%d)", k, p, n)
		}
		if seen[p] {
			t.Fatalf("perm[%d] = %d duplicated", k, p)
		}
		seen[p] = true
	}
}
