// SPDX-License-Identifier: MIT

// Package lu - Factorization: the read-only query surface over a finished
// decomposition. A Factorization exists ONLY for a Store whose Decompose
// succeeded, which is what makes "no downstream use of a failed run"
// structural rather than a convention callers must remember.

package lu

import (
	"fmt"

	"github.com/davidhariprashad/lufact/matrix"
)

// Factorization exposes the factors of a successfully decomposed Store:
// L and U with P·A = L·U, the permutation vector, the swap count, and the
// determinant derived from them. Snapshot accessors (L, U, Compact,
// PermMatrix) allocate fresh matrices, so a Factorization never leaks
// mutable references to the Store's buffer.
type Factorization struct {
	s     *Store
	perm  []int // snapshot of the permutation at completion
	swaps int   // snapshot of the interchange count
}

// newFactorization snapshots the bookkeeping of a freshly decomposed Store.
func newFactorization(s *Store) *Factorization {
	perm := make([]int, s.n)
	copy(perm, s.perm)

	return &Factorization{s: s, perm: perm, swaps: s.swaps}
}

// facErrorf wraps err with a uniform Factorization context tag.
func facErrorf(method string, err error) error {
	return fmt.Errorf("Factorization.%s: %w", method, err)
}

// Dim returns the dimension n of the factored matrix. Complexity: O(1).
func (f *Factorization) Dim() int { return f.s.n }

// Swaps returns the number of actual row interchanges performed. A pivot
// already in place never counted. Complexity: O(1).
func (f *Factorization) Swaps() int { return f.swaps }

// Sign returns (-1)^Swaps — the sign of the permutation. Complexity: O(1).
func (f *Factorization) Sign() int {
	if f.swaps%2 != 0 {
		return -1
	}

	return 1
}

// Perm returns a copy of the permutation vector: Perm()[k] is the original
// (0-indexed) row of A now occupying position k. The vector is always a
// bijection over [0, n). Complexity: O(n).
func (f *Factorization) Perm() []int {
	p := make([]int, len(f.perm))
	copy(p, f.perm)

	return p
}

// Compact returns the combined L\U grid as a fresh Dense: strictly-below-
// diagonal entries are L's multipliers, on-and-above-diagonal entries are U.
// Complexity: O(n²).
func (f *Factorization) Compact() (*matrix.Dense, error) {
	n := f.s.n
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, facErrorf("Compact", err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if err = out.Set(i, j, f.s.at(i, j)); err != nil {
				return nil, facErrorf("Compact", err)
			}
		}
	}

	return out, nil
}

// L materializes the unit lower triangular factor: multipliers below the
// diagonal, 1s on it, 0s above. Complexity: O(n²).
func (f *Factorization) L() (*matrix.Dense, error) {
	n := f.s.n
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, facErrorf("L", err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < i; j++ {
			if err = out.Set(i, j, f.s.at(i, j)); err != nil {
				return nil, facErrorf("L", err)
			}
		}
		// Implicit unit diagonal becomes explicit in the materialized factor.
		if err = out.Set(i, i, 1); err != nil {
			return nil, facErrorf("L", err)
		}
	}

	return out, nil
}

// U materializes the upper triangular factor: on-and-above-diagonal entries,
// 0s below. Complexity: O(n²).
func (f *Factorization) U() (*matrix.Dense, error) {
	n := f.s.n
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, facErrorf("U", err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			if err = out.Set(i, j, f.s.at(i, j)); err != nil {
				return nil, facErrorf("U", err)
			}
		}
	}

	return out, nil
}

// PermMatrix materializes the permutation as a matrix P with exactly one 1
// per row, so that P·A = L·U for the original A. Complexity: O(n²).
func (f *Factorization) PermMatrix() (*matrix.Dense, error) {
	n := f.s.n
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, facErrorf("PermMatrix", err)
	}
	for k := 0; k < n; k++ {
		// Row k of P picks original row perm[k] of A.
		if err = out.Set(k, f.perm[k], 1); err != nil {
			return nil, facErrorf("PermMatrix", err)
		}
	}

	return out, nil
}

// Det returns the determinant of A recovered from the finished factors:
// Sign() · ∏ U[i][i]. This reads the factorization, it does not solve
// anything. Complexity: O(n).
func (f *Factorization) Det() float64 {
	det := float64(f.Sign())
	for i := 0; i < f.s.n; i++ {
		det *= f.s.at(i, i)
	}

	return det
}
