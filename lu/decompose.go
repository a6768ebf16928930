// SPDX-License-Identifier: MIT

// Package lu - the decomposition driver.
//
// Decompose walks pivot positions 0..n-1; each step selects a pivot row
// under the scaled metric (pivot.go), performs the O(1) interchange with the
// permutation entries swapped in lock-step, and eliminates the entries below
// the pivot, writing the multipliers into the lower triangle. On completion
// the grid holds the combined L\U factors in place.

package lu

// opDecompose tags errors escaping the driver (no magic strings).
const opDecompose = "Decompose"

// Decompose factors the Store in place and returns the finished
// Factorization. It runs at most once per Store.
//
// Stage 1 (Guard): reject nil receivers and re-runs (ErrAlreadyDecomposed).
// Stage 2 (Init): permutation ← identity, swap count ← 0.
// Stage 3 (Loop): for each pivot position
//   - bestPivot selects the winning row (scaled metric, tolerance guard);
//   - if it differs from the pivot position: O(1) row interchange, the two
//     permutation entries exchanged in lock-step, swap count incremented —
//     a pivot that is already in place counts no swap;
//   - a selected pivot entry of exactly zero (an all-zero pivot column whose
//     rows still pass the tolerance) fails with ErrSingular instead of
//     eliminating through it and poisoning the grid with Inf/NaN;
//   - every lower row r gets multiplier c = a[r][p]/a[p][p], its remaining
//     columns updated as a[r][j] -= c·a[p][j], and c stored at a[r][p]
//     (the L entry; L's unit diagonal is implicit).
//
// Failure semantics: the first error aborts the remaining pivot loop, the
// Store transitions to its failed state, and NO Factorization is returned —
// a factorization that failed partway is never observable downstream.
//
// Complexity: O(n³) time, O(1) extra space.
func (s *Store) Decompose() (*Factorization, error) {
	if s == nil {
		return nil, storeErrorf(opDecompose, ErrNilStore)
	}
	if s.state != stateReady {
		return nil, storeErrorf(opDecompose, ErrAlreadyDecomposed)
	}

	// Reset permutation bookkeeping; the grid's current logical order is A.
	for i := 0; i < s.n; i++ {
		s.perm[i] = i
	}
	s.swaps = 0

	var (
		selected   int
		err        error
		pv, c      float64
		rowP, rowR []float64
	)
	for pivot := 0; pivot < s.n; pivot++ {
		// Select the pivot row under the relative metric.
		if selected, err = s.bestPivot(pivot); err != nil {
			s.state = stateFailed

			return nil, storeErrorf(opDecompose, err)
		}

		// Interchange storage and permutation in lock-step; count it.
		if selected != pivot {
			s.rows[pivot], s.rows[selected] = s.rows[selected], s.rows[pivot]
			s.perm[pivot], s.perm[selected] = s.perm[selected], s.perm[pivot]
			s.swaps++
		}

		rowP = s.row(pivot)
		if pv = rowP[pivot]; pv == 0 {
			s.state = stateFailed

			return nil, storeErrorf(opDecompose, ErrSingular)
		}

		// Eliminate below the pivot, storing multipliers in the lower triangle.
		for r := pivot + 1; r < s.n; r++ {
			rowR = s.row(r)
			c = rowR[pivot] / pv
			for j := pivot + 1; j < s.n; j++ {
				rowR[j] -= c * rowP[j]
			}
			rowR[pivot] = c
		}
	}

	s.state = stateDecomposed

	return newFactorization(s), nil
}
