// SPDX-License-Identifier: MIT

// Package lu - pivot selection under the relative (row-scaled) metric.
//
// This is deliberately NOT textbook partial pivoting. Candidates are ranked
// by the pivot-column magnitude normalized against the row's own maximum
// remaining magnitude, favoring rows where the pivot entry dominates locally
// over rows that merely carry the largest raw value. The two rules choose
// different rows on badly scaled systems and therefore produce different
// factors; the scaled rule is the contract of this package.

package lu

import (
	"fmt"
	"math"
)

// ratioFloor is the starting best ratio: only strictly greater ratios
// replace the current winner, so ties keep the earliest row.
const ratioFloor = 0.0

// bestPivot scans rows [p, n) and returns the index of the best pivot row
// for pivot column p under the relative-magnitude metric.
//
// Stage 1 (Scan): for each candidate row i compute
// rowMax = max(|a[i][j]|, j ∈ [p, n)).
// Stage 2 (Guard): rowMax < tolerance ⇒ the row is too small to ever source
// a pivot — the matrix is singular to within the tolerance at this stage.
// The guard runs once per scanned row, not only for the eventual winner.
// Stage 3 (Rank): track the strictly largest |a[i][p]| / rowMax; the winner
// defaults to p itself when no row strictly improves on ratio 0.
//
// Errors: ErrLinearlyDependentRow (wrapped with the offending row index).
// Determinism: fixed i→j scan order; strict inequality keeps the earliest row.
// Complexity: O((n-p)²) time, O(1) space.
func (s *Store) bestPivot(p int) (int, error) {
	best := p
	bestRatio := ratioFloor

	var rowMax, abs, ratio float64
	var row []float64
	for i := p; i < s.n; i++ {
		row = s.row(i)

		// Remaining-columns maximum magnitude for row i.
		rowMax = ratioFloor
		for j := p; j < s.n; j++ {
			if abs = math.Abs(row[j]); abs > rowMax {
				rowMax = abs
			}
		}

		// Near-singular row: fail the whole decomposition, per row scanned.
		if rowMax < s.tol {
			return 0, fmt.Errorf("bestPivot: row %d below tolerance %g: %w", i, s.tol, ErrLinearlyDependentRow)
		}

		// Strictly-greater ratio wins; ties keep the earliest row.
		if ratio = math.Abs(row[p]) / rowMax; ratio > bestRatio {
			bestRatio = ratio
			best = i
		}
	}

	return best, nil
}
