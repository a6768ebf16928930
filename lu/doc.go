// Package lu factors a dense square matrix in place as P·A = L·U using
// relative (row-scaled) partial pivoting, tracking the row permutation and
// the number of actual row interchanges.
//
// 🚀 What is scaled partial pivoting?
//
//	At pivot column p, every candidate row i ≥ p is ranked by the ratio
//	|a[i][p]| / max(|a[i][j]|, j ≥ p) — the pivot entry's magnitude relative
//	to the row's own remaining magnitude. The row where the pivot entry
//	dominates locally wins, which is more robust on badly scaled systems
//	than ranking by raw column magnitude. A row whose remaining maximum
//	falls below the tolerance marks the matrix singular at that stage.
//
// ✨ Key features:
//   - in-place factorization: one n×n buffer holds the combined L\U result
//     (L's unit diagonal is implicit, never stored)
//   - O(1) row interchange via a logical row-order index — element data
//     never moves
//   - permutation vector and swap count for recovering P and sign(det)
//   - tolerance-based singularity detection (ErrLinearlyDependentRow),
//     default tolerance 1/1024
//   - fail-fast error surface: a failed Decompose yields no Factorization,
//     so a partially factored matrix is never observable
//
// ⚙️ Usage:
//
//	import "github.com/davidhariprashad/lufact/lu"
//
//	s, err := lu.New(3, lu.WithTolerance(1e-6))
//	// fill row-major: 3² values
//	err = s.Fill(
//		2, 1, 1,
//		4, 3, 3,
//		8, 7, 9,
//	)
//	f, err := s.Decompose()
//	L, _ := f.L()        // unit lower triangular
//	U, _ := f.U()        // upper triangular
//	P, _ := f.PermMatrix() // P·A = L·U
//	_ = f.Swaps()        // actual interchanges performed
//	_ = f.Det()          // sign(P) · ∏ U[i][i]
//
// Performance:
//
//   - Time:   O(n³) total (O(n²) pivot scan + O(n²) elimination per step)
//   - Memory: O(n²) for the grid, O(n) for the permutation and row index
//
// Concurrency: a Store is exclusively owned and fully synchronous; there is
// exactly one logical thread of control and no locking discipline.
//
// See example_test.go for complete scenarios.
package lu
