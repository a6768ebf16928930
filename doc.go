// Package lufact is a small, dependency-free toolkit for factoring dense
// square matrices as P·A = L·U with relative (row-scaled) partial pivoting.
//
// 🚀 What is lufact?
//
//	A focused numeric library that brings together:
//		• lu/      — in-place LU factorization with scaled partial pivoting,
//		  permutation tracking and tolerance-based singularity detection
//		• matrix/  — dense float64 matrices with bounds-checked access and
//		  the handful of kernels (Mul, Transpose, ...) needed to verify
//		  and consume the factors
//		• cmd/lufact — an interactive reader/printer for the factorization
//
// ✨ Why choose lufact?
//
//   - Explicit errors – every failure is a sentinel matched via errors.Is;
//     a factorization that failed partway is never observable
//   - Relative pivoting – pivot rows are ranked by |a[i][p]| scaled against
//     the row's own remaining magnitude, not raw column size
//   - Pure Go – no cgo, no hidden deps
//
// Quick start:
//
//	s, _ := lu.New(3)
//	_ = s.Fill(
//		2, 1, 1,
//		4, 3, 3,
//		8, 7, 9,
//	)
//	f, err := s.Decompose()
//	if err != nil {
//		// singular to within tolerance; no factors are produced
//	}
//	L, _ := f.L()
//	U, _ := f.U()
//
//	go get github.com/davidhariprashad/lufact/lu
package lufact
