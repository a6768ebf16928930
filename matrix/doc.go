// Package matrix provides dense float64 matrices and the small set of
// kernels the lufact module needs to build, verify and consume LU factors.
//
// The matrix package provides:
//
//   - Dense, a cache-friendly row-major matrix with bounds-checked At/Set
//     (sentinel errors, never panics on user input) and an always-on
//     finite-value policy.
//   - Kernels Add, Sub, Mul, Scale and Transpose with a fast path on *Dense
//     and a generic Matrix fallback.
//   - ApproxEqual for tolerance-based comparison of computed factors against
//     reference products.
//   - Central validators (ValidateNotNil, ValidateSameShape, ...) returning
//     plain sentinels so call sites can wrap uniformly.
//
// Dense matrices are best for small or moderate n where O(n²) memory and
// O(n³) kernel time are acceptable; that is exactly the regime of the lu
// package that consumes this one.
//
// See the examples in this package and lu for usage patterns.
package matrix
