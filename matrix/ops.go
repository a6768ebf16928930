// SPDX-License-Identifier: MIT
// Package matrix: universal kernels over any Matrix implementation.
//
// Purpose:
//   - Declare the linear-algebra kernels (Add, Sub, Mul, Scale, Transpose,
//     ApproxEqual) used by the lu package and its tests.
//   - Define operation tags and shared constants for determinism and error
//     reporting.
//
// Notes:
//   - All kernels use the central validators and return plain sentinels or
//     wrap them via matrixErrorf at the facade.
//   - Every kernel has a fast path on *Dense operating on the flat buffer and
//     a generic At/Set fallback with a fixed i→j visitation order.

package matrix

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the non-negative tolerance used by ApproxEqual when the
// caller has no stronger opinion.
const DefaultEpsilon = 1e-9

// ZeroSum is the initial accumulator value for dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opScale       = "Scale"
	opTranspose   = "Transpose"
	opApproxEqual = "ApproxEqual"
)

// Signs used by the shared elementwise kernel (kept as floats to avoid a
// branch inside the hot loop).
const (
	signAdd = 1.0
	signSub = -1.0
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are
// not mutated. Internal helper for Add/Sub to share validation, allocation,
// and the fast path.
// Complexity: O(r*c) time, O(r*c) space for the result.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	// Validate operands (nil → shape).
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: both operands are *Dense — single flat loop.
	ad, aOK := a.(*Dense)
	bd, bOK := b.(*Dense)
	if aOK && bOK {
		for k := range out.data {
			out.data[k] = ad.data[k] + sign*bd.data[k]
		}

		return out, nil
	}

	// Generic fallback via At/Set with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if err = out.Set(i, j, av+sign*bv); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
		}
	}

	return out, nil
}

// Add computes the elementwise sum a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, signAdd, opAdd) }

// Sub computes the elementwise difference a - b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, signSub, opSub) }

// Mul computes the matrix product a·b.
// Stage 1 (Validate): NotNil(a,b), a.Cols == b.Rows.
// Stage 2 (Execute): fast path on *Dense with i→k→j loop order (row-major
// friendly), generic fallback otherwise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*k*c) time, O(r*c) space.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulShape(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Fast path: flat-buffer product with i→k→j visitation so the inner loop
	// walks both b and out sequentially.
	ad, aOK := a.(*Dense)
	bd, bOK := b.(*Dense)
	var i, j, k int
	if aOK && bOK {
		var aik float64
		var baseA, baseB, baseO int
		for i = 0; i < rows; i++ {
			baseA = i * inner
			baseO = i * cols
			for k = 0; k < inner; k++ {
				aik = ad.data[baseA+k]
				if aik == ZeroSum {
					continue // skip whole row of b; common with permutation operands
				}
				baseB = k * cols
				for j = 0; j < cols; j++ {
					out.data[baseO+j] += aik * bd.data[baseB+j]
				}
			}
		}

		return out, nil
	}

	// Generic fallback via At/Set with fixed i→j→k order.
	var sum, av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = ZeroSum
			for k = 0; k < inner; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				sum += av * bv
			}
			if err = out.Set(i, j, sum); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
		}
	}

	return out, nil
}

// Scale computes out = s * m elementwise. The input is not mutated.
// The scalar must be finite (numeric policy): NaN/±Inf → ErrNaNInf.
// Errors: ErrNilMatrix, ErrNaNInf.
// Complexity: O(r*c).
func Scale(m Matrix, s float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}

	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast path on *Dense.
	if d, ok := m.(*Dense); ok {
		for k := range out.data {
			out.data[k] = s * d.data[k]
		}

		return out, nil
	}

	// Generic fallback.
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			if err = out.Set(i, j, s*v); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
		}
	}

	return out, nil
}

// Transpose returns mᵀ as a fresh Dense. The input is not mutated.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast path on *Dense: read rows sequentially, scatter into columns.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				out.data[j*rows+i] = d.data[base+j]
			}
		}

		return out, nil
	}

	// Generic fallback.
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			if err = out.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
		}
	}

	return out, nil
}

// ApproxEqual reports whether a and b have the same shape and agree
// elementwise within eps (absolute difference). eps < 0 selects
// DefaultEpsilon; NaN eps → ErrNaNInf.
// Errors: ErrNilMatrix, ErrNaNInf. A shape mismatch is reported as
// (false, nil), not as an error, so tests can assert on the boolean alone.
// Complexity: O(r*c).
func ApproxEqual(a, b Matrix, eps float64) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opApproxEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opApproxEqual, err)
	}
	if math.IsNaN(eps) {
		return false, matrixErrorf(opApproxEqual, ErrNaNInf)
	}
	if eps < 0 {
		eps = DefaultEpsilon
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}

	// Fast path on *Dense pairs.
	ad, aOK := a.(*Dense)
	bd, bOK := b.(*Dense)
	if aOK && bOK {
		for k := range ad.data {
			if math.Abs(ad.data[k]-bd.data[k]) > eps {
				return false, nil
			}
		}

		return true, nil
	}

	// Generic fallback.
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opApproxEqual, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opApproxEqual, err)
			}
			if math.Abs(av-bv) > eps {
				return false, nil
			}
		}
	}

	return true, nil
}
