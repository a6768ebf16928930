// SPDX-License-Identifier: MIT
// Package lu: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the lu
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors in option constructors.

package lu

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "lu: ..." for consistency and to allow easy
// grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidDimension is returned by New when n < 1. No storage is
	// allocated on this path.
	ErrInvalidDimension = errors.New("lu: dimension must be >= 1")

	// ErrIndexOutOfBounds indicates element access outside the legacy
	// 1-indexed window accepted by At/Set (see Store.At).
	ErrIndexOutOfBounds = errors.New("lu: index out of bounds")

	// ErrRowIndexOutOfBounds indicates row access outside [0, n).
	ErrRowIndexOutOfBounds = errors.New("lu: row index out of bounds")

	// ErrLinearlyDependentRow is returned when a scanned row's remaining-
	// columns maximum magnitude falls below the tolerance: the matrix is
	// singular to within that tolerance at the current pivot stage.
	ErrLinearlyDependentRow = errors.New("lu: linearly dependent row detected")

	// ErrSingular is returned when the selected pivot entry is exactly zero
	// (a zero pivot column that still passes the per-row tolerance check).
	// Eliminating through it would only produce Inf/NaN garbage.
	ErrSingular = errors.New("lu: singular matrix (zero pivot)")

	// ErrAlreadyDecomposed rejects mutation or re-decomposition of a Store
	// whose one-shot factorization has already run (successfully or not).
	ErrAlreadyDecomposed = errors.New("lu: store already decomposed")

	// ErrBadFill is returned by Fill when the value count is not exactly n².
	ErrBadFill = errors.New("lu: fill requires exactly n*n values")

	// ErrNilStore indicates that a nil *Store receiver was used.
	ErrNilStore = errors.New("lu: nil store")
)
