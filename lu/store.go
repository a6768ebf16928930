// SPDX-License-Identifier: MIT

// Package lu - Store: the n×n element grid plus permutation bookkeeping.
//
// Purpose:
//   - Own the factorization state: one contiguous row-major buffer, a logical
//     row-order index (O(1) interchanges without moving element data), the
//     permutation vector and the swap counter.
//   - Guarantee safety at the public surface: every accessor yields either a
//     value or a sentinel error — there is no silent fallthrough path.
//
// Storage note:
//   - The legacy implementation modeled the grid as an array of independently
//     owned row buffers so interchanges were pointer exchanges. Here a single
//     flat buffer plus the rows index gives the same O(1) swap with better
//     cache locality and no aliasing.

package lu

import "fmt"

// state tracks the one-shot lifecycle of a Store.
type state uint8

const (
	// stateReady: constructed, fillable, not yet decomposed.
	stateReady state = iota
	// stateDecomposed: Decompose succeeded; grid holds combined L\U.
	stateDecomposed
	// stateFailed: Decompose aborted; grid is partially mutated garbage.
	stateFailed
)

// Store owns an n×n grid of float64 and the length-n permutation buffer.
// It is exclusively owned and fully synchronous: exactly one logical thread
// of control mutates it, so no locking discipline is needed.
//
// Lifecycle: New → Fill/Set → Decompose (once) → read factors via the
// returned Factorization. After Decompose runs (either way) the Store
// rejects further mutation with ErrAlreadyDecomposed.
type Store struct {
	n     int       // dimension (>= 1)
	data  []float64 // flat row-major buffer, len == n*n, indexed via rows
	rows  []int     // logical→physical row index; swaps exchange entries here
	perm  []int     // permutation vector: original row now at each position
	swaps int       // count of actual row interchanges
	tol   float64   // singularity threshold (resolved, never negative)
	state state     // one-shot lifecycle guard
}

// storeErrorf wraps an error with a uniform Store context tag, preserving the
// sentinel for errors.Is. Complexity: O(1).
func storeErrorf(method string, err error) error {
	return fmt.Errorf("Store.%s: %w", method, err)
}

// New constructs an n×n Store with an identity permutation.
// Stage 1 (Validate): n >= 1, else ErrInvalidDimension with NO allocation.
// Stage 2 (Prepare): gather options (tolerance), allocate grid + indices.
// Stage 3 (Finalize): initialize rows and perm to the identity [0..n).
// Complexity: O(n²) time and memory.
func New(n int, opts ...Option) (*Store, error) {
	// Validate the dimension before touching the options or the heap.
	if n < 1 {
		return nil, ErrInvalidDimension
	}
	o := gatherOptions(opts...)

	s := &Store{
		n:    n,
		data: make([]float64, n*n),
		rows: make([]int, n),
		perm: make([]int, n),
		tol:  o.tolerance,
	}
	for i := 0; i < n; i++ {
		s.rows[i] = i
		s.perm[i] = i
	}

	return s, nil
}

// Dim returns the dimension n. Complexity: O(1).
func (s *Store) Dim() int { return s.n }

// Tolerance returns the resolved singularity threshold. Complexity: O(1).
func (s *Store) Tolerance() float64 { return s.tol }

// at reads the element at logical (i, j) without bounds checking.
// Callers inside the package guarantee 0 ≤ i, j < n. Complexity: O(1).
func (s *Store) at(i, j int) float64 {
	return s.data[s.rows[i]*s.n+j]
}

// row returns the physical backing slice of logical row i (len n), without
// bounds checking. Complexity: O(1).
func (s *Store) row(i int) []float64 {
	base := s.rows[i] * s.n

	return s.data[base : base+s.n]
}

// inLegacyWindow reports whether (i, j) falls inside the 1-indexed window
// accepted by At/Set: 1 ≤ i, j ≤ n-1.
func (s *Store) inLegacyWindow(i, j int) bool {
	return i >= 1 && j >= 1 && i < s.n && j < s.n
}

// At retrieves the element at (i, j) under the legacy 1-indexed convention:
// valid indices are 1 ≤ i, j ≤ n-1, everything else yields a wrapped
// ErrIndexOutOfBounds — and, unlike the implementation this package grew out
// of, this accessor ALWAYS returns either a value or that error.
//
// COMPATIBILITY NOTE: the window is asymmetric on purpose — index 0 is
// rejected while the last index n-1 is reachable, so element (0, j) can never
// be addressed through At. That matches the historical accessor bound and
// looks unintentional, but the intended behavior is ambiguous, so it is
// preserved and flagged here rather than silently changed. Full-range access
// goes through Row (0-indexed) or Fill.
// Complexity: O(1).
func (s *Store) At(i, j int) (float64, error) {
	if s == nil {
		return 0, storeErrorf("At", ErrNilStore)
	}
	if !s.inLegacyWindow(i, j) {
		return 0, fmt.Errorf("Store.At(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}

	return s.at(i, j), nil
}

// Set assigns v at (i, j) under the same legacy 1-indexed window as At
// (see the compatibility note there). Mutation is rejected once Decompose
// has run. Complexity: O(1).
func (s *Store) Set(i, j int, v float64) error {
	if s == nil {
		return storeErrorf("Set", ErrNilStore)
	}
	if s.state != stateReady {
		return storeErrorf("Set", ErrAlreadyDecomposed)
	}
	if !s.inLegacyWindow(i, j) {
		return fmt.Errorf("Store.Set(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}
	s.data[s.rows[i]*s.n+j] = v

	return nil
}

// Row returns the element slice of logical row r (0-indexed, full range).
// The slice aliases the Store's backing buffer: writes through it are the
// sanctioned per-row population path before Decompose, and callers must not
// write through it afterwards.
// Errors: ErrRowIndexOutOfBounds outside [0, n).
// Complexity: O(1) — no copying.
func (s *Store) Row(r int) ([]float64, error) {
	if s == nil {
		return nil, storeErrorf("Row", ErrNilStore)
	}
	if r < 0 || r >= s.n {
		return nil, fmt.Errorf("Store.Row(%d): %w", r, ErrRowIndexOutOfBounds)
	}

	return s.row(r), nil
}

// Fill populates the whole grid from row-major values; exactly n² values are
// required (ErrBadFill otherwise, with nothing written). The usual way to
// load a matrix before Decompose.
// Complexity: O(n²).
func (s *Store) Fill(vals ...float64) error {
	if s == nil {
		return storeErrorf("Fill", ErrNilStore)
	}
	if s.state != stateReady {
		return storeErrorf("Fill", ErrAlreadyDecomposed)
	}
	if len(vals) != s.n*s.n {
		return fmt.Errorf("Store.Fill: got %d values for n=%d: %w", len(vals), s.n, ErrBadFill)
	}

	// Write through the logical row order so Fill composes with SwapRows.
	for i := 0; i < s.n; i++ {
		copy(s.row(i), vals[i*s.n:(i+1)*s.n])
	}

	return nil
}

// SwapRows interchanges logical rows i and j in O(1) by exchanging row-index
// entries; element data never moves. It touches STORAGE ONLY — keeping the
// permutation vector in lock-step is the decomposition driver's job, which is
// why Decompose, not SwapRows, maintains perm and the swap counter.
// Errors: ErrRowIndexOutOfBounds when either index is outside [0, n).
// Complexity: O(1).
func (s *Store) SwapRows(i, j int) error {
	if s == nil {
		return storeErrorf("SwapRows", ErrNilStore)
	}
	if i < 0 || i >= s.n || j < 0 || j >= s.n {
		return fmt.Errorf("Store.SwapRows(%d,%d): %w", i, j, ErrRowIndexOutOfBounds)
	}
	s.rows[i], s.rows[j] = s.rows[j], s.rows[i]

	return nil
}
