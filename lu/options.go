// SPDX-License-Identifier: MIT

// Package lu: functional configuration for Store construction.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: options fields are unexported; public APIs consume ...Option.

package lu

import "math"

// DefaultTolerance is the minimum acceptable remaining-columns magnitude for
// a pivot-source row. A negative tolerance passed to WithTolerance is a
// sentinel selecting this default.
const DefaultTolerance = 1.0 / 1024

// negativeToleranceSentinel marks "use the default" inside options.
const negativeToleranceSentinel = -1.0

// panicToleranceInvalid is the programmer-error message for a NaN/Inf
// tolerance (kept as a constant: no magic strings).
const panicToleranceInvalid = "lu: WithTolerance: tolerance must not be NaN or Inf"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*options)

// options carries the construction-time configuration of a Store.
type options struct {
	tolerance float64 // singularity threshold; negative = take DefaultTolerance
}

// defaultOptions returns the documented zero-configuration behavior.
func defaultOptions() options {
	return options{tolerance: DefaultTolerance}
}

// WithTolerance sets the singularity threshold used by pivot selection.
// A negative value is the documented sentinel for DefaultTolerance (1/1024).
// NaN and ±Inf are nonsensical and panic (programmer error, not user input).
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *options) {
		if tol < 0 {
			o.tolerance = negativeToleranceSentinel

			return
		}
		o.tolerance = tol
	}
}

// gatherOptions applies opts over the defaults and normalizes sentinels,
// so the rest of the package never re-checks invariants.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	// Resolve the negative sentinel to the documented default.
	if o.tolerance < 0 {
		o.tolerance = DefaultTolerance
	}

	return o
}
