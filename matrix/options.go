// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the per-matrix numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - The policy is captured by a Dense at construction and inherited by every
//     matrix derived from it (Add, Mul, Transpose, Inverse, ...), the way
//     Clone preserves it.
//   - Options apply on creation only; an existing matrix never changes policy.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSingularEpsilon is the tolerance Inverse uses to declare a
	// determinant zero. 0 means exact equality, which is sound for integer-valued
	// matrices whose products stay below 2^53.
	DefaultSingularEpsilon = 0.0

	// DefaultValidateNaNInf toggles strict finite-value validation of
	// constructor input, scalar operands and computed results.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSingularEpsilonInvalid = "matrix: WithSingularEpsilon: eps must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public constructors accept ...Option.
type Options struct {
	eps            float64 // >= 0; DefaultSingularEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithSingularEpsilon sets the tolerance used by Inverse: |det| <= eps is singular.
// Panics when eps is negative, NaN or ±Inf (programmer error).
//
// AI-Hints:
//   - Keep the default (exact) for integer-valued inputs.
//   - For measured/float data, something like 1e-12 relative to the entry scale is a
//     reasonable start; the determinant of an n×n matrix scales as entry^n.
func WithSingularEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicSingularEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// NaN cells make Equal false even against themselves.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// defaultOptions returns the package defaults.
func defaultOptions() Options {
	return Options{
		eps:            DefaultSingularEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions folds opts over the defaults in order; later setters win.
// Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
