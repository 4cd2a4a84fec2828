// SPDX-License-Identifier: MIT

// Package qr: functional configuration for the factorizer.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package qr

import "math"

// DefaultTolerance is the threshold at or below which a trailing
// window's norm counts as degenerate. Zero means only an exactly zero
// window is degenerate, matching plain floating-point arithmetic;
// raise it to treat numerically negligible columns as rank drops.
const DefaultTolerance = 0.0

// panicToleranceInvalid is the message for a nonsensical WithTolerance
// argument (programmer error, not a runtime condition).
const panicToleranceInvalid = "qr: WithTolerance: eps must be finite, non-negative"

// Options holds gathered configuration. Fields are unexported; public
// APIs consume ...Option.
type Options struct {
	tol float64 // degenerate-window threshold, >= 0, finite
}

// Option returns an updated copy of the options. Safe to apply
// repeatedly (idempotent). Value-in, value-out keeps the gathered
// struct off the heap, preserving the kernel's zero-allocation path.
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(Options) Options

// WithTolerance sets the degenerate-window threshold: a step whose
// trailing window has norm <= eps aborts with ErrDegenerateColumn.
// Panics if eps is negative, NaN or infinite.
func WithTolerance(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o Options) Options {
		o.tol = eps

		return o
	}
}

// gatherOptions applies defaults, then the caller's overrides. The
// Options value never has its address taken, so it stays on the
// caller's stack.
func gatherOptions(opts ...Option) Options {
	o := Options{tol: DefaultTolerance}
	for _, opt := range opts {
		o = opt(o)
	}

	return o
}
