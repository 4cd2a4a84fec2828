// SPDX-License-Identifier: MIT
// Package qr: sentinel error set.
// This file defines ONLY package-level sentinel errors. All routines
// MUST return these sentinels (wrapped with an operation tag at the
// facade) and tests MUST check them via errors.Is. No routine panics
// on user-triggered error conditions; panics are reserved for
// programmer errors in option constructors.

package qr

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "qr: ..." for consistency and to
// allow easy grepping across logs.

var (
	// ErrNilInput indicates a nil *matrix.ColumnSet, *Reflectors or
	// *Decomposition argument.
	ErrNilInput = errors.New("qr: nil input")

	// ErrShapeMismatch indicates incompatible dimensions: n > m on the
	// matrix, reflector storage sized for a different matrix, or a
	// vector whose length differs from the row count.
	ErrShapeMismatch = errors.New("qr: shape mismatch")

	// ErrDegenerateColumn indicates that a column's trailing window was
	// (numerically) zero at the step that processes it, so no reflector
	// exists. The factorization aborts rather than divide by zero; the
	// input is rank-deficient or otherwise degenerate.
	ErrDegenerateColumn = errors.New("qr: degenerate column")

	// ErrSingularR indicates a zero diagonal entry of R encountered
	// during back-substitution in SolveLS.
	ErrSingularR = errors.New("qr: singular triangular factor")
)
