// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// This file defines ONLY package-level sentinel errors. All primitives
// MUST return these sentinels and tests MUST check them via errors.Is.
// No primitive panics on user-triggered conditions.

package vector

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "vector: ..." for consistency and to
// allow easy grepping across logs. Do not %w-wrap these sentinels when
// returning directly; wrap at outer boundaries only, so errors.Is
// still matches.

var (
	// ErrLengthMismatch indicates two operands of unequal length where
	// equal lengths are required (Copy, Dot, TailDot, SubScaled).
	ErrLengthMismatch = errors.New("vector: operand lengths differ")

	// ErrEmptyVector indicates an empty operand passed to a primitive
	// that requires at least one element (TailDot needs a head to skip).
	ErrEmptyVector = errors.New("vector: empty vector")

	// ErrZeroDivisor indicates that ScaleInv was asked to divide by
	// exactly zero. The caller decides whether this is a degenerate
	// reflection (see qr.ErrDegenerateColumn) or a plain input bug.
	ErrZeroDivisor = errors.New("vector: division by zero")
)
