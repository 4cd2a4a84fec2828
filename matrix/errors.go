// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All constructors and accessors MUST return these
// sentinels and tests MUST check them via errors.Is. No method panics
// on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to
// allow easy grepping across logs. DO NOT %w-wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers will
// still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (rows <= 0 or cols <= 0) or ingested data is empty.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrRaggedColumns indicates column-major ingestion where the
	// supplied columns do not all share one length.
	ErrRaggedColumns = errors.New("matrix: ragged columns")

	// ErrRaggedRows indicates row-major ingestion where the supplied
	// rows do not all share one length.
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrOutOfRange indicates that a row or column index is outside
	// valid bounds. Public indexers (At/Set/Col) MUST return this,
	// not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *ColumnSet receiver or
	// argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
