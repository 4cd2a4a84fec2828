// SPDX-License-Identifier: MIT
// Package matrix: ColumnSet storage and accessors.
//
// Purpose:
//   - Replace raw pointer-to-columns conventions with an owned
//     container whose length invariants hold by construction.
//   - Give the qr kernel a validated fast path (Col) without exposing
//     internal bookkeeping.

package matrix

import (
	"fmt"
	"math"
)

// columnsErrorf wraps an underlying error with ColumnSet method context.
func columnsErrorf(method string, err error) error {
	return fmt.Errorf("ColumnSet.%s: %w", method, err)
}

// ColumnSet is a dense m×n real matrix stored as n independent
// columns of length m. The invariant "len(cols) == n, every column
// exactly rows long" is established by the constructors and never
// broken afterwards: no method reslices or replaces a column.
type ColumnSet struct {
	rows int         // number of rows, > 0
	cols [][]float64 // n column buffers, each of length rows
}

// New creates a zero-filled rows×cols ColumnSet.
// Stage 1 (Validate): rows and cols must be positive.
// Stage 2 (Prepare): allocate one backing slice per column.
// Complexity: O(rows·cols) time and memory.
func New(rows, cols int) (*ColumnSet, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	data := make([][]float64, cols)
	for j := range data {
		data[j] = make([]float64, rows)
	}

	return &ColumnSet{rows: rows, cols: data}, nil
}

// FromColumns builds a ColumnSet from column-major data, deep-copying
// every column.
// Stage 1 (Validate): non-empty, no empty column, uniform lengths.
// Stage 2 (Copy): clone each column into owned storage.
// Errors: ErrBadShape, ErrRaggedColumns.
// Complexity: O(rows·cols).
func FromColumns(cols [][]float64) (*ColumnSet, error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, ErrBadShape
	}

	rows := len(cols[0])
	data := make([][]float64, len(cols))
	for j, c := range cols {
		if len(c) != rows {
			return nil, ErrRaggedColumns
		}
		data[j] = append([]float64(nil), c...)
	}

	return &ColumnSet{rows: rows, cols: data}, nil
}

// FromRows builds a ColumnSet from row-major data (the layout humans
// usually write literals in), transposing into column storage.
// Errors: ErrBadShape, ErrRaggedRows.
// Complexity: O(rows·cols).
func FromRows(rows [][]float64) (*ColumnSet, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}

	nCols := len(rows[0])
	data := make([][]float64, nCols)
	for j := range data {
		data[j] = make([]float64, len(rows))
	}
	for i, r := range rows {
		if len(r) != nCols {
			return nil, ErrRaggedRows
		}
		for j, v := range r {
			data[j][i] = v
		}
	}

	return &ColumnSet{rows: len(rows), cols: data}, nil
}

// Rows returns the number of rows; 0 on a nil receiver. Complexity: O(1).
func (m *ColumnSet) Rows() int {
	if m == nil {
		return 0
	}

	return m.rows
}

// Cols returns the number of columns; 0 on a nil receiver. Complexity: O(1).
func (m *ColumnSet) Cols() int {
	if m == nil {
		return 0
	}

	return len(m.cols)
}

// At retrieves the element at (row, col).
// Errors: ErrNilMatrix on a nil receiver; ErrOutOfRange wrapped with
// method context.
// Complexity: O(1).
func (m *ColumnSet) At(row, col int) (float64, error) {
	if m == nil {
		return 0, columnsErrorf(fmt.Sprintf("At(%d,%d)", row, col), ErrNilMatrix)
	}
	if row < 0 || row >= m.rows || col < 0 || col >= len(m.cols) {
		return 0, columnsErrorf(fmt.Sprintf("At(%d,%d)", row, col), ErrOutOfRange)
	}

	return m.cols[col][row], nil
}

// Set assigns v at (row, col).
// Errors: ErrNilMatrix on a nil receiver; ErrOutOfRange wrapped with
// method context.
// Complexity: O(1).
func (m *ColumnSet) Set(row, col int, v float64) error {
	if m == nil {
		return columnsErrorf(fmt.Sprintf("Set(%d,%d)", row, col), ErrNilMatrix)
	}
	if row < 0 || row >= m.rows || col < 0 || col >= len(m.cols) {
		return columnsErrorf(fmt.Sprintf("Set(%d,%d)", row, col), ErrOutOfRange)
	}
	m.cols[col][row] = v

	return nil
}

// Col returns the live backing slice of column j. Mutations through
// the returned slice are visible in the ColumnSet — this is the
// factorization kernel's in-place fast path. Callers who need an
// isolated copy should Clone first.
// Errors: ErrNilMatrix on a nil receiver; ErrOutOfRange wrapped with
// method context.
// Complexity: O(1).
func (m *ColumnSet) Col(j int) ([]float64, error) {
	if m == nil {
		return nil, columnsErrorf(fmt.Sprintf("Col(%d)", j), ErrNilMatrix)
	}
	if j < 0 || j >= len(m.cols) {
		return nil, columnsErrorf(fmt.Sprintf("Col(%d)", j), ErrOutOfRange)
	}

	return m.cols[j], nil
}

// Clone returns a deep copy sharing no storage with the receiver; a
// nil receiver clones to nil.
// Complexity: O(rows·cols).
func (m *ColumnSet) Clone() *ColumnSet {
	if m == nil {
		return nil
	}

	data := make([][]float64, len(m.cols))
	for j, c := range m.cols {
		data[j] = append([]float64(nil), c...)
	}

	return &ColumnSet{rows: m.rows, cols: data}
}

// Equal reports whether m and other have the same shape and agree
// element-wise within eps (absolute). NaN never equals anything; a
// nil operand equals nothing.
// Complexity: O(rows·cols).
func (m *ColumnSet) Equal(other *ColumnSet, eps float64) bool {
	if m == nil || other == nil || m.rows != other.rows || len(m.cols) != len(other.cols) {
		return false
	}

	for j := range m.cols {
		for i := range m.cols[j] {
			if !(math.Abs(m.cols[j][i]-other.cols[j][i]) <= eps) {
				return false
			}
		}
	}

	return true
}
