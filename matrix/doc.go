// Package matrix offers ColumnSet, an owned, shape-checked
// column-major container for dense real matrices.
//
// The matrix package provides:
//
//   - ColumnSet with O(1) column access and construction-time shape
//     invariants (every column exactly rows long, rows·cols > 0).
//   - Validated ingestion from column-major (FromColumns) and
//     row-major (FromRows) data, always deep-copied.
//   - At/Set element access with bounds checking, Col for the live
//     column view the factorization kernel iterates over, Clone and
//     Equal helpers.
//
// Column-major storage is deliberate: Householder QR eliminates one
// column at a time and touches trailing windows col[i:] of every
// later column, so a column is the unit of locality here.
//
// See the examples in this package and qr for usage patterns.
package matrix
