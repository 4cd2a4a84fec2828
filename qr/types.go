// SPDX-License-Identifier: MIT
// Package qr: reflector storage and decomposition result types.

package qr

import (
	"fmt"

	"github.com/katalvlaran/lvlqr/matrix"
)

// Reflectors owns the n Householder reflection vectors of an m×n
// factorization: Vec(i) has length m−i and, once Factorize succeeds,
// unit Euclidean norm. Each vector is written exactly once (at step i)
// and never mutated afterwards.
//
// The staircase of lengths m, m−1, …, m−n+1 is established at
// construction and is the shape contract Factorize validates against.
type Reflectors struct {
	m, n int
	vecs [][]float64 // vecs[i] has length m-i
}

// NewReflectors allocates reflector storage for an m×n factorization.
// Stage 1 (Validate): require 0 < n <= m.
// Stage 2 (Prepare): allocate the length staircase m, m−1, …, m−n+1.
// Errors: ErrShapeMismatch.
// Complexity: O(m·n) memory.
func NewReflectors(m, n int) (*Reflectors, error) {
	if n <= 0 || n > m {
		return nil, ErrShapeMismatch
	}

	vecs := make([][]float64, n)
	for i := range vecs {
		vecs[i] = make([]float64, m-i)
	}

	return &Reflectors{m: m, n: n, vecs: vecs}, nil
}

// Rows returns m, the row count of the factored matrix. Complexity: O(1).
func (r *Reflectors) Rows() int { return r.m }

// Len returns n, the number of reflectors. Complexity: O(1).
func (r *Reflectors) Len() int { return r.n }

// Vec returns the live backing slice of reflector i (length m−i).
// Treat it as read-only after Factorize; mutating it invalidates
// every Apply/Reconstruct/SolveLS result derived from it.
// Errors: ErrOutOfRange semantics via ErrShapeMismatch wrapping.
// Complexity: O(1).
func (r *Reflectors) Vec(i int) ([]float64, error) {
	if i < 0 || i >= r.n {
		return nil, fmt.Errorf("Reflectors.Vec(%d): %w", i, ErrShapeMismatch)
	}

	return r.vecs[i], nil
}

// Decomposition bundles the two outputs of a factorization: R (upper
// triangular, m×n, stored column-major) and the reflectors that
// implicitly represent Q. Produced by Decompose; consumers needing
// the in-place contract hold their own ColumnSet/Reflectors pair and
// call Factorize instead.
type Decomposition struct {
	R *matrix.ColumnSet // upper-triangular factor, m×n
	V *Reflectors       // unit reflection vectors, lengths m..m−n+1
}

// Rows returns m. Complexity: O(1).
func (d *Decomposition) Rows() int { return d.V.m }

// Cols returns n. Complexity: O(1).
func (d *Decomposition) Cols() int { return d.V.n }
