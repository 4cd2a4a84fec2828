// SPDX-License-Identifier: MIT
// Package qr: reflector application — Qᵀx, Qx, full reconstruction and
// least-squares solving. Q is never assembled; every product is a
// sequence of rank-one reflections over trailing windows.

package qr

import (
	"fmt"

	"github.com/katalvlaran/lvlqr/matrix"
	"github.com/katalvlaran/lvlqr/vector"
)

// ZeroSum is the initial sum value for back-substitution accumulation.
const ZeroSum = 0.0

// reflect applies Hᵢ = I − 2·vᵢ·vᵢᵀ to the trailing window x[i:].
// Reflectors are self-inverse, so the same primitive serves both Qᵀ
// (forward order) and Q (reverse order) products.
func reflect(vi, win []float64) error {
	vTa, err := vector.Dot(vi, win)
	if err != nil {
		return err
	}

	return vector.SubScaled(win, 2*vTa, vi)
}

// ApplyQT overwrites x with Qᵀx by applying H₀, H₁, …, H_{n−1} in
// forward order (Qᵀ = H_{n−1}···H₀, and the reflections compose onto
// x left to right). This is the projection step of least squares.
//
// Errors: ErrNilInput; ErrShapeMismatch when len(x) != m.
// Complexity: O(m·n) time, O(1) space.
func ApplyQT(d *Decomposition, x []float64) error {
	if d == nil {
		return qrErrorf(opApplyQT, ErrNilInput)
	}
	if len(x) != d.Rows() {
		return qrErrorf(opApplyQT, ErrShapeMismatch)
	}

	for i := 0; i < d.Cols(); i++ {
		if err := reflect(d.V.vecs[i], x[i:]); err != nil {
			return qrErrorf(opApplyQT, err)
		}
	}

	return nil
}

// ApplyQ overwrites x with Qx by applying H_{n−1}, …, H₁, H₀ in
// reverse order (Q = H₀ᵀ···H_{n−1}ᵀ and each Hᵢ is self-adjoint).
// ApplyQ(d, ApplyQT(d, x)) is the identity up to rounding.
//
// Errors: ErrNilInput; ErrShapeMismatch when len(x) != m.
// Complexity: O(m·n) time, O(1) space.
func ApplyQ(d *Decomposition, x []float64) error {
	if d == nil {
		return qrErrorf(opApplyQ, ErrNilInput)
	}
	if len(x) != d.Rows() {
		return qrErrorf(opApplyQ, ErrShapeMismatch)
	}

	for i := d.Cols() - 1; i >= 0; i-- {
		if err := reflect(d.V.vecs[i], x[i:]); err != nil {
			return qrErrorf(opApplyQ, err)
		}
	}

	return nil
}

// Reconstruct returns Q·R as a fresh ColumnSet — the original matrix
// up to rounding. Intended for verification and for consumers who
// want the factorization residual without assembling Q.
//
// Implementation:
//   - Stage 1: clone R.
//   - Stage 2: run ApplyQ over every column of the clone.
//
// Errors: ErrNilInput (nil d).
// Complexity: O(m·n²) time, O(m·n) space for the result.
func Reconstruct(d *Decomposition) (*matrix.ColumnSet, error) {
	if d == nil {
		return nil, qrErrorf(opReconstruct, ErrNilInput)
	}

	out := d.R.Clone()
	for j := 0; j < out.Cols(); j++ {
		col, err := out.Col(j)
		if err != nil {
			return nil, qrErrorf(opReconstruct, err)
		}
		for i := d.Cols() - 1; i >= 0; i-- {
			if err = reflect(d.V.vecs[i], col[i:]); err != nil {
				return nil, qrErrorf(opReconstruct, err)
			}
		}
	}

	return out, nil
}

// SolveLS returns the least-squares solution x of A·x ≈ b using the
// decomposition: x minimizes ‖A·x − b‖₂ over ℝⁿ.
//
// Implementation:
//   - Stage 1: y ← Qᵀb (copy of b; the argument is untouched).
//   - Stage 2: back-substitute R[0:n,0:n]·x = y[0:n].
//
// Behavior highlights:
//   - When m == n the result is the exact solution of A·x = b (up to
//     rounding); for m > n the trailing components of y carry the
//     residual and are discarded.
//
// Inputs:
//   - d: a successful Decomposition.
//   - b: right-hand side of length m.
//
// Returns:
//   - []float64: solution of length n.
//   - error: wrapped sentinel on failure.
//
// Errors:
//   - ErrNilInput, ErrShapeMismatch.
//   - ErrSingularR on a zero diagonal entry of R (the wrapped message
//     names the row). A successful Factorize makes this unreachable
//     for full-rank input; it guards Decompositions built by hand.
//
// Complexity:
//   - Time O(m·n + n²), Space O(m) for the working copy.
func SolveLS(d *Decomposition, b []float64) ([]float64, error) {
	if d == nil {
		return nil, qrErrorf(opSolveLS, ErrNilInput)
	}
	m, n := d.Rows(), d.Cols()
	if len(b) != m {
		return nil, qrErrorf(opSolveLS, ErrShapeMismatch)
	}

	// Qᵀb on a private copy.
	y := append([]float64(nil), b...)
	if err := ApplyQT(d, y); err != nil {
		return nil, qrErrorf(opSolveLS, err)
	}

	// Back-substitution on the leading n×n block of R.
	var (
		i, j      int
		sum, rij  float64
		rDiagonal float64
		err       error
	)
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		for j = i + 1; j < n; j++ {
			if rij, err = d.R.At(i, j); err != nil {
				return nil, qrErrorf(opSolveLS, err)
			}
			sum += rij * x[j]
		}
		if rDiagonal, err = d.R.At(i, i); err != nil {
			return nil, qrErrorf(opSolveLS, err)
		}
		if rDiagonal == 0 {
			return nil, qrErrorf(opSolveLS, fmt.Errorf("row %d: %w", i, ErrSingularR))
		}
		x[i] = (y[i] - sum) / rDiagonal
	}

	return x, nil
}
