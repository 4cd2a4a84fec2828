// SPDX-License-Identifier: MIT
// Package qr: the Householder factorization kernel and its cloning
// facade. All validation funnels into sentinels; kernels return plain
// sentinels wrapped with an operation tag at the facade boundary.

package qr

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlqr/matrix"
	"github.com/katalvlaran/lvlqr/vector"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opFactorize   = "Factorize"
	opDecompose   = "Decompose"
	opApplyQ      = "ApplyQ"
	opApplyQT     = "ApplyQT"
	opReconstruct = "Reconstruct"
	opSolveLS     = "SolveLS"
)

// qrErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is/As still match. Call only with err != nil.
func qrErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Factorize performs the in-place Householder QR factorization of a.
// On success a's columns hold R (zero below the diagonal) and v holds
// the n unit reflection vectors, so that with Hᵢ = I − 2·vᵢ·vᵢᵀ
// (embedded in the trailing (m−i)-block):
//
//	R = H_{n−1}···H₁·H₀·A,   Q = H₀ᵀ·H₁ᵀ···H_{n−1}ᵀ
//
// Implementation:
//   - Stage 1: Validate a and v non-nil, n <= m, v sized for a.
//   - Stage 2: For i=0..n−1: copy the trailing window of column i into
//     vᵢ; cache the squared tail norm; add sign(vᵢ[0])·‖window‖ to the
//     head (the + branch when the head is zero); normalize vᵢ; reflect
//     every column j >= i across the hyperplane orthogonal to vᵢ.
//
// Behavior highlights:
//   - Mutates a and v in place; allocates nothing beyond scalars, so a
//     failed step leaves earlier columns already transformed (the
//     error reports which step died; the data is not rolled back).
//   - The cached tail norm survives the head update, so the full norm
//     after the update is √(vᵢ[0]² + tail) — one pass saved per step.
//   - Deterministic i→j visitation; bit-for-bit reproducible.
//
// Inputs:
//   - a: m×n column set, n <= m. Overwritten with R.
//   - v: reflector storage from NewReflectors(m, n). Overwritten.
//   - opts: WithTolerance to widen the degenerate-window guard.
//
// Returns:
//   - error: nil on success.
//
// Errors:
//   - ErrNilInput        (a or v nil).
//   - ErrShapeMismatch   (n > m, or v built for different dimensions).
//   - ErrDegenerateColumn (a trailing window with norm <= tol; the
//     affected step index is in the wrapped message).
//
// Determinism:
//   - Fixed left-to-right accumulation inside every primitive; fixed
//     step and column order.
//
// Complexity:
//   - Time ~2·m·n² − (2/3)·n³ flops, Space O(1) beyond caller storage.
//
// AI-Hints:
//   - Factorize consumes its input; Clone first (or use Decompose) if
//     the original matrix is still needed.
//   - errors.Is(err, ErrDegenerateColumn) is the rank-deficiency
//     signal; this package does not attempt recovery (no pivoting).
func Factorize(a *matrix.ColumnSet, v *Reflectors, opts ...Option) error {
	// Validate references and the shape contract.
	if a == nil || v == nil {
		return qrErrorf(opFactorize, ErrNilInput)
	}
	m, n := a.Rows(), a.Cols()
	if n > m {
		return qrErrorf(opFactorize, ErrShapeMismatch)
	}
	if v.m != m || v.n != n {
		return qrErrorf(opFactorize, ErrShapeMismatch)
	}
	o := gatherOptions(opts...)

	var (
		i, j           int       // step index and column index
		winNorm, vnorm float64   // trailing-window norm, reflector norm pre-normalization
		vpartdot, vTa  float64   // cached squared tail norm, ⟨vᵢ, window⟩
		col, vi, win   []float64 // current column, reflector i, trailing window
		err            error
	)
	for i = 0; i < n; i++ {
		// 2.1: vᵢ ← a[i][i:m], the trailing window of column i.
		if col, err = a.Col(i); err != nil {
			return qrErrorf(opFactorize, err)
		}
		vi = v.vecs[i]
		if err = vector.Copy(vi, col[i:]); err != nil {
			return qrErrorf(opFactorize, err)
		}

		// 2.2: cache ‖vᵢ‖² − vᵢ[0]². Unaffected by the head update in
		// 2.3, so the full norm never needs a second pass.
		if vpartdot, err = vector.TailDot(vi, vi); err != nil {
			return qrErrorf(opFactorize, err)
		}

		// 2.3: vᵢ[0] += sign(vᵢ[0])·‖window‖. Adding (never subtracting)
		// keeps the head and the norm from cancelling; a zero head takes
		// the + branch.
		winNorm = math.Sqrt(vi[0]*vi[0] + vpartdot)
		if winNorm <= o.tol {
			return qrErrorf(opFactorize, fmt.Errorf("step %d: %w", i, ErrDegenerateColumn))
		}
		if vi[0] < 0 {
			vi[0] -= winNorm
		} else {
			vi[0] += winNorm
		}

		// 2.4: normalize vᵢ. winNorm > tol >= 0 guarantees vnorm > 0.
		vnorm = math.Sqrt(vi[0]*vi[0] + vpartdot)
		if err = vector.ScaleInv(vi, vnorm); err != nil {
			return qrErrorf(opFactorize, err)
		}

		// 2.5: reflect columns j = i..n−1: a[j][i:m] −= 2⟨vᵢ,a[j][i:m]⟩·vᵢ.
		// j == i realizes the elimination; j > i propagates it.
		for j = i; j < n; j++ {
			if col, err = a.Col(j); err != nil {
				return qrErrorf(opFactorize, err)
			}
			win = col[i:]
			if vTa, err = vector.Dot(vi, win); err != nil {
				return qrErrorf(opFactorize, err)
			}
			if err = vector.SubScaled(win, 2*vTa, vi); err != nil {
				return qrErrorf(opFactorize, err)
			}
		}
	}

	return nil
}

// Decompose is the non-destructive facade over Factorize: it clones a,
// allocates matching reflector storage, factorizes the clone and
// returns both as a Decomposition. a itself is never touched.
//
// Inputs:
//   - a: m×n column set, n <= m.
//   - opts: forwarded to Factorize.
//
// Returns:
//   - *Decomposition: R plus reflectors, both owned by the result.
//   - error: validation or factorization failure wrapped with opDecompose.
//
// Errors:
//   - ErrNilInput, ErrShapeMismatch, ErrDegenerateColumn.
//
// Complexity:
//   - Time O(m·n²), Space O(m·n) for the clone and reflectors.
func Decompose(a *matrix.ColumnSet, opts ...Option) (*Decomposition, error) {
	if a == nil {
		return nil, qrErrorf(opDecompose, ErrNilInput)
	}

	v, err := NewReflectors(a.Rows(), a.Cols())
	if err != nil {
		return nil, qrErrorf(opDecompose, err)
	}

	r := a.Clone()
	if err = Factorize(r, v, opts...); err != nil {
		return nil, qrErrorf(opDecompose, err)
	}

	return &Decomposition{R: r, V: v}, nil
}
