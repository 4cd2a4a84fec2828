// Package qr computes the QR factorization of a dense, real, m×n
// matrix (n ≤ m) via Householder reflections, producing the
// upper-triangular factor R in place and the unit reflection vectors
// that implicitly represent the orthogonal factor Q.
//
// 🚀 What is Householder QR?
//
//	Each step i builds a unit vector vᵢ from the trailing window of
//	column i and reflects every remaining column across the
//	hyperplane orthogonal to vᵢ:
//
//	    Hᵢ = I − 2·vᵢ·vᵢᵀ   (embedded in the trailing (m−i)-block)
//	    R  = H_{n−1}···H₁·H₀·A,   Q = H₀ᵀ·H₁ᵀ···H_{n−1}ᵀ
//
//	After n steps the columns of A hold R (zero below the diagonal)
//	and the reflectors reproduce Q on demand — Q itself is never
//	formed.
//
// ✨ Key features:
//   - sign-aware reflector construction: the head update adds
//     sign(v₀)·‖v‖, so no catastrophic cancellation when the head
//     dominates the tail
//   - squared-tail-norm reuse: the tail contribution to ‖v‖² is
//     computed once and survives the head update, saving a full
//     renormalization pass (~2·m·n² − (2/3)·n³ flops total)
//   - O(1) extra memory in the in-place path: Factorize allocates
//     nothing beyond a few scalars
//   - degenerate columns fail fast with ErrDegenerateColumn instead
//     of silently emitting NaNs
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/lvlqr/matrix"
//	  "github.com/katalvlaran/lvlqr/qr"
//	)
//
//	a, _ := matrix.FromRows([][]float64{{1, 0}, {2, 1}, {3, 2}})
//	d, err := qr.Decompose(a) // a is untouched; d.R and d.V are owned
//	if err != nil {
//	  // errors.Is(err, qr.ErrDegenerateColumn) ⇒ rank-deficient input
//	}
//	x, _ := qr.SolveLS(d, []float64{1, 1, 1}) // least squares via Qᵀb + back-substitution
//
// Callers who own the storage and want the in-place contract
// use Factorize directly: the ColumnSet's columns become R and the
// Reflectors fill with unit vᵢ.
//
// Performance:
//
//   - Time:   O(m·n²)
//   - Memory: O(1) beyond caller storage (Factorize),
//     O(m·n) for the cloning facade (Decompose)
//
// Non-goals: explicit Q assembly, column pivoting, rank-deficiency
// recovery, complex or mixed precision, and blocked/parallel
// execution. The step-i → step-i+1 dependency makes the outer loop
// inherently serial; only the per-step column updates could be fanned
// out, and this package deliberately keeps them sequential.
package qr
