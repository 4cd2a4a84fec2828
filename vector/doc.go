// Package vector provides the elementary vector arithmetic the qr
// factorizer is built on: copy, dot products, in-place scalar
// division and in-place scaled subtraction over []float64.
//
// 🚀 What is vector?
//
//	A tiny, allocation-free primitive layer:
//	  • Copy      — dst ← src (equal lengths)
//	  • Dot       — ⟨x, y⟩ with deterministic left-to-right accumulation
//	  • TailDot   — ⟨x, y⟩ excluding the index-0 term
//	  • ScaleInv  — v ← v / s, in place
//	  • SubScaled — dst ← dst − s·v, in place
//	  • Norm      — ‖v‖₂
//
// ✨ Design rules:
//
//   - Windows are plain sub-slices. Callers pass col[i:] for the
//     trailing window of a column; there are no offset or length
//     parameters anywhere in this package.
//   - Strict fail-fast validation: every primitive checks operand
//     lengths and returns a package sentinel (ErrLengthMismatch,
//     ErrEmptyVector, ErrZeroDivisor) matched via errors.Is.
//   - No allocation, no global state, no data-dependent branching
//     beyond the guards — results are bit-for-bit reproducible.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlqr/vector"
//
//	v := []float64{3, 4}
//	n := vector.Norm(v)              // 5
//	_ = vector.ScaleInv(v, n)        // v is now unit length
//	d, _ := vector.Dot(v, v)         // 1 (up to rounding)
//
// Complexity: every operation is a single O(len) pass with O(1)
// extra memory.
package vector
