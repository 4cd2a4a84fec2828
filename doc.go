// Package lvlqr is your in-memory toolkit for orthogonal factorization
// of dense real matrices — a Householder QR core plus the vector and
// matrix plumbing it stands on.
//
// 🚀 What is lvlqr?
//
//	A compact, deterministic library that brings together:
//		• vector/ — elementary vector arithmetic: copy, dot products,
//		  in-place scaling and scaled subtraction
//		• matrix/ — ColumnSet, an owned, shape-checked column-major
//		  dense container (no raw pointer juggling)
//		• qr/     — the Householder factorizer: R in place, unit
//		  reflectors out, plus Qᵀx / Qx application, reconstruction
//		  and least-squares solving
//
// ✨ Why choose lvlqr?
//
//   - Numerically careful – sign-aware reflector construction avoids
//     catastrophic cancellation; degenerate columns fail fast
//   - Rock-solid guarantees – shape invariants enforced at
//     construction, sentinel errors matched via errors.Is
//   - Lean – O(1) extra memory beyond caller storage in the in-place
//     path, ~2·m·n² − (2/3)·n³ flops
//   - Pure Go core – gonum appears only as a test oracle and in the
//     console driver's pretty-printer
//
// Quick sketch for A (m×n, n ≤ m):
//
//	A = Q·R,  Q = H₀ᵀ·H₁ᵀ···H_{n−1}ᵀ,  Hᵢ = I − 2·vᵢ·vᵢᵀ
//
// where each vᵢ is a unit reflection vector of length m−i and R is
// upper triangular, overwriting A's columns.
//
// Dive into qr/doc.go for the factorization walkthrough and
// cmd/lvlqr for the interactive demo driver.
//
//	go get github.com/katalvlaran/lvlqr/qr
package lvlqr
