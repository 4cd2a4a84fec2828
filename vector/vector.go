// SPDX-License-Identifier: MIT
// Package vector: allocation-free primitives over []float64.
//
// Purpose:
//   - Supply the exact operation set the Householder kernel consumes,
//     with slice windows instead of offset arithmetic.
//   - Keep accumulation order fixed (left to right) for determinism.
//
// Notes:
//   - Validation is inline; the guards are O(1) and every primitive is
//     a single pass, so there is nothing to centralize here.

package vector

import "math"

// SumZero is the initial value for every accumulation in this package.
const SumZero = 0.0

// Copy copies src into dst. Both slices must have equal length; the
// operands may not alias in a way that matters because the copy is
// element-by-element forward (Go's copy semantics).
//
// Returns ErrLengthMismatch when len(dst) != len(src).
// Complexity: O(n) time, O(1) space.
func Copy(dst, src []float64) error {
	if len(dst) != len(src) {
		return ErrLengthMismatch
	}
	copy(dst, src)

	return nil
}

// Dot returns the inner product ⟨x, y⟩ accumulated left to right.
// Empty operands are legal and yield 0.
//
// Returns ErrLengthMismatch when len(x) != len(y).
// Complexity: O(n) time, O(1) space.
func Dot(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return SumZero, ErrLengthMismatch
	}

	sum := SumZero
	for i := range x {
		sum += x[i] * y[i]
	}

	return sum, nil
}

// TailDot returns the inner product of x and y with the index-0 term
// excluded: Σ x[i]·y[i] for i ≥ 1. The factorizer uses TailDot(v, v)
// to cache the squared tail norm before mutating v[0], avoiding a
// second full norm pass.
//
// Returns ErrLengthMismatch when len(x) != len(y) and ErrEmptyVector
// when the operands have no head element to skip.
// Complexity: O(n) time, O(1) space.
func TailDot(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return SumZero, ErrLengthMismatch
	}
	if len(x) == 0 {
		return SumZero, ErrEmptyVector
	}

	sum := SumZero
	for i := 1; i < len(x); i++ {
		sum += x[i] * y[i]
	}

	return sum, nil
}

// ScaleInv divides every element of v by s, in place (the
// normalization step: v ← v/‖v‖).
//
// Returns ErrZeroDivisor when s == 0; v is untouched in that case.
// Complexity: O(n) time, O(1) space.
func ScaleInv(v []float64, s float64) error {
	if s == 0 {
		return ErrZeroDivisor
	}

	for i := range v {
		v[i] /= s
	}

	return nil
}

// SubScaled updates dst in place as dst ← dst − s·v (the reflection
// update a ← a − 2⟨v,a⟩·v with s precomputed by the caller).
//
// Returns ErrLengthMismatch when len(dst) != len(v).
// Complexity: O(n) time, O(1) space.
func SubScaled(dst []float64, s float64, v []float64) error {
	if len(dst) != len(v) {
		return ErrLengthMismatch
	}

	for i := range dst {
		dst[i] -= s * v[i]
	}

	return nil
}

// Norm returns the Euclidean norm ‖v‖₂. An empty slice has norm 0.
// Complexity: O(n) time, O(1) space.
func Norm(v []float64) float64 {
	sum := SumZero
	for i := range v {
		sum += v[i] * v[i]
	}

	return math.Sqrt(sum)
}
