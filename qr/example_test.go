package qr_test

import (
	"fmt"

	"github.com/katalvlaran/lvlqr/matrix"
	"github.com/katalvlaran/lvlqr/qr"
	"github.com/katalvlaran/lvlqr/vector"
)

// ExampleDecompose factors the 3×2 matrix with columns (1,2,3) and
// (0,1,2). The leading diagonal entry of R is −‖col₀‖ = −√14 under
// the sign-aware head update, and every reflector comes out unit.
func ExampleDecompose() {
	a, _ := matrix.FromColumns([][]float64{{1, 2, 3}, {0, 1, 2}})

	d, err := qr.Decompose(a)
	if err != nil {
		fmt.Println("decompose:", err)
		return
	}

	r00, _ := d.R.At(0, 0)
	fmt.Printf("R[0][0] = %.4f\n", r00)

	v0, _ := d.V.Vec(0)
	v1, _ := d.V.Vec(1)
	fmt.Printf("len(v0)=%d ‖v0‖=%.4f\n", len(v0), vector.Norm(v0))
	fmt.Printf("len(v1)=%d ‖v1‖=%.4f\n", len(v1), vector.Norm(v1))

	back, _ := qr.Reconstruct(d)
	fmt.Println("Q·R reproduces A:", a.Equal(back, 1e-9))

	// Output:
	// R[0][0] = -3.7417
	// len(v0)=3 ‖v0‖=1.0000
	// len(v1)=2 ‖v1‖=1.0000
	// Q·R reproduces A: true
}

// ExampleSolveLS solves a small exact system through the
// factorization: Qᵀb followed by back-substitution on R.
func ExampleSolveLS() {
	a, _ := matrix.FromRows([][]float64{
		{2, 1},
		{1, 3},
	})
	d, _ := qr.Decompose(a)

	x, _ := qr.SolveLS(d, []float64{5, 5})
	fmt.Printf("x = (%.1f, %.1f)\n", x[0], x[1])

	// Output:
	// x = (2.0, 1.0)
}
