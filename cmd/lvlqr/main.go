// SPDX-License-Identifier: MIT

// Command lvlqr is the interactive demo driver for the Householder QR
// factorizer: it prompts for the dimensions m and n, fills a demo
// matrix whose column j holds 1, 2, 3, … below the diagonal band,
// factorizes it in place, and prints A, R, the reflection vectors and
// numerical evidence that every reflector is unit length.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvlqr/matrix"
	"github.com/katalvlaran/lvlqr/qr"
	"github.com/katalvlaran/lvlqr/vector"
	"gonum.org/v1/gonum/mat"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "lvlqr:", err)
		os.Exit(1)
	}
}

func run() error {
	var m, n int
	fmt.Print("Enter the dimension m (where A is a m by n matrix): ")
	if _, err := fmt.Scan(&m); err != nil {
		return fmt.Errorf("reading m: %w", err)
	}
	fmt.Print("Enter the dimension n (where A is a m by n matrix): ")
	if _, err := fmt.Scan(&n); err != nil {
		return fmt.Errorf("reading n: %w", err)
	}

	if m < n {
		fmt.Println("For a successful factorization, this implementation requires n <= m.")
		fmt.Println("Terminating program.")
		return nil
	}

	a, err := demoMatrix(m, n)
	if err != nil {
		return err
	}

	fmt.Println("A =")
	printColumnSet(a)

	v, err := qr.NewReflectors(m, n)
	if err != nil {
		return err
	}
	if err = qr.Factorize(a, v); err != nil {
		return err
	}

	fmt.Println("R =")
	printColumnSet(a)

	var vi []float64
	for i := 0; i < n; i++ {
		if vi, err = v.Vec(i); err != nil {
			return err
		}
		fmt.Printf("v[%d] = %v\n", i, formatted(vi))
	}
	fmt.Println()

	fmt.Printf("Numerical verification that v[0], ..., v[%d] are normalized:\n", n-1)
	for i := 0; i < n; i++ {
		if vi, err = v.Vec(i); err != nil {
			return err
		}
		nrm2, err := vector.Dot(vi, vi)
		if err != nil {
			return err
		}
		fmt.Printf("‖v[%d]‖² = %g", i, nrm2)
		if i == n-1 {
			fmt.Println(".")
		} else if (i+1)%5 == 0 {
			fmt.Println(",")
		} else {
			fmt.Print(", ")
		}
	}

	return nil
}

// demoMatrix builds the m×n demo input: column j is zero above the
// diagonal and counts 1, 2, 3, … from the diagonal down, so the
// factorization output is easy to eyeball.
func demoMatrix(m, n int) (*matrix.ColumnSet, error) {
	cols := make([][]float64, n)
	for j := range cols {
		cols[j] = make([]float64, m)
		for i := j; i < m; i++ {
			cols[j][i] = float64(i - j + 1)
		}
	}

	return matrix.FromColumns(cols)
}

// printColumnSet pretty-prints through gonum's formatter, which lines
// columns up and squelches near-zero noise.
func printColumnSet(a *matrix.ColumnSet) {
	d := mat.NewDense(a.Rows(), a.Cols(), nil)
	for j := 0; j < a.Cols(); j++ {
		col, err := a.Col(j)
		if err != nil {
			continue
		}
		for i, val := range col {
			d.Set(i, j, val)
		}
	}
	fmt.Printf("%v\n\n", mat.Formatted(d, mat.Prefix(""), mat.Squeeze()))
}

// formatted renders a reflector with mat's vector formatter for the
// same column alignment as the matrices.
func formatted(v []float64) fmt.Formatter {
	return mat.Formatted(mat.NewVecDense(len(v), v).T())
}
