package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvlqr/matrix"
)

// ExampleFromRows shows row-major ingestion into column storage and
// the live column view the qr kernel iterates over.
func ExampleFromRows() {
	m, _ := matrix.FromRows([][]float64{
		{1, 0},
		{2, 1},
		{3, 2},
	})

	col0, _ := m.Col(0)
	col1, _ := m.Col(1)
	fmt.Println("col0:", col0)
	fmt.Println("col1:", col1)

	// trailing window of column 1 from row 1 down — a plain sub-slice
	fmt.Println("window:", col1[1:])

	// Output:
	// col0: [1 2 3]
	// col1: [0 1 2]
	// window: [1 2]
}

// ExampleColumnSet_Clone demonstrates that clones share no storage.
func ExampleColumnSet_Clone() {
	m, _ := matrix.FromColumns([][]float64{{1, 2}})
	c := m.Clone()
	_ = c.Set(0, 0, 99)

	v, _ := m.At(0, 0)
	w, _ := c.At(0, 0)
	fmt.Println(v, w)

	// Output:
	// 1 99
}
