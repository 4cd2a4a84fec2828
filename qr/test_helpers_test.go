// Package qr_test: shared helpers for the qr test suite.
// Deterministic random matrices come from golang.org/x/exp/rand so
// every run sees the same inputs; gonum/mat serves as the independent
// oracle the Householder kernel is checked against.
package qr_test

import (
	"testing"

	"github.com/katalvlaran/lvlqr/matrix"
	"github.com/katalvlaran/lvlqr/qr"
	"github.com/katalvlaran/lvlqr/vector"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// tolerance for all floating-point comparisons in this suite.
const eps = 1e-9

// randColumnSet returns an m×n ColumnSet with standard-normal entries
// drawn from a fixed seed.
func randColumnSet(t testing.TB, m, n int, seed uint64) *matrix.ColumnSet {
	t.Helper()

	rng := rand.New(rand.NewSource(seed))
	cols := make([][]float64, n)
	for j := range cols {
		cols[j] = make([]float64, m)
		for i := range cols[j] {
			cols[j][i] = rng.NormFloat64()
		}
	}

	cs, err := matrix.FromColumns(cols)
	require.NoError(t, err)

	return cs
}

// toDense converts a ColumnSet into a gonum mat.Dense for oracle use.
func toDense(t testing.TB, a *matrix.ColumnSet) *mat.Dense {
	t.Helper()

	d := mat.NewDense(a.Rows(), a.Cols(), nil)
	for j := 0; j < a.Cols(); j++ {
		col, err := a.Col(j)
		require.NoError(t, err)
		for i, v := range col {
			d.Set(i, j, v)
		}
	}

	return d
}

// requireUnitReflectors asserts ‖vᵢ‖ = 1 for every reflector.
func requireUnitReflectors(t *testing.T, v *qr.Reflectors) {
	t.Helper()

	for i := 0; i < v.Len(); i++ {
		vi, err := v.Vec(i)
		require.NoError(t, err)
		require.Len(t, vi, v.Rows()-i)

		nrm2, err := vector.Dot(vi, vi)
		require.NoError(t, err)
		require.InDelta(t, 1.0, nrm2, 1e-10, "‖v[%d]‖² must be 1", i)
	}
}

// requireUpperTriangular asserts R[i][j] ≈ 0 for all i > j.
func requireUpperTriangular(t *testing.T, r *matrix.ColumnSet) {
	t.Helper()

	for j := 0; j < r.Cols(); j++ {
		col, err := r.Col(j)
		require.NoError(t, err)
		for i := j + 1; i < r.Rows(); i++ {
			require.InDelta(t, 0.0, col[i], eps, "R[%d][%d] must be 0", i, j)
		}
	}
}
