// Package qr_test provides benchmarks for the factorizer and its
// facades, using deterministic random fill.
package qr_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlqr/matrix"
	"github.com/katalvlaran/lvlqr/qr"
)

// benchShapes are the (rows, cols) pairs to benchmark: square and
// tall-skinny, the two regimes the flop count ~2mn² − (2/3)n³ spans.
var benchShapes = []struct{ m, n int }{
	{64, 64},
	{256, 64},
	{256, 256},
}

// sinks to defeat dead-code elimination
var (
	sinkD *qr.Decomposition
	sinkM *matrix.ColumnSet
	sinkV []float64
)

func BenchmarkFactorize(b *testing.B) {
	b.ReportAllocs()
	for _, s := range benchShapes {
		b.Run(fmt.Sprintf("%dx%d", s.m, s.n), func(b *testing.B) {
			base := randColumnSet(b, s.m, s.n, 1337)
			v, err := qr.NewReflectors(s.m, s.n)
			if err != nil {
				b.Fatal(err)
			}
			work := base.Clone()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				// re-factorizing the previous output keeps the input
				// non-degenerate without per-iteration cloning cost
				if err = qr.Factorize(work, v); err != nil {
					b.Fatal(err)
				}
			}
			sinkM = work
		})
	}
}

func BenchmarkDecompose(b *testing.B) {
	b.ReportAllocs()
	for _, s := range benchShapes {
		b.Run(fmt.Sprintf("%dx%d", s.m, s.n), func(b *testing.B) {
			base := randColumnSet(b, s.m, s.n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := qr.Decompose(base)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = d
			}
		})
	}
}

func BenchmarkSolveLS(b *testing.B) {
	b.ReportAllocs()
	const m, n = 256, 64
	base := randColumnSet(b, m, n, 7)
	d, err := qr.Decompose(base)
	if err != nil {
		b.Fatal(err)
	}
	rhs := make([]float64, m)
	for i := range rhs {
		rhs[i] = float64(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x, err := qr.SolveLS(d, rhs)
		if err != nil {
			b.Fatal(err)
		}
		sinkV = x
	}
}
