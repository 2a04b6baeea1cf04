// Package elimination_test provides benchmarks for the elimination passes,
// using deterministic random fill.
package elimination_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/gf2gauss/bitmatrix"
	"github.com/katalvlaran/gf2gauss/elimination"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{64, 256, 1024}

// sinks to defeat dead-code elimination
var (
	sinkM *bitmatrix.Matrix
	sinkT *elimination.Trace
	sinkI int
)

func BenchmarkForward(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randomMatrix(b, n, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, t, err := elimination.Forward(a)
				if err != nil {
					b.Fatal(err)
				}
				sinkM, sinkT = m, t
			}
		})
	}
}

func BenchmarkReduce(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randomMatrix(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, t, err := elimination.Reduce(a)
				if err != nil {
					b.Fatal(err)
				}
				sinkM, sinkT = m, t
			}
		})
	}
}

func BenchmarkRank(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randomMatrix(b, n, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r, err := elimination.Rank(a)
				if err != nil {
					b.Fatal(err)
				}
				sinkI = r
			}
		})
	}
}
