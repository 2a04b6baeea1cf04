package elimination_test

import (
	"fmt"

	"github.com/katalvlaran/gf2gauss/bitmatrix"
	"github.com/katalvlaran/gf2gauss/elimination"
)

// ExampleForward brings a 2×2 matrix to row-echelon form.
func ExampleForward() {
	m, _ := bitmatrix.FromInts([][]int{{1, 1}, {1, 0}})
	ech, tr, err := elimination.Forward(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(ech)
	fmt.Println("pivots:", tr.Pivots())
	// Output:
	// [1 1]
	// [0 1]
	// pivots: [0 1]
}

// ExampleBackward finishes the reduction started in ExampleForward.
func ExampleBackward() {
	ech, _ := bitmatrix.FromInts([][]int{{1, 1}, {0, 1}})
	red, _, err := elimination.Backward(ech)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(red)
	// Output:
	// [1 0]
	// [0 1]
}

// ExampleReduce_skippedColumn shows the column record kept for an all-zero column.
func ExampleReduce_skippedColumn() {
	m, _ := bitmatrix.FromInts([][]int{{0, 1}, {0, 1}})
	red, tr, _ := elimination.Reduce(m)
	fmt.Print(red)
	fmt.Println("pivots:", tr.Pivots(), "skipped:", tr.Skipped())
	// Output:
	// [0 1]
	// [0 0]
	// pivots: [1] skipped: [0]
}

// Example_thresholdScheme derives the 4×16 relation matrix of the (k, n)
// threshold secret-sharing example of Kurihara, Kiyomoto, Fukushima and
// Tanaka (https://eprint.iacr.org/2008/409.pdf): the 16×18 generator G is
// augmented with I₁₆, eliminated forward, and the trailing 4×20 block is
// reduced backward; its last 16 columns are the relation.
func Example_thresholdScheme() {
	g := thresholdGenerator()
	aug := make([][]int, len(g))
	for i, row := range g {
		aug[i] = append(append([]int(nil), row...), eye(16)[i]...)
	}

	m, _ := bitmatrix.FromInts(aug)
	ech, tr, _ := elimination.Forward(m, elimination.WithInPlace())
	fmt.Println("skipped:", tr.Skipped())

	tail, _ := ech.View(ech.Rows()-4, 14, 4, ech.Cols()-14)
	red, _, _ := elimination.Backward(tail.Materialize())

	rel, _ := red.View(0, 4, red.Rows(), red.Cols()-4)
	fmt.Print(rel.Materialize())
	// Output:
	// skipped: [8 13]
	// [1 1 1 1 0 0 0 1 0 1 0 1 1 0 1 1]
	// [0 1 1 1 1 1 1 0 1 0 0 0 0 0 0 1]
	// [0 0 1 1 0 1 1 0 0 0 0 1 0 1 0 0]
	// [0 0 0 1 0 0 1 0 1 0 1 0 1 0 0 1]
}

// thresholdGenerator assembles G from 4×4 identity/shift blocks and 4×5
// cyclic blocks:
//
//	[ I  J₀ J₀ K   ]
//	[ I  J₁ J₂ K₋₁ ]
//	[ I  J₂ J₄ K₋₂ ]
//	[ I  J₄ J₈ I   ]
//
// Jₛ is J with columns rotated right by s; K₋ₛ is K flattened and rotated
// left by s.
func thresholdGenerator() [][]int {
	i4 := eye(4)
	j := make([][]int, 4)
	for r := range j {
		j[r] = make([]int, 5)
		j[r][r] = 1
	}
	k := make([][]int, 4)
	for r := range k {
		k[r] = make([]int, 4)
		if r > 0 {
			k[r][r-1] = 1
		}
	}

	var g [][]int
	g = append(g, hcat(i4, j, j, k)...)
	g = append(g, hcat(i4, rollCols(j, 1), rollCols(j, 2), rollFlat(k, -1))...)
	g = append(g, hcat(i4, rollCols(j, 2), rollCols(j, 4), rollFlat(k, -2))...)
	g = append(g, hcat(i4, rollCols(j, 4), rollCols(j, 8), i4)...)

	return g
}

func eye(n int) [][]int {
	out := make([][]int, n)
	for i := range out {
		out[i] = make([]int, n)
		out[i][i] = 1
	}

	return out
}

func hcat(blocks ...[][]int) [][]int {
	out := make([][]int, len(blocks[0]))
	for i := range out {
		for _, b := range blocks {
			out[i] = append(out[i], b[i]...)
		}
	}

	return out
}

// rollCols rotates columns right by s.
func rollCols(m [][]int, s int) [][]int {
	w := len(m[0])
	out := make([][]int, len(m))
	for i, row := range m {
		out[i] = make([]int, w)
		for c := range row {
			out[i][(c+s)%w] = row[c]
		}
	}

	return out
}

// rollFlat rotates the row-major flattening of m by s (negative: left).
func rollFlat(m [][]int, s int) [][]int {
	h, w := len(m), len(m[0])
	n := h * w
	out := make([][]int, h)
	for i := range out {
		out[i] = make([]int, w)
	}
	for idx := 0; idx < n; idx++ {
		dst := ((idx+s)%n + n) % n
		out[dst/w][dst%w] = m[idx/w][idx%w]
	}

	return out
}
