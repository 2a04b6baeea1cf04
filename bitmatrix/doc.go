// Package bitmatrix provides dense binary matrices over GF(2).
//
// 🚀 What is a bit matrix?
//
//	An R×C grid whose cells are bits. Rows are packed into machine words
//	(one bitset per row), so the row operations elimination relies on run
//	in O(C/64):
//	  • SwapRows  — exchange two rows (pointer swap, no copy)
//	  • XorRow    — dst ^= src, i.e. addition over GF(2)
//	  • FirstOne  — leftmost set column inside a column range
//
// ✨ Key features:
//   - zero shapes are legal (0×0, 0×N, N×0)
//   - View(r0, c0, rows, cols) gives a no-copy window; every mutation made
//     through a view lands in the parent matrix
//   - views shrink (DropFirstRow, DropLastRow, DropFirstCol, DropFirstRowCol)
//     without reallocating
//   - public indexers (At/Set) return sentinel errors instead of panicking
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gf2gauss/bitmatrix"
//
//	m, err := bitmatrix.FromInts([][]int{
//	  {1, 1},
//	  {1, 0},
//	})
//	if err != nil {
//	  // handle ErrRaggedRows or ErrNonBinary
//	}
//	m.XorRow(1, 0) // row 1 becomes [0 1]
//
// See elimination for Gauss-Jordan elimination built on these primitives.
package bitmatrix
