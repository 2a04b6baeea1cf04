// Package elimination performs Gauss-Jordan elimination over GF(2).
//
// 🚀 What does it compute?
//
//	Given a binary matrix, Forward brings it to row-echelon form and
//	Backward turns a row-echelon matrix into reduced row-echelon form.
//	Over GF(2) subtraction is XOR and every nonzero pivot is already 1,
//	so the only row operations are swaps and XORs. The typical caller
//	derives generator/parity relations for threshold secret-sharing
//	schemes from a coding-theory matrix.
//
// ✨ Key features:
//   - partial (row-only) pivoting with an explicit first-one search
//   - all-zero columns are skipped and recorded in a Trace, together with
//     the pivot columns, so callers can recover the column structure
//   - shrinking no-copy views over one backing matrix
//   - copy-on-call by default; WithInPlace() mutates the caller's matrix
//   - Backward panics with a *PreconditionError on non-echelon input
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/gf2gauss/bitmatrix"
//	  "github.com/katalvlaran/gf2gauss/elimination"
//	)
//
//	m, _ := bitmatrix.FromInts([][]int{{1, 1}, {1, 0}})
//	ech, _, err := elimination.Forward(m)   // [[1 1] [0 1]]
//	red, _, err := elimination.Backward(ech) // [[1 0] [0 1]]
//
// Performance:
//
//   - Time:   O(R·R·C/64) for both passes (rows are packed bitsets)
//   - Memory: one R×C copy (none with WithInPlace)
package elimination
