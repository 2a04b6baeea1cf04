// SPDX-License-Identifier: MIT

package elimination

import "github.com/katalvlaran/gf2gauss/bitmatrix"

// PivotColumn returns the leading-one column of row i of m.
// ok is false for a zero row.
func PivotColumn(m *bitmatrix.Matrix, i int) (col int, ok bool) {
	return m.FirstOne(i, 0, m.Cols())
}

// IsEchelon reports whether m is in row-echelon form: each nonzero row's
// leading one lies strictly right of the previous row's, and zero rows come
// last. Together these imply zeros below every pivot.
// A nil matrix is not in echelon form.
func IsEchelon(m *bitmatrix.Matrix) bool {
	if m == nil {
		return false
	}
	prev := -1
	seenZero := false
	for i := 0; i < m.Rows(); i++ {
		lead, ok := PivotColumn(m, i)
		if !ok {
			seenZero = true
			continue
		}
		if seenZero || lead <= prev {
			return false
		}
		prev = lead
	}

	return true
}

// IsReduced reports whether m is in reduced row-echelon form: echelon form
// where every pivot column holds exactly one set cell.
func IsReduced(m *bitmatrix.Matrix) bool {
	if !IsEchelon(m) {
		return false
	}
	for i := 0; i < m.Rows(); i++ {
		p, ok := PivotColumn(m, i)
		if !ok {
			break
		}
		for k := 0; k < m.Rows(); k++ {
			if k != i && m.Bit(k, p) {
				return false
			}
		}
	}

	return true
}
