// SPDX-License-Identifier: MIT

package elimination

import "github.com/katalvlaran/gf2gauss/bitmatrix"

// Forward brings m to row-echelon form over GF(2) (forward elimination with
// partial pivoting).
//
// Algorithm:
//  1. Start with a window covering all of m.
//  2. While the window is non-empty and has more than one row:
//     a. Pivot on the window's leftmost column over all window rows.
//     b. On failure the column is zero in every remaining row: drop it
//     (rows unchanged), record it in Trace.SkippedColumns, retry.
//     c. On success XOR the pivot row into every lower window row with a one
//     in the pivot column, record the column, and move to the bottom-right
//     sub-window.
//  3. If a single row remains and it has a one inside the window, its leading
//     column is recorded as the last pivot (no elimination is needed).
//
// Invariant: rows above the window have their leading one in a recorded pivot
// column and zeros below it; every column left of the window is zero in all
// window rows.
//
// The result is a clone of m unless WithInPlace is given. No column
// permutation is applied; use the Trace to see which columns were skipped.
//
// Errors:
//   - ErrNilMatrix if m is nil.
//
// Complexity: at most R pivots + C skips; each pivot costs O(R·C/64).
func Forward(m *bitmatrix.Matrix, opts ...Option) (*bitmatrix.Matrix, *Trace, error) {
	if err := bitmatrix.ValidateNotNil(m); err != nil {
		return nil, nil, elimErrorf(opForward, err)
	}
	o := gatherOptions(opts...)
	out := m
	if !o.inPlace {
		out = m.Clone()
	}
	t := newTrace()
	forward(out, o, t)
	o.logger.summary(opForward, t)

	return out, t, nil
}

// forward runs the elimination loop on out in place.
func forward(out *bitmatrix.Matrix, o Options, t *Trace) {
	v := out.Full()
	for !v.Empty() && v.Rows() > 1 {
		row, col := v.Origin()
		ok, swapped := selectPivot(v, 0, 0, v.Rows())
		if !ok {
			t.SkippedColumns.Add(uint32(col))
			o.logger.skipColumn(row, col)
			v = v.DropFirstCol()
			continue
		}
		if swapped != 0 {
			t.Swaps++
		}
		xors := 0
		for i := 1; i < v.Rows(); i++ {
			if v.Bit(i, 0) {
				v.XorRow(i, 0)
				xors++
			}
		}
		t.XORs += xors
		t.PivotColumns.Add(uint32(col))
		o.logger.pivotStep(row, col, row+swapped, xors)
		v = v.DropFirstRowCol()
	}
	if v.Rows() == 1 {
		if j, ok := v.FirstOne(0); ok {
			_, col := v.Origin()
			t.PivotColumns.Add(uint32(col + j))
		}
	}
}
