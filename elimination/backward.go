// SPDX-License-Identifier: MIT

package elimination

import "github.com/katalvlaran/gf2gauss/bitmatrix"

// Backward turns a row-echelon matrix into reduced row-echelon form
// (backward substitution over GF(2)).
//
// Algorithm:
//  1. Start with a window covering all of m.
//  2. While the window is non-empty and has more than one row:
//     a. Find the leading one of the window's last row (first one, left to
//     right). A zero row has no pivot: it is recorded in Trace.ZeroRows and
//     dropped without touching other rows.
//     b. XOR the last row into every row above it that has a one in the pivot
//     column.
//     c. Verify: every row above must now be zero in the pivot column and
//     keep a leading one strictly left of it.
//     d. Drop the last row.
//
// Preconditions: m is in row-echelon form (as produced by Forward). A
// violation detected in step 2c panics with *PreconditionError unless
// WithVerify(false) is given.
//
// The result is a clone of m unless WithInPlace is given.
//
// Errors:
//   - ErrNilMatrix if m is nil.
//
// Complexity: R steps, each O(R·C/64).
func Backward(m *bitmatrix.Matrix, opts ...Option) (*bitmatrix.Matrix, *Trace, error) {
	if err := bitmatrix.ValidateNotNil(m); err != nil {
		return nil, nil, elimErrorf(opBackward, err)
	}
	o := gatherOptions(opts...)
	out := m
	if !o.inPlace {
		out = m.Clone()
	}
	t := newTrace()
	backward(out, o, t)
	o.logger.summary(opBackward, t)

	return out, t, nil
}

// backward runs the substitution loop on out in place.
func backward(out *bitmatrix.Matrix, o Options, t *Trace) {
	v := out.Full()
	for !v.Empty() && v.Rows() > 1 {
		last := v.Rows() - 1
		r0, c0 := v.Origin()
		p, ok := v.FirstOne(last)
		if !ok {
			t.ZeroRows.Add(uint32(r0 + last))
			v = v.DropLastRow()
			continue
		}
		xors := 0
		for i := 0; i < last; i++ {
			if v.Bit(i, p) {
				v.XorRow(i, last)
				xors++
			}
		}
		if o.verify {
			verifyCleared(v, last, p)
		}
		t.XORs += xors
		t.PivotColumns.Add(uint32(c0 + p))
		o.logger.backStep(r0+last, c0+p, xors)
		v = v.DropLastRow()
	}
	if v.Rows() == 1 && !v.Empty() {
		r0, c0 := v.Origin()
		if p, ok := v.FirstOne(0); ok {
			t.PivotColumns.Add(uint32(c0 + p))
		} else {
			t.ZeroRows.Add(uint32(r0))
		}
	}
}

// verifyCleared panics unless every window row above last is zero in column
// p and has its leading one strictly left of p.
func verifyCleared(v bitmatrix.View, last, p int) {
	r0, c0 := v.Origin()
	for i := 0; i < last; i++ {
		if v.Bit(i, p) {
			panic(&PreconditionError{Op: opBackward, Row: r0 + i, Col: c0 + p, Reason: "pivot column not cleared"})
		}
		lead, ok := v.FirstOne(i)
		if !ok {
			panic(&PreconditionError{Op: opBackward, Row: r0 + i, Col: c0 + p, Reason: "zero row above a pivot row"})
		}
		if lead >= p {
			panic(&PreconditionError{Op: opBackward, Row: r0 + i, Col: c0 + p, Reason: "leading one not left of the pivot"})
		}
	}
}
