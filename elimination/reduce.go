// SPDX-License-Identifier: MIT

package elimination

import "github.com/katalvlaran/gf2gauss/bitmatrix"

// Reduce runs Forward then Backward, producing the reduced row-echelon form
// of m (full Gauss-Jordan elimination). The returned Trace merges both
// passes: PivotColumns and SkippedColumns come from the forward pass,
// ZeroRows from the backward pass, counters are summed.
//
// The result is a clone of m unless WithInPlace is given; the backward pass
// always runs in place on the forward result.
//
// Errors:
//   - ErrNilMatrix if m is nil.
func Reduce(m *bitmatrix.Matrix, opts ...Option) (*bitmatrix.Matrix, *Trace, error) {
	if err := bitmatrix.ValidateNotNil(m); err != nil {
		return nil, nil, elimErrorf(opReduce, err)
	}
	o := gatherOptions(opts...)
	out := m
	if !o.inPlace {
		out = m.Clone()
	}

	ft := newTrace()
	forward(out, o, ft)
	bt := newTrace()
	backward(out, o, bt)
	ft.Merge(bt)
	o.logger.summary(opReduce, ft)

	return out, ft, nil
}

// Rank returns the GF(2) rank of m. m is not modified.
//
// Errors:
//   - ErrNilMatrix if m is nil.
func Rank(m *bitmatrix.Matrix) (int, error) {
	if err := bitmatrix.ValidateNotNil(m); err != nil {
		return 0, elimErrorf(opRank, err)
	}
	t := newTrace()
	forward(m.Clone(), DefaultOptions(), t)

	return t.Rank(), nil
}
