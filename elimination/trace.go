// SPDX-License-Identifier: MIT

package elimination

import "github.com/RoaringBitmap/roaring/v2"

// Trace records what an elimination pass did, in parent coordinates.
// It is the column-permutation record that row-only pivoting otherwise
// loses: PivotColumns lists the columns holding a leading one after the
// pass, SkippedColumns the columns dropped because they were all zero in
// the remaining rows.
type Trace struct {
	PivotColumns   *roaring.Bitmap
	SkippedColumns *roaring.Bitmap
	ZeroRows       *roaring.Bitmap // rows Backward found without a pivot
	Swaps          int
	XORs           int
}

func newTrace() *Trace {
	return &Trace{
		PivotColumns:   roaring.New(),
		SkippedColumns: roaring.New(),
		ZeroRows:       roaring.New(),
	}
}

// Rank returns the number of pivot columns.
func (t *Trace) Rank() int { return int(t.PivotColumns.GetCardinality()) }

// Pivots returns the pivot columns in ascending order.
func (t *Trace) Pivots() []int { return toInts(t.PivotColumns) }

// Skipped returns the skipped columns in ascending order.
func (t *Trace) Skipped() []int { return toInts(t.SkippedColumns) }

// Merge folds o into t: index sets are unioned, counters added.
func (t *Trace) Merge(o *Trace) {
	if o == nil {
		return
	}
	t.PivotColumns.Or(o.PivotColumns)
	t.SkippedColumns.Or(o.SkippedColumns)
	t.ZeroRows.Or(o.ZeroRows)
	t.Swaps += o.Swaps
	t.XORs += o.XORs
}

func toInts(b *roaring.Bitmap) []int {
	out := make([]int, 0, b.GetCardinality())
	it := b.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	return out
}
