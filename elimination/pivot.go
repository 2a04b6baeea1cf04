// SPDX-License-Identifier: MIT

package elimination

import "github.com/katalvlaran/gf2gauss/bitmatrix"

// Pivot ensures window row 0 of v has a one in window column col.
//
// Implementation:
//   - Stage 1: if v[0][col] is already set, succeed without mutation.
//   - Stage 2: scan rows lo..hi-1 of v, top to bottom, for the FIRST set
//     cell in col. This is an explicit first-one search: an all-zero range
//     must fail rather than select row 0.
//   - Stage 3: swap window rows 0 and k (full rows) when k != 0.
//
// Returns false, leaving v untouched, when no row in [lo, hi) has a one in
// col. Forward reads that as "skip this column", so it is not an error.
//
// Preconditions: v has at least one row; 0 <= col < v.Cols();
// 0 <= lo <= hi <= v.Rows(). Violations panic.
//
// Complexity: O(hi-lo) bit tests plus an O(1) swap.
func Pivot(v bitmatrix.View, col, lo, hi int) bool {
	ok, _ := selectPivot(v, col, lo, hi)

	return ok
}

// selectPivot is Pivot that also reports which window row was swapped to the
// top (0 when no swap happened).
func selectPivot(v bitmatrix.View, col, lo, hi int) (ok bool, swapped int) {
	if v.Bit(0, col) {
		return true, 0
	}
	for k := lo; k < hi; k++ {
		if !v.Bit(k, col) {
			continue
		}
		if k != 0 {
			v.SwapRows(0, k)
		}

		return true, k
	}

	return false, 0
}
