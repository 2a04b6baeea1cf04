// SPDX-License-Identifier: MIT

// Package bitmatrix - packed row storage & safe accessors.
//
// Purpose:
//   - Store each row as one bitset so swaps are pointer exchanges and XORs
//     run word-at-a-time.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed row order, no map iteration).
//
// Complexity quicksheet:
//   - New: O(r*c/64); At/Set: O(1); Clone: O(r*c/64); SwapRows: O(1);
//     XorRow: O(c/64); FirstOne: O(c/64) worst case.

package bitmatrix

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = " "
	_fmtOne      = "1"
	_fmtZero     = "0"
)

// Matrix is an R×C binary matrix in row-major order.
//   - r,c hold dimensions (rows, cols); both may be zero.
//   - rows holds one bitset of length c per row.
type Matrix struct {
	r, c int
	rows []*bitset.BitSet
}

var _ fmt.Stringer = (*Matrix)(nil)

// New creates an r×c zero matrix.
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate one zeroed bitset per row.
//
// Complexity: Time O(r*c/64), Space O(r*c/64).
func New(rows, cols int) (*Matrix, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}
	m := &Matrix{r: rows, c: cols, rows: make([]*bitset.BitSet, rows)}
	for i := range m.rows {
		m.rows[i] = bitset.New(uint(cols))
	}

	return m, nil
}

// FromBools builds a matrix from a slice of equal-length boolean rows.
// An empty outer slice yields a 0×0 matrix.
//
// Errors:
//   - ErrRaggedRows if any row length differs from the first.
func FromBools(data [][]bool) (*Matrix, error) {
	cols := 0
	if len(data) > 0 {
		cols = len(data[0])
	}
	m, err := New(len(data), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range data {
		if len(row) != cols {
			return nil, matrixErrorf(ctxFromBool, i, len(row), ErrRaggedRows)
		}
		for j, v := range row {
			if v {
				m.rows[i].Set(uint(j))
			}
		}
	}

	return m, nil
}

// FromInts builds a matrix from 0/1 integer rows, the notation used for
// GF(2) matrices in papers and tests.
//
// Errors:
//   - ErrRaggedRows if any row length differs from the first.
//   - ErrNonBinary if an entry is neither 0 nor 1.
func FromInts(data [][]int) (*Matrix, error) {
	cols := 0
	if len(data) > 0 {
		cols = len(data[0])
	}
	m, err := New(len(data), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range data {
		if len(row) != cols {
			return nil, matrixErrorf(ctxFromInt, i, len(row), ErrRaggedRows)
		}
		for j, v := range row {
			switch v {
			case 0:
			case 1:
				m.rows[i].Set(uint(j))
			default:
				return nil, matrixErrorf(ctxFromInt, i, j, ErrNonBinary)
			}
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Matrix) Shape() (rows, cols int) { return m.r, m.c }

// At reports whether cell (row, col) is set.
// Returns ErrOutOfRange (wrapped with coordinates) on invalid indices.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (bool, error) {
	if err := m.validateIndex(ctxAt, row, col); err != nil {
		return false, err
	}

	return m.rows[row].Test(uint(col)), nil
}

// Set assigns v to cell (row, col).
// Returns ErrOutOfRange (wrapped with coordinates) on invalid indices.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v bool) error {
	if err := m.validateIndex(ctxSet, row, col); err != nil {
		return err
	}
	m.rows[row].SetTo(uint(col), v)

	return nil
}

// Bit is the unchecked form of At used by elimination kernels.
// It panics if (row, col) is out of range.
func (m *Matrix) Bit(row, col int) bool {
	if col < 0 || col >= m.c {
		panic(fmt.Sprintf("bitmatrix: Bit(%d,%d) outside %dx%d", row, col, m.r, m.c))
	}

	return m.rows[row].Test(uint(col))
}

// SwapRows exchanges rows a and b in place. Swapping a row with itself is a no-op.
// Complexity: O(1) (bitset pointers are exchanged).
func (m *Matrix) SwapRows(a, b int) {
	m.rows[a], m.rows[b] = m.rows[b], m.rows[a]
}

// XorRow replaces row dst with dst XOR src (row addition over GF(2)).
// dst == src zeroes the row.
// Complexity: O(c/64).
func (m *Matrix) XorRow(dst, src int) {
	if dst == src {
		m.rows[dst].ClearAll()
		return
	}
	m.rows[dst].InPlaceSymmetricDifference(m.rows[src])
}

// FirstOne returns the leftmost set column of row i within [from, to).
// ok is false when the range holds no set bit, including empty ranges;
// callers must treat that as "no pivot", never as column 0.
// Complexity: O((to-from)/64).
func (m *Matrix) FirstOne(i, from, to int) (col int, ok bool) {
	if from < 0 {
		from = 0
	}
	if to > m.c {
		to = m.c
	}
	if from >= to {
		return 0, false
	}
	idx, found := m.rows[i].NextSet(uint(from))
	if !found || idx >= uint(to) {
		return 0, false
	}

	return int(idx), true
}

// RowIsZero reports whether row i has no set bit.
func (m *Matrix) RowIsZero(i int) bool { return m.rows[i].None() }

// Count returns the number of set cells.
func (m *Matrix) Count() int {
	var n uint
	for _, row := range m.rows {
		n += row.Count()
	}

	return int(n)
}

// Clone returns a deep copy independent of m.
// Complexity: O(r*c/64).
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{r: m.r, c: m.c, rows: make([]*bitset.BitSet, m.r)}
	for i, row := range m.rows {
		out.rows[i] = row.Clone()
	}

	return out
}

// Equal reports whether m and o have the same shape and cells.
// Two nil matrices are equal; nil never equals a non-nil matrix.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(o.rows[i]) {
			return false
		}
	}

	return true
}

// Bools returns the cells as a fresh [][]bool.
func (m *Matrix) Bools() [][]bool {
	out := make([][]bool, m.r)
	for i, row := range m.rows {
		out[i] = make([]bool, m.c)
		for j := 0; j < m.c; j++ {
			out[i][j] = row.Test(uint(j))
		}
	}

	return out
}

// String renders one bracketed row per line, e.g. "[1 0 1]\n".
// A matrix with zero rows renders as the empty string.
func (m *Matrix) String() string {
	var b strings.Builder
	for _, row := range m.rows {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			if row.Test(uint(j)) {
				b.WriteString(_fmtOne)
			} else {
				b.WriteString(_fmtZero)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
