// SPDX-License-Identifier: MIT

package bitmatrix

import "fmt"

// View is a non-owning window [r0:r0+rows, c0:c0+cols) into a Matrix.
// It is a small value; copying a View copies the window, never the cells.
// Every mutation made through a View is visible in the parent.
//
// Row operations (SwapRows, XorRow) act on whole parent rows. Elimination
// only calls them when every column left of the window is zero in the rows
// involved, so the effect equals a window-restricted operation.
type View struct {
	m      *Matrix
	r0, c0 int
	r, c   int
}

// View creates a no-copy window over m.
// Implementation:
//   - Stage 1: validate r0,c0,rows,cols >= 0 and that the window fits in m.
//   - Stage 2: return the View with offsets.
//
// Errors:
//   - ErrBadView if the window does not fit.
//
// Complexity: O(1).
func (m *Matrix) View(r0, c0, rows, cols int) (View, error) {
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > m.r || c0+cols > m.c {
		return View{}, fmt.Errorf("Matrix.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrBadView)
	}

	return View{m: m, r0: r0, c0: c0, r: rows, c: cols}, nil
}

// Full returns the window covering all of m.
func (m *Matrix) Full() View {
	return View{m: m, r: m.r, c: m.c}
}

// Base returns the parent matrix.
func (v View) Base() *Matrix { return v.m }

// Origin returns the parent coordinates of the window's top-left cell.
func (v View) Origin() (row, col int) { return v.r0, v.c0 }

// Rows returns the window height.
func (v View) Rows() int { return v.r }

// Cols returns the window width.
func (v View) Cols() int { return v.c }

// Empty reports whether the window holds no cells (rows*cols == 0).
func (v View) Empty() bool { return v.r == 0 || v.c == 0 }

// At reports whether window cell (i, j) is set.
// Returns ErrOutOfRange if (i, j) lies outside the window.
func (v View) At(i, j int) (bool, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return false, fmt.Errorf("View.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v.m.rows[v.r0+i].Test(uint(v.c0 + j)), nil
}

// Set assigns window cell (i, j) in the parent.
// Returns ErrOutOfRange if (i, j) lies outside the window.
func (v View) Set(i, j int, val bool) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return fmt.Errorf("View.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	v.m.rows[v.r0+i].SetTo(uint(v.c0+j), val)

	return nil
}

// Bit is the unchecked form of At. It panics if (i, j) is outside the window.
func (v View) Bit(i, j int) bool {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		panic(fmt.Sprintf("bitmatrix: View.Bit(%d,%d) outside %dx%d window", i, j, v.r, v.c))
	}

	return v.m.rows[v.r0+i].Test(uint(v.c0 + j))
}

// SwapRows exchanges window rows a and b (full parent rows).
func (v View) SwapRows(a, b int) { v.m.SwapRows(v.r0+a, v.r0+b) }

// XorRow replaces window row dst with dst XOR src (full parent rows).
func (v View) XorRow(dst, src int) { v.m.XorRow(v.r0+dst, v.r0+src) }

// FirstOne returns the leftmost set window column of window row i.
// ok is false when the row is zero inside the window.
func (v View) FirstOne(i int) (col int, ok bool) {
	col, ok = v.m.FirstOne(v.r0+i, v.c0, v.c0+v.c)
	if !ok {
		return 0, false
	}

	return col - v.c0, true
}

// DropFirstRow narrows the window by its top row.
// A window without rows is returned unchanged.
func (v View) DropFirstRow() View {
	if v.r == 0 {
		return v
	}
	v.r0++
	v.r--

	return v
}

// DropLastRow narrows the window by its bottom row.
func (v View) DropLastRow() View {
	if v.r == 0 {
		return v
	}
	v.r--

	return v
}

// DropFirstCol narrows the window by its leftmost column; rows are kept.
func (v View) DropFirstCol() View {
	if v.c == 0 {
		return v
	}
	v.c0++
	v.c--

	return v
}

// DropFirstRowCol moves to the bottom-right sub-window.
func (v View) DropFirstRowCol() View {
	return v.DropFirstRow().DropFirstCol()
}

// Materialize copies the window into a new, independent Matrix.
// Complexity: O(rows*cols).
func (v View) Materialize() *Matrix {
	out, _ := New(v.r, v.c) // shape is non-negative by construction
	for i := 0; i < v.r; i++ {
		src := v.m.rows[v.r0+i]
		for j := 0; j < v.c; j++ {
			if src.Test(uint(v.c0 + j)) {
				out.rows[i].Set(uint(j))
			}
		}
	}

	return out
}
