// SPDX-License-Identifier: MIT
// Package bitmatrix: sentinel error set.
// Every message is prefixed with "bitmatrix: ..." for grep-ability. Callers
// match them with errors.Is; wrappers add call-site context via %w.

package bitmatrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested dimensions are negative.
	ErrInvalidDimensions = errors.New("bitmatrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this, not panic.
	ErrOutOfRange = errors.New("bitmatrix: index out of range")

	// ErrRaggedRows indicates that row slices passed to a constructor differ in length.
	ErrRaggedRows = errors.New("bitmatrix: rows have different lengths")

	// ErrNonBinary indicates an integer cell outside {0, 1}.
	ErrNonBinary = errors.New("bitmatrix: entry is not 0 or 1")

	// ErrNilMatrix indicates that a nil *Matrix was used.
	ErrNilMatrix = errors.New("bitmatrix: nil matrix")

	// ErrBadView indicates a window that does not fit inside its parent.
	ErrBadView = errors.New("bitmatrix: view out of bounds")
)

// Method tags used in error wrappers.
const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxView     = "View"
	ctxFromBool = "FromBools"
	ctxFromInt  = "FromInts"
)

// matrixErrorf attaches method context and coordinates to a sentinel.
// The result formats as "Matrix.<method>(row,col): <sentinel>".
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
