// SPDX-License-Identifier: MIT
// Package elimination: error surface.
//
// Two outcome classes exist:
//   - a failed pivot search is control flow (a bool), never an error;
//   - a Backward precondition violation panics with *PreconditionError.
// Returned errors only cover invalid arguments (nil matrix).

package elimination

import (
	"fmt"

	"github.com/katalvlaran/gf2gauss/bitmatrix"
)

// Operation tags for error wrapping and log records.
const (
	opForward  = "Forward"
	opBackward = "Backward"
	opReduce   = "Reduce"
	opRank     = "Rank"
)

// ErrNilMatrix is re-exported so callers of this package need not import bitmatrix to match it.
var ErrNilMatrix = bitmatrix.ErrNilMatrix

// elimErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func elimErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// PreconditionError describes input that breaks the row-echelon contract of
// Backward. It is raised via panic: malformed input is a programming error,
// and returning a silently wrong reduction is worse than aborting.
type PreconditionError struct {
	Op     string // operation tag
	Row    int    // offending row (parent coordinates)
	Col    int    // pivot column being cleared (parent coordinates)
	Reason string
}

// Error implements error.
func (e *PreconditionError) Error() string {
	return fmt.Sprintf("elimination: %s: input is not in row-echelon form: row %d vs pivot column %d: %s",
		e.Op, e.Row, e.Col, e.Reason)
}
