// SPDX-License-Identifier: MIT
// Package: bitmatrix
//
// Purpose:
//  - Provide the canonical guard checks shared by constructors and callers.
//  - Return wrapped sentinels so call sites can match with errors.Is.

package bitmatrix

import "fmt"

// validatorErrorf wraps a sentinel with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape ensures rows and cols are non-negative.
// Returns ErrInvalidDimensions otherwise.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf(fmt.Sprintf("ValidateShape(%d,%d)", rows, cols), ErrInvalidDimensions)
	}

	return nil
}

// validateIndex reports whether (row, col) addresses a cell of m.
func (m *Matrix) validateIndex(method string, row, col int) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return matrixErrorf(method, row, col, ErrOutOfRange)
	}

	return nil
}
