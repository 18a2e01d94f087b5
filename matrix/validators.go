// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for the shape checks shared by Grid, Spiral and
//     the rotation routines.
//   - Return sentinel errors wrapped with the validator tag so call sites can
//     wrap once more and callers still match with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure and allocate nothing beyond the error value.

package matrix

import (
	"math"

	"github.com/go-faster/errors"
)

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return errors.Wrap(err, tag)
}

// ValidateSize ensures a requested side length is non-negative and that
// n*n cells are addressable.
// Complexity: O(1).
func ValidateSize(n int) error {
	if n < 0 {
		return validatorErrorf("ValidateSize", ErrNegativeSize)
	}
	if n > 0 && n > math.MaxInt/n {
		return validatorErrorf("ValidateSize", ErrSizeTooLarge)
	}

	return nil
}

// ValidateGrid ensures the grid reference is non-nil.
// Complexity: O(1).
func ValidateGrid(g *Grid) error {
	if g == nil {
		return validatorErrorf("ValidateGrid", ErrNilGrid)
	}

	return nil
}

// ValidateSquareRows ensures every row has len(rows) columns.
// A nil or empty slice is a valid 0×0 matrix.
//
// Errors: ErrRaggedRows if rows differ in length among themselves,
// ErrNonSquare if they agree but do not match the row count.
// Complexity: O(n).
func ValidateSquareRows(rows [][]int) error {
	n := len(rows)
	if n == 0 {
		return nil
	}
	width := len(rows[0])
	for i := 1; i < n; i++ {
		if len(rows[i]) != width {
			return validatorErrorf("ValidateSquareRows", ErrRaggedRows)
		}
	}
	if width != n {
		return validatorErrorf("ValidateSquareRows", ErrNonSquare)
	}

	return nil
}
