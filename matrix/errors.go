// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All exported operations return these sentinels (optionally wrapped with a
// call-site tag) and tests match them via errors.Is. No operation panics on
// user-triggered error conditions.

package matrix

import "github.com/go-faster/errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so log lines are easy to grep.
// Validators wrap these sentinels with a tag ("RotateRows: ...");
// callers still use errors.Is to match.
//
// ERROR PRIORITY, when one call can fail several ways:
// nil -> size -> ragged rows -> non-square -> index range.

var (
	// ErrNilGrid indicates that a nil *Grid (receiver or argument) was used.
	ErrNilGrid = errors.New("matrix: nil grid")

	// ErrNegativeSize is returned when a requested side length is below zero.
	ErrNegativeSize = errors.New("matrix: size must be >= 0")

	// ErrSizeTooLarge is returned when size*size does not fit in an int.
	ErrSizeTooLarge = errors.New("matrix: size*size overflows int")

	// ErrNonSquare signals that a square matrix was required but the input
	// has a different number of rows and columns.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrRaggedRows signals that the rows of a [][]int input differ in length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrOutOfRange indicates that a row or column index is outside [0, size).
	ErrOutOfRange = errors.New("matrix: index out of range")
)
