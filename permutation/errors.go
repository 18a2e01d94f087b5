// SPDX-License-Identifier: MIT
// Package permutation: sentinel error set. Callers match with errors.Is.

package permutation

import "github.com/go-faster/errors"

var (
	// ErrNotPositive is returned when the input number is zero or negative.
	ErrNotPositive = errors.New("permutation: number must be positive")

	// ErrOverflow signals that the next arrangement does not fit into int64.
	ErrOverflow = errors.New("permutation: result overflows int64")

	// ErrBadDigit signals a digit outside 0..9 or an empty digit list.
	ErrBadDigit = errors.New("permutation: invalid decimal digit")
)
