// SPDX-License-Identifier: MIT
// Package sorting: sentinel error set. Callers match with errors.Is.

package sorting

import "github.com/go-faster/errors"

var (
	// ErrBadRange is returned when [left, right] does not lie inside the sequence.
	ErrBadRange = errors.New("sorting: range out of bounds")

	// ErrNaN signals a NaN element; ascending order is undefined for NaN.
	ErrNaN = errors.New("sorting: NaN encountered")
)
