// SPDX-License-Identifier: MIT

package permutation

import (
	"math"

	"github.com/go-faster/errors"

	"github.com/katalvlaran/lvloops/sorting"
)

// NextLarger returns the smallest number greater than n built from exactly
// the decimal digits of n. When the digits are already in descending order
// no such number exists and n is returned unchanged.
//
// Examples:
//
//	12345   → 12354
//	123450  → 123504
//	90822   → 92028
//	321321  → 322113
//	321     → 321
//
// Errors: ErrNotPositive for n <= 0, ErrOverflow when the next arrangement
// exceeds math.MaxInt64.
// Complexity: O(d²) worst case for d digits (d <= 19).
func NextLarger(n int64, opts ...Option) (int64, error) {
	if n <= 0 {
		return n, errors.Wrapf(ErrNotPositive, "NextLarger(%d)", n)
	}
	o := gatherOptions(opts...)

	digits := Digits(uint64(n))
	pivot, successor := nextDigits(digits)
	if pivot < 0 {
		return n, nil
	}
	o.step(n, pivot, successor)

	next, err := FromDigits(digits)
	if err != nil {
		return n, errors.Wrapf(err, "NextLarger(%d)", n)
	}

	return next, nil
}

// NextDigits rearranges d in place into the next larger arrangement and
// reports whether one existed. When it returns false d is unchanged.
func NextDigits(d []int) bool {
	pivot, _ := nextDigits(d)

	return pivot >= 0
}

// nextDigits performs the step and returns the pivot and successor indices,
// or (-1, -1) when d is non-increasing.
//
// Stage 1: pivot is the rightmost i with d[i] < d[i+1].
// Stage 2: successor is the smallest suffix value strictly above d[pivot];
// ties go to the rightmost position. Any tied position gives the same
// result because the suffix is sorted afterwards.
// Stage 3: swap, then sort the suffix ascending.
func nextDigits(d []int) (pivot, successor int) {
	pivot = -1
	for i := len(d) - 2; i >= 0; i-- {
		if d[i] < d[i+1] {
			pivot = i
			break
		}
	}
	if pivot < 0 {
		return -1, -1
	}

	successor = pivot + 1 // d[pivot+1] > d[pivot] by the pivot definition
	for i := pivot + 2; i < len(d); i++ {
		if d[i] > d[pivot] && d[i] <= d[successor] {
			successor = i
		}
	}

	d[pivot], d[successor] = d[successor], d[pivot]
	sorting.Ints(d[pivot+1:])

	return pivot, successor
}

// Digits returns the decimal digits of n, most significant first.
// Digits(0) is [0].
func Digits(n uint64) []int {
	if n == 0 {
		return []int{0}
	}
	var buf [20]int // MaxUint64 has 20 digits
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = int(n % 10)
		n /= 10
	}
	out := make([]int, len(buf)-i)
	copy(out, buf[i:])

	return out
}

// FromDigits assembles decimal digits, most significant first, into an int64.
//
// Errors: ErrBadDigit for an empty slice or a value outside 0..9,
// ErrOverflow when the number exceeds math.MaxInt64.
func FromDigits(d []int) (int64, error) {
	if len(d) == 0 {
		return 0, errors.Wrap(ErrBadDigit, "FromDigits: empty")
	}
	var v int64
	for i, digit := range d {
		if digit < 0 || digit > 9 {
			return 0, errors.Wrapf(ErrBadDigit, "FromDigits: %d at %d", digit, i)
		}
		if v > (math.MaxInt64-int64(digit))/10 {
			return 0, errors.Wrap(ErrOverflow, "FromDigits")
		}
		v = v*10 + int64(digit)
	}

	return v, nil
}
