// SPDX-License-Identifier: MIT

package sorting

import (
	"cmp"
	"math"

	"github.com/go-faster/errors"
)

// Float64s sorts seq ascending in place and returns seq.
// Equal elements may end up in any relative order.
//
// Errors: ErrNaN if any element is NaN (seq is left untouched).
// Complexity: O(n log n) average, O(n²) worst case; O(log n) stack.
func Float64s(seq []float64, opts ...Option) ([]float64, error) {
	return Float64sRange(seq, 0, len(seq)-1, opts...)
}

// Float64sRange sorts only seq[left..right] (inclusive) ascending in place
// and returns seq. left > right is an empty range and a no-op.
//
// Errors: ErrBadRange, ErrNaN.
func Float64sRange(seq []float64, left, right int, opts ...Option) ([]float64, error) {
	if left > right {
		return seq, nil
	}
	if left < 0 || right >= len(seq) {
		return seq, errors.Wrapf(ErrBadRange, "Float64sRange [%d, %d] of %d", left, right, len(seq))
	}
	for i := left; i <= right; i++ {
		if math.IsNaN(seq[i]) {
			return seq, errors.Wrapf(ErrNaN, "Float64sRange at %d", i)
		}
	}
	o := gatherOptions(opts...)
	quicksort(seq, left, right, &o)

	return seq, nil
}

// Ints sorts seq ascending in place and returns seq.
func Ints(seq []int, opts ...Option) []int {
	o := gatherOptions(opts...)
	quicksort(seq, 0, len(seq)-1, &o)

	return seq
}

// quicksort sorts s[left..right] with Lomuto partitioning.
// Only the smaller side is recursed into; the larger side is handled by the
// loop, so stack depth stays O(log n) even on sorted input.
func quicksort[T cmp.Ordered](s []T, left, right int, o *Options) {
	for left < right {
		p := partition(s, left, right)
		o.partitioned(left, right, p)
		if p-left < right-p {
			quicksort(s, left, p-1, o)
			left = p + 1
		} else {
			quicksort(s, p+1, right, o)
			right = p - 1
		}
	}
}

// partition uses s[right] as pivot. Elements < pivot are moved to the front
// of the range; the pivot lands at i+1, which is returned.
func partition[T cmp.Ordered](s []T, left, right int) int {
	pivot := s[right]
	i := left - 1
	for j := left; j < right; j++ {
		if s[j] < pivot {
			i++
			s[i], s[j] = s[j], s[i]
		}
	}
	s[i+1], s[right] = s[right], s[i+1]

	return i + 1
}
