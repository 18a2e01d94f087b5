// SPDX-License-Identifier: MIT

package sequence

// BalanceIndex returns the index i for which the sum of arr[:i] equals the
// sum of arr[i+1:], or -1 if there is none. When several indices balance the
// highest one is returned. Every index is a candidate, so a single element
// balances at 0.
//
// Sums are compared exactly, without a tolerance: values that only balance
// after rounding do not match, and a NaN anywhere yields -1.
//
// Complexity: O(n) time, O(1) memory.
func BalanceIndex(arr []float64) int {
	left := 0.0
	for _, v := range arr {
		left += v
	}

	right := 0.0
	for i := len(arr) - 1; i >= 0; i-- {
		left -= arr[i]
		if left == right {
			return i
		}
		right += arr[i]
	}

	return -1
}
