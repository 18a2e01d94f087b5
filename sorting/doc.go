// Package sorting sorts numeric sequences ascending, in place, with a
// partition-exchange (quicksort) kernel.
//
// ✨ Key features:
//   - Lomuto partition with the last element of each range as pivot
//   - smaller side recursed, larger side looped: O(log n) stack depth
//   - sub-range sorting (Float64sRange) with strict bounds validation
//   - NaN rejected up front (ErrNaN) instead of producing an arbitrary order
//   - WithOnPartition hook and zap Debug records for tracing
//
// ⚙️ Usage:
//
//	seq := []float64{-2, 9, 5, -3}
//	_, err := sorting.Float64s(seq) // seq == [-3 -2 5 9]
//
// The sort is not stable. No standard-library sort primitive is used.
//
// Performance:
//
//   - Time:   O(n log n) average, O(n²) on adversarial input
//   - Memory: O(1) extra, O(log n) stack
package sorting
