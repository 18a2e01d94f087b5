// Package lvloops is a small, pure-Go collection of in-place index
// arithmetic routines: ring-based matrix fills and rotations, a
// partition-exchange sort and the "next larger number" digit permutation.
//
// 🚀 What is inside?
//
//	• matrix/      : Grid, Rings, Spiral, RotateClockwise / Rotate (O(1) extra space)
//	• sorting/     : Float64s / Float64sRange / Ints (Lomuto quicksort, O(log n) stack)
//	• permutation/ : NextLarger, NextDigits, Digits / FromDigits
//	• sequence/    : BalanceIndex, Shuffle (periodic odd-to-end shuffle)
//	• cmd/lvloops  : command line front end over the packages above
//
// ✨ Guarantees
//
//   - Stateless: every call owns only its argument; distinct inputs may be
//     processed from different goroutines without locking.
//   - In place: rotations and sorts mutate and return the caller's value.
//   - Explicit errors: out-of-domain input is rejected with package
//     sentinels (matrix.ErrNonSquare, permutation.ErrNotPositive, ...).
//
// Quick example:
//
//	g, _ := matrix.Spiral(3)       // [[1 2 3] [8 9 4] [7 6 5]]
//	_, _ = matrix.RotateClockwise(g) // [[7 8 1] [6 9 2] [5 4 3]]
//
//	go get github.com/katalvlaran/lvloops
package lvloops
