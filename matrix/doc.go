// Package matrix builds and transforms square integer matrices ring by ring.
//
// 🚀 What is inside?
//
//	• Grid   : square, row-major int matrix with bounds-checked At/Set
//	• Rings  : the concentric borders of an n×n matrix, outermost first
//	• Spiral : fill 1..n² clockwise from the top-left corner
//	• Rotate : quarter turns in place, O(1) extra space
//
// Both Spiral and the rotation kernels walk the same ring list:
//
//	 ┌──────────┐
//	 │ ┌──────┐ │   ring 0: Offset 0, Size n
//	 │ │ ┌──┐ │ │   ring 1: Offset 1, Size n-2
//	 │ │ └──┘ │ │   ...
//	 │ └──────┘ │   odd n ends with a single-cell ring
//	 └──────────┘
//
// ⚙️ Usage:
//
//	g, err := matrix.Spiral(3)
//	// [1, 2, 3]
//	// [8, 9, 4]
//	// [7, 6, 5]
//
//	rows := [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
//	_, err = matrix.RotateRows(rows) // rows is now [[7 4 1] [8 5 2] [9 6 3]]
//
// Errors are package sentinels (ErrNegativeSize, ErrNonSquare, ...) matched
// with errors.Is. A *zap.Logger passed with WithLogger receives one Debug
// record per ring.
//
// Performance:
//
//   - Spiral:  O(n²) time, O(n²) memory (the result)
//   - Rotate:  O(n²) time, O(1) extra memory
package matrix
