// SPDX-License-Identifier: MIT

package matrix

// Ring is one concentric square border of an n×n matrix.
// Its top-left corner is (Offset, Offset) and its side length is Size;
// the bottom-right corner is (Last(), Last()).
type Ring struct {
	Offset int
	Size   int
}

// Last returns the index of the ring's bottom row and right column.
func (r Ring) Last() int {
	return r.Offset + r.Size - 1
}

// Single reports whether the ring has collapsed to one cell.
func (r Ring) Single() bool {
	return r.Size == 1
}

// Rings lists the rings of an n×n matrix, outermost first.
// Ring k has Offset k and Size n-2k; an odd n ends with a single-cell ring.
// Returns nil for n <= 0.
// Complexity: O(n).
func Rings(n int) []Ring {
	if n <= 0 {
		return nil
	}
	out := make([]Ring, 0, (n+1)/2)
	// iteration walks inward while currentSize (exclusive end) walks outward-in.
	for iteration, currentSize := 0, n; iteration < currentSize; iteration, currentSize = iteration+1, currentSize-1 {
		out = append(out, Ring{Offset: iteration, Size: currentSize - iteration})
	}

	return out
}
