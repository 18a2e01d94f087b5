// SPDX-License-Identifier: MIT

package matrix

import "github.com/go-faster/errors"

// swapper is the only capability the rotation kernels need.
// *Grid and rowsView both provide it, so [][]int rotates without a copy.
type swapper interface {
	swap(r1, c1, r2, c2 int)
}

// rowsView adapts a validated square [][]int to swapper.
type rowsView [][]int

func (v rowsView) swap(r1, c1, r2, c2 int) {
	v[r1][c1], v[r2][c2] = v[r2][c2], v[r1][c1]
}

// rotateRings applies one quarter turn in place, ring by ring.
//
// For ring r and every offset i in (r.Offset, r.Last()] the four cells
//
//	A = (first, i)       top row
//	B = (i, last)        right column
//	C = (last, mirror)   bottom row
//	D = (mirror, first)  left column
//
// with mirror = first+last-i form one cycle. Clockwise: A↔B, A↔C, A↔D
// leaves A=D, B=A, C=B, D=C. Counter-clockwise runs the swaps in reverse.
// Complexity: O(n²) time, O(1) extra space.
func rotateRings(m swapper, n int, clockwise bool, o *Options) {
	for _, r := range Rings(n) {
		if r.Single() {
			continue
		}
		o.visit("rotate", r)
		first, last := r.Offset, r.Last()
		for i := first + 1; i <= last; i++ {
			mirror := first + last - i
			if clockwise {
				m.swap(first, i, i, last)
				m.swap(first, i, last, mirror)
				m.swap(first, i, mirror, first)
			} else {
				m.swap(first, i, mirror, first)
				m.swap(first, i, last, mirror)
				m.swap(first, i, i, last)
			}
		}
	}
}

// RotateClockwise rotates g by 90° clockwise in place and returns g.
// No auxiliary matrix is allocated. 0×0 and 1×1 grids are unchanged.
//
// Errors: ErrNilGrid.
// Complexity: O(n²) time, O(1) extra space.
func RotateClockwise(g *Grid, opts ...Option) (*Grid, error) {
	return Rotate(g, 1, opts...)
}

// RotateCounterClockwise rotates g by 90° counter-clockwise in place and
// returns g.
func RotateCounterClockwise(g *Grid, opts ...Option) (*Grid, error) {
	return Rotate(g, -1, opts...)
}

// Rotate turns g by quarterTurns × 90° in place and returns g.
// Positive turns are clockwise, negative counter-clockwise; the count is
// reduced mod 4, so at most two ring passes run.
func Rotate(g *Grid, quarterTurns int, opts ...Option) (*Grid, error) {
	if err := ValidateGrid(g); err != nil {
		return nil, errors.Wrap(err, "Rotate")
	}
	o := gatherOptions(opts...)
	applyTurns(g, g.n, quarterTurns, &o)

	return g, nil
}

// RotateRows rotates a square [][]int by 90° clockwise in place and returns
// the same slice.
//
// Errors: ErrRaggedRows, ErrNonSquare.
func RotateRows(rows [][]int, opts ...Option) ([][]int, error) {
	return RotateRowsBy(rows, 1, opts...)
}

// RotateRowsBy is Rotate for a square [][]int.
func RotateRowsBy(rows [][]int, quarterTurns int, opts ...Option) ([][]int, error) {
	if err := ValidateSquareRows(rows); err != nil {
		return nil, errors.Wrap(err, "RotateRows")
	}
	o := gatherOptions(opts...)
	applyTurns(rowsView(rows), len(rows), quarterTurns, &o)

	return rows, nil
}

// applyTurns normalises quarterTurns into [0, 4) and runs the cheapest
// sequence of ring passes.
func applyTurns(m swapper, n, quarterTurns int, o *Options) {
	switch ((quarterTurns % 4) + 4) % 4 {
	case 1:
		rotateRings(m, n, true, o)
	case 2:
		rotateRings(m, n, true, o)
		rotateRings(m, n, true, o)
	case 3:
		rotateRings(m, n, false, o)
	}
}
