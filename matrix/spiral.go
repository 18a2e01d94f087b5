// SPDX-License-Identifier: MIT

package matrix

import "github.com/go-faster/errors"

// Spiral builds a size×size grid holding 1..size² in clockwise spiral order,
// starting at the top-left cell.
//
// Algorithm Outline:
//  1. Walk the rings outermost first (see Rings).
//  2. A collapsed ring writes its single cell.
//  3. Otherwise fill, each pass stopping one short of the next corner:
//     top row left→right, right column top→bottom,
//     bottom row right→left, left column bottom→top.
//
// Every cell is written exactly once. size == 0 yields an empty grid.
//
// Errors: ErrNegativeSize, ErrSizeTooLarge.
// Complexity: O(size²) time, O(size²) memory.
func Spiral(size int, opts ...Option) (*Grid, error) {
	if err := ValidateSize(size); err != nil {
		return nil, errors.Wrap(err, "Spiral")
	}
	o := gatherOptions(opts...)
	g := &Grid{n: size, data: make([]int, size*size)}

	counter := 0
	next := func() int {
		counter++
		return counter
	}
	for _, r := range Rings(size) {
		o.visit("spiral", r)
		if r.Single() {
			g.set(r.Offset, r.Offset, next())
			continue
		}
		first, last := r.Offset, r.Last()
		for c := first; c < last; c++ {
			g.set(first, c, next())
		}
		for row := first; row < last; row++ {
			g.set(row, last, next())
		}
		for c := last; c > first; c-- {
			g.set(last, c, next())
		}
		for row := last; row > first; row-- {
			g.set(row, first, next())
		}
	}

	return g, nil
}

// SpiralRows is Spiral returning plain rows.
func SpiralRows(size int, opts ...Option) ([][]int, error) {
	g, err := Spiral(size, opts...)
	if err != nil {
		return nil, err
	}

	return g.Rows(), nil
}

// SpiralOrder reads g in the same clockwise spiral walk Spiral writes, so
// SpiralOrder(Spiral(n)) is 1..n².
// Complexity: O(n²).
func SpiralOrder(g *Grid) ([]int, error) {
	if err := ValidateGrid(g); err != nil {
		return nil, errors.Wrap(err, "SpiralOrder")
	}
	out := make([]int, 0, len(g.data))
	for _, r := range Rings(g.n) {
		if r.Single() {
			out = append(out, g.at(r.Offset, r.Offset))
			continue
		}
		first, last := r.Offset, r.Last()
		for c := first; c < last; c++ {
			out = append(out, g.at(first, c))
		}
		for row := first; row < last; row++ {
			out = append(out, g.at(row, last))
		}
		for c := last; c > first; c-- {
			out = append(out, g.at(last, c))
		}
		for row := last; row > first; row-- {
			out = append(out, g.at(row, first))
		}
	}

	return out, nil
}
