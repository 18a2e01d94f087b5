// SPDX-License-Identifier: MIT
// Package matrix: Grid is a square, row-major integer matrix storing its
// cells in a flat slice. It is the container filled by
// Spiral and mutated in place by the rotation routines.

package matrix

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
)

// gridErrorf wraps an underlying error with Grid method context.
func gridErrorf(method string, row, col int, err error) error {
	return errors.Wrapf(err, "Grid.%s(%d,%d)", method, row, col)
}

// Grid is an n×n matrix of int values.
// n is the side length; data holds n*n elements in row-major order.
type Grid struct {
	n    int   // side length
	data []int // flat backing storage, len == n*n
}

// NewGrid creates an n×n Grid initialized to zeros.
// Stage 1 (Validate): ensure n >= 0 and n*n fits in an int.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(n²) time and memory.
func NewGrid(n int) (*Grid, error) {
	if err := ValidateSize(n); err != nil {
		return nil, errors.Wrap(err, "NewGrid")
	}

	return &Grid{n: n, data: make([]int, n*n)}, nil
}

// FromRows builds a Grid from a slice of rows, copying the values.
// The input must be square; ragged input reports ErrRaggedRows before the
// squareness check.
// Complexity: O(n²).
func FromRows(rows [][]int) (*Grid, error) {
	if err := ValidateSquareRows(rows); err != nil {
		return nil, errors.Wrap(err, "FromRows")
	}
	n := len(rows)
	g := &Grid{n: n, data: make([]int, n*n)}
	for i := 0; i < n; i++ {
		copy(g.data[i*n:(i+1)*n], rows[i])
	}

	return g, nil
}

// Size returns the side length of the grid.
// Complexity: O(1).
func (g *Grid) Size() int {
	return g.n
}

// indexOf computes the flat index for (row, col). A nil receiver reports
// ErrNilGrid ahead of any range check.
func (g *Grid) indexOf(method string, row, col int) (int, error) {
	if g == nil {
		return 0, gridErrorf(method, row, col, ErrNilGrid)
	}
	if row < 0 || row >= g.n || col < 0 || col >= g.n {
		return 0, gridErrorf(method, row, col, ErrOutOfRange)
	}

	return row*g.n + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (g *Grid) At(row, col int) (int, error) {
	idx, err := g.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return g.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (g *Grid) Set(row, col, v int) error {
	idx, err := g.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	g.data[idx] = v

	return nil
}

// at and set are the unchecked accessors used by the ring kernels, whose
// indices are in range by construction.
func (g *Grid) at(row, col int) int { return g.data[row*g.n+col] }
func (g *Grid) set(row, col, v int) { g.data[row*g.n+col] = v }

func (g *Grid) swap(r1, c1, r2, c2 int) {
	a, b := r1*g.n+c1, r2*g.n+c2
	g.data[a], g.data[b] = g.data[b], g.data[a]
}

// Rows returns the grid as a freshly allocated slice of rows.
// Complexity: O(n²).
func (g *Grid) Rows() [][]int {
	out := make([][]int, g.n)
	for i := range out {
		out[i] = make([]int, g.n)
		copy(out[i], g.data[i*g.n:(i+1)*g.n])
	}

	return out
}

// Clone returns a deep copy of the grid.
// Complexity: O(n²).
func (g *Grid) Clone() *Grid {
	data := make([]int, len(g.data))
	copy(data, g.data)

	return &Grid{n: g.n, data: data}
}

// Equal reports whether g and other have the same size and cells.
// Two nil grids are equal.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.n != other.n {
		return false
	}
	for i := range g.data {
		if g.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer; one bracketed row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for i := 0; i < g.n; i++ {
		sb.WriteByte('[')
		for j := 0; j < g.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", g.data[i*g.n+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
