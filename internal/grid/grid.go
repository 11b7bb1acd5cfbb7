// Package grid provides the dense 2-D grid and axis types shared by the
// forward-modeling pipeline. A Grid is a row-major arena: ny depth (or time)
// samples by nx traces, backed by a single flat slice so per-trace workers
// can write disjoint columns without locking.
package grid

import "fmt"

// Grid is a dense 2-D array of float64 samples. Rows index the vertical
// dimension (depth or time sample), columns index the trace.
type Grid struct {
	Ny, Nx int
	Data   []float64 // len = Ny * Nx, row-major
}

// New allocates a zeroed Grid of ny rows by nx columns.
func New(ny, nx int) *Grid {
	return &Grid{Ny: ny, Nx: nx, Data: make([]float64, ny*nx)}
}

// Idx maps (row i, trace ix) to the flat slice index.
func (g *Grid) Idx(i, ix int) int { return i*g.Nx + ix }

// At returns the sample at row i, trace ix.
func (g *Grid) At(i, ix int) float64 { return g.Data[i*g.Nx+ix] }

// Set writes the sample at row i, trace ix.
func (g *Grid) Set(i, ix int, v float64) { g.Data[i*g.Nx+ix] = v }

// Col copies trace ix into a new slice of length Ny.
func (g *Grid) Col(ix int) []float64 {
	col := make([]float64, g.Ny)
	for i := 0; i < g.Ny; i++ {
		col[i] = g.Data[i*g.Nx+ix]
	}
	return col
}

// SetCol writes a full column into trace ix.
func (g *Grid) SetCol(ix int, col []float64) {
	for i := 0; i < g.Ny; i++ {
		g.Data[i*g.Nx+ix] = col[i]
	}
}

// SameShape reports whether g and o have identical dimensions.
func (g *Grid) SameShape(o *Grid) bool {
	return g.Ny == o.Ny && g.Nx == o.Nx
}

// Row returns a view of row i (shared backing array, do not mutate unless
// the grid is still under construction).
func (g *Grid) Row(i int) []float64 {
	return g.Data[i*g.Nx : (i+1)*g.Nx]
}

// Axis is an ordered sequence of coordinate values labelling one grid
// dimension.
type Axis []float64

// Min returns the first value. Axes produced by this package are ascending.
func (a Axis) Min() float64 { return a[0] }

// Max returns the last value.
func (a Axis) Max() float64 { return a[len(a)-1] }

// Ascending reports whether the axis is strictly increasing.
func (a Axis) Ascending() bool {
	for i := 1; i < len(a); i++ {
		if a[i] <= a[i-1] {
			return false
		}
	}
	return true
}

// Descending reports whether the axis is strictly decreasing.
func (a Axis) Descending() bool {
	for i := 1; i < len(a); i++ {
		if a[i] >= a[i-1] {
			return false
		}
	}
	return true
}

// XAxisFrom extracts the lateral axis from the first row of a coordinate
// grid (every row of X carries the same lateral positions).
func XAxisFrom(x *Grid) Axis {
	ax := make(Axis, x.Nx)
	copy(ax, x.Row(0))
	return ax
}

// YAxisFrom extracts the vertical axis from the first column of a
// coordinate grid.
func YAxisFrom(y *Grid) Axis {
	ax := make(Axis, y.Ny)
	for i := 0; i < y.Ny; i++ {
		ax[i] = y.At(i, 0)
	}
	return ax
}

// ReverseRows flips a grid upside down in place. Used to normalize models
// delivered with depth decreasing along rows.
func (g *Grid) ReverseRows() {
	for i, j := 0, g.Ny-1; i < j; i, j = i+1, j-1 {
		ri, rj := g.Row(i), g.Row(j)
		for k := range ri {
			ri[k], rj[k] = rj[k], ri[k]
		}
	}
}

// CheckShapes verifies that all grids share the shape of the first.
// The returned error names the offending grid by position.
func CheckShapes(grids ...*Grid) error {
	if len(grids) == 0 {
		return nil
	}
	ref := grids[0]
	for n, g := range grids[1:] {
		if !ref.SameShape(g) {
			return fmt.Errorf("grid %d shape (%d,%d) does not match (%d,%d)",
				n+1, g.Ny, g.Nx, ref.Ny, ref.Nx)
		}
	}
	return nil
}
