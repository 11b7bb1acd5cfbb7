// Package gridio supplies the input grids for the modeling pipeline. The
// canonical source is four headerless CSV files carrying the co-registered
// X, Y, velocity and density grids (one spreadsheet-style table each).
package gridio

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/mahmoud-neo/synthseis/internal/grid"
)

// CSVSource loads the four model grids from CSV files.
type CSVSource struct {
	XPath    string
	YPath    string
	VPPath   string
	RHOBPath string
}

// Grids loads and validates the four grids. All must share the same shape;
// the velocity and density files must parse as numbers in every cell.
// If the depth axis descends, all depth-indexed grids are reversed so the
// pipeline always sees depth ascending along rows.
func (s *CSVSource) Grids(ctx context.Context) (x, y, vp, rhob *grid.Grid, err error) {
	type entry struct {
		name string
		path string
		dst  **grid.Grid
	}
	files := []entry{
		{"X", s.XPath, &x},
		{"Y", s.YPath, &y},
		{"VP", s.VPPath, &vp},
		{"RHOB", s.RHOBPath, &rhob},
	}
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, nil, nil, nil, err
		}
		g, err := LoadCSVGrid(f.path)
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("%s grid: %w", f.name, err)
		}
		*f.dst = g
	}
	if err := grid.CheckShapes(x, y, vp, rhob); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("input grids: %w", err)
	}
	NormalizeDepth(x, y, vp, rhob)
	return x, y, vp, rhob, nil
}

// LoadCSVGrid reads one headerless CSV table into a Grid. Every row must
// have the same number of fields; parse failures report the offending cell.
func LoadCSVGrid(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 0 // enforce a rectangular table
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, fmt.Errorf("read %s: empty grid", path)
	}

	g := grid.New(len(records), len(records[0]))
	for i, row := range records {
		for j, cell := range row {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("parse %s row %d col %d: %w", path, i+1, j+1, err)
			}
			g.Set(i, j, v)
		}
	}
	return g, nil
}

// NormalizeDepth reverses the row order of all grids when the depth axis
// descends, so the top of the model is always at row zero. Grids delivered
// with depth already ascending are left untouched.
func NormalizeDepth(x, y, vp, rhob *grid.Grid) {
	if !grid.YAxisFrom(y).Descending() {
		return
	}
	for _, g := range []*grid.Grid{x, y, vp, rhob} {
		g.ReverseRows()
	}
}

// StaticSource wraps in-memory grids behind the GridSource seam. Useful for
// tests and embedded callers that already hold the model.
type StaticSource struct {
	X, Y, VP, RHOB *grid.Grid
}

// Grids returns the wrapped grids after shape validation.
func (s *StaticSource) Grids(ctx context.Context) (x, y, vp, rhob *grid.Grid, err error) {
	if err := grid.CheckShapes(s.X, s.Y, s.VP, s.RHOB); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("input grids: %w", err)
	}
	return s.X, s.Y, s.VP, s.RHOB, nil
}
