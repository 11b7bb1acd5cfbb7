package gridio

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahmoud-neo/synthseis/internal/grid"
)

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCSVGrid(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeCSV(t, dir, "vp.csv", "1500,1600\n1700,1800\n1900,2000\n")

	g, err := LoadCSVGrid(path)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Ny)
	assert.Equal(t, 2, g.Nx)
	assert.Equal(t, 1500.0, g.At(0, 0))
	assert.Equal(t, 2000.0, g.At(2, 1))
}

func TestLoadCSVGrid_ParseErrorNamesCell(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeCSV(t, dir, "bad.csv", "1,2\n3,oops\n")

	_, err := LoadCSVGrid(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "col 2")
}

func TestLoadCSVGrid_RaggedRowsRejected(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeCSV(t, dir, "ragged.csv", "1,2,3\n4,5\n")

	_, err := LoadCSVGrid(path)
	require.Error(t, err)
}

func TestCSVSource_LoadsAndValidates(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := &CSVSource{
		XPath:    writeCSV(t, dir, "x.csv", "0,10\n0,10\n"),
		YPath:    writeCSV(t, dir, "y.csv", "0,0\n5,5\n"),
		VPPath:   writeCSV(t, dir, "vp.csv", "1500,1500\n1800,1800\n"),
		RHOBPath: writeCSV(t, dir, "rhob.csv", "1000,1000\n1200,1200\n"),
	}

	x, y, vp, rhob, err := src.Grids(context.Background())
	require.NoError(t, err)
	require.NoError(t, grid.CheckShapes(x, y, vp, rhob))
	assert.Equal(t, 1800.0, vp.At(1, 0))
}

func TestCSVSource_ShapeMismatchRejected(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := &CSVSource{
		XPath:    writeCSV(t, dir, "x.csv", "0,10\n0,10\n"),
		YPath:    writeCSV(t, dir, "y.csv", "0,0\n5,5\n"),
		VPPath:   writeCSV(t, dir, "vp.csv", "1500,1500\n"),
		RHOBPath: writeCSV(t, dir, "rhob.csv", "1000,1000\n1200,1200\n"),
	}

	_, _, _, _, err := src.Grids(context.Background())
	require.Error(t, err)
}

func TestCSVSource_NormalizesDescendingDepth(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := &CSVSource{
		XPath:    writeCSV(t, dir, "x.csv", "0,10\n0,10\n"),
		YPath:    writeCSV(t, dir, "y.csv", "5,5\n0,0\n"),
		VPPath:   writeCSV(t, dir, "vp.csv", "1800,1800\n1500,1500\n"),
		RHOBPath: writeCSV(t, dir, "rhob.csv", "1200,1200\n1000,1000\n"),
	}

	_, y, vp, _, err := src.Grids(context.Background())
	require.NoError(t, err)
	assert.True(t, grid.YAxisFrom(y).Ascending(), "depth must ascend after normalization")
	assert.Equal(t, 1500.0, vp.At(0, 0), "velocity rows flipped with the axis")
	assert.Equal(t, 1800.0, vp.At(1, 0))
}

func TestStaticSource(t *testing.T) {
	t.Parallel()

	g := func(v float64) *grid.Grid {
		out := grid.New(2, 2)
		for i := range out.Data {
			out.Data[i] = v
		}
		return out
	}

	src := &StaticSource{X: g(0), Y: g(1), VP: g(1500), RHOB: g(1000)}
	_, _, vp, _, err := src.Grids(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1500.0, vp.At(1, 1))

	src.RHOB = grid.New(3, 2)
	_, _, _, _, err = src.Grids(context.Background())
	require.Error(t, err)
}
