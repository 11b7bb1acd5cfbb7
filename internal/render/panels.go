// Package render draws the four output panels of a modeling run: impedance
// in depth, reflectivity on the time grid, synthetic seismic in time, and
// synthetic seismic in depth.
package render

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/mahmoud-neo/synthseis/internal/grid"
	"github.com/mahmoud-neo/synthseis/internal/synth"
)

// PanelPNG renders each panel as a PNG heatmap under OutDir.
type PanelPNG struct {
	OutDir string
}

// NewPanelPNG creates a PNG renderer writing into outDir.
func NewPanelPNG(outDir string) *PanelPNG {
	return &PanelPNG{OutDir: outDir}
}

// panel describes one output image.
type panel struct {
	file      string
	title     string
	yLabel    string
	g         *grid.Grid
	ys        grid.Axis
	diverging bool
}

// Render writes the four panels. Amplitude panels use a diverging palette
// centered on zero; impedance uses a sequential one.
func (r *PanelPNG) Render(res *synth.Result) error {
	if err := os.MkdirAll(r.OutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	panels := []panel{
		{"ai.png", "P-wave Impedance", "Depth (m)", res.AI, res.YAxis, false},
		{"rc_time.png", "RC Data on Full Time Grid", "Two-Way Time (ms)", res.RCTime, res.TimeAxis, true},
		{"seis_time.png", "Seismic in Time Domain", "Two-Way Time (ms)", res.SeisTime, res.TimeAxis, true},
		{"seis_depth.png", "Seismic in Depth Domain", "Depth (m)", res.SeisDepth, res.YAxis, true},
	}

	for _, pn := range panels {
		if err := r.renderPanel(pn, res.XAxis); err != nil {
			return fmt.Errorf("panel %s: %w", pn.file, err)
		}
	}
	return nil
}

func (r *PanelPNG) renderPanel(pn panel, xs grid.Axis) error {
	p := plot.New()
	p.Title.Text = pn.title
	p.X.Label.Text = "X Distance"
	p.Y.Label.Text = pn.yLabel

	hm := plotter.NewHeatMap(panelGrid{g: pn.g, xs: xs, ys: pn.ys}, panelPalette(pn))
	p.Add(hm)

	out := filepath.Join(r.OutDir, pn.file)
	if err := p.Save(10*vg.Inch, 6*vg.Inch, out); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}

// panelPalette picks the color map for a panel. Diverging panels get a
// blue-red map symmetric about zero so positive and negative amplitudes
// carry equal visual weight.
func panelPalette(pn panel) palette.Palette {
	lo, hi := gridRange(pn.g)
	const colors = 255
	if pn.diverging {
		a := math.Max(math.Abs(lo), math.Abs(hi))
		if a == 0 {
			a = 1
		}
		cm := moreland.SmoothBlueRed()
		cm.SetMin(-a)
		cm.SetMax(a)
		return cm.Palette(colors)
	}
	if hi <= lo {
		hi = lo + 1
	}
	cm := moreland.Kindlmann()
	cm.SetMin(lo)
	cm.SetMax(hi)
	return cm.Palette(colors)
}

func gridRange(g *grid.Grid) (lo, hi float64) {
	lo, hi = g.Data[0], g.Data[0]
	for _, v := range g.Data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// panelGrid adapts a grid plus its axes to plotter.GridXYZ. Row 0 of the
// grid is the shallowest sample, so depth panels plot with depth increasing
// up the page; interpretation displays usually flip this, which is a
// styling concern left to the consumer.
type panelGrid struct {
	g      *grid.Grid
	xs, ys grid.Axis
}

func (p panelGrid) Dims() (c, r int)   { return p.g.Nx, p.g.Ny }
func (p panelGrid) Z(c, r int) float64 { return p.g.At(r, c) }
func (p panelGrid) X(c int) float64    { return p.xs[c] }
func (p panelGrid) Y(r int) float64    { return p.ys[r] }
