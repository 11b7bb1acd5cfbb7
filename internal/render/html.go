package render

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/mahmoud-neo/synthseis/internal/grid"
	"github.com/mahmoud-neo/synthseis/internal/synth"
)

// viridis-style ramp for sequential panels.
var sequentialColors = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// blue-white-red ramp for amplitude panels.
var divergingColors = []string{"#313695", "#74add1", "#e0f3f8", "#ffffff", "#fee090", "#f46d43", "#a50026"}

// PanelHTML renders all four panels as echarts heatmaps on a single HTML
// page. Large grids are downsampled by stride to keep the page payload
// manageable.
type PanelHTML struct {
	OutPath   string
	MaxPoints int // per chart; default 20000
}

// NewPanelHTML creates an HTML renderer writing the report to outPath.
func NewPanelHTML(outPath string) *PanelHTML {
	return &PanelHTML{OutPath: outPath, MaxPoints: 20000}
}

// Render assembles the report page and writes it to OutPath.
func (r *PanelHTML) Render(res *synth.Result) error {
	maxPoints := r.MaxPoints
	if maxPoints <= 0 {
		maxPoints = 20000
	}

	page := components.NewPage()
	page.PageTitle = "Synthetic Seismic Modeling"
	page.AddCharts(
		r.heatmap("P-wave Impedance", "Depth (m)", res.AI, res.XAxis, res.YAxis, false, maxPoints),
		r.heatmap("RC Data on Full Time Grid", "Two-Way Time (ms)", res.RCTime, res.XAxis, res.TimeAxis, true, maxPoints),
		r.heatmap("Seismic in Time Domain", "Two-Way Time (ms)", res.SeisTime, res.XAxis, res.TimeAxis, true, maxPoints),
		r.heatmap("Seismic in Depth Domain", "Depth (m)", res.SeisDepth, res.XAxis, res.YAxis, true, maxPoints),
	)

	if dir := filepath.Dir(r.OutPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
	}
	f, err := os.Create(r.OutPath)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

func (r *PanelHTML) heatmap(title, yName string, g *grid.Grid, xs, ys grid.Axis, diverging bool, maxPoints int) *charts.HeatMap {
	// Downsample by stride so rows*cols stays within maxPoints.
	stride := 1
	for (g.Ny/stride)*(g.Nx/stride) > maxPoints {
		stride++
	}

	var xLabels, yLabels []string
	for ix := 0; ix < g.Nx; ix += stride {
		xLabels = append(xLabels, fmt.Sprintf("%.0f", xs[ix]))
	}
	for i := 0; i < g.Ny; i += stride {
		yLabels = append(yLabels, fmt.Sprintf("%.2f", ys[i]))
	}

	lo, hi := gridRange(g)
	colors := sequentialColors
	if diverging {
		a := math.Max(math.Abs(lo), math.Abs(hi))
		if a == 0 {
			a = 1
		}
		lo, hi = -a, a
		colors = divergingColors
	}

	data := make([]opts.HeatMapData, 0, len(xLabels)*len(yLabels))
	for yi, i := 0, 0; i < g.Ny; yi, i = yi+1, i+stride {
		for xi, ix := 0, 0; ix < g.Nx; xi, ix = xi+1, ix+stride {
			data = append(data, opts.HeatMapData{Value: [3]interface{}{xi, yi, g.At(i, ix)}})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%dx%d grid, stride=%d", g.Ny, g.Nx, stride),
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Name: "X Distance"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Name: yName, Data: yLabels}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        float32(lo),
			Max:        float32(hi),
			InRange:    &opts.VisualMapInRange{Color: colors},
		}),
	)
	hm.SetXAxis(xLabels).AddSeries("amplitude", data)
	hm.SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return hm
}
