package synth

import (
	"context"
	"fmt"
	"log"

	"gonum.org/v1/gonum/floats"

	"github.com/mahmoud-neo/synthseis/internal/grid"
)

// GridSource supplies the four co-registered input grids: lateral
// coordinates, depth coordinates, velocity (m/s) and density (kg/m³), all
// of identical shape with depth ascending along rows.
type GridSource interface {
	Grids(ctx context.Context) (x, y, vp, rhob *grid.Grid, err error)
}

// Renderer consumes a completed Result, e.g. to draw panels or export a
// report.
type Renderer interface {
	Render(res *Result) error
}

// Result holds every grid the pipeline produces along with the axes needed
// to label them. All grids are immutable once Run returns.
type Result struct {
	XAxis    grid.Axis // lateral position, length nx
	YAxis    grid.Axis // depth (m), length ny
	TimeAxis grid.Axis // two-way time (ms), length nt

	AI        *grid.Grid // impedance, depth-indexed
	RC        *grid.Grid // reflection coefficients, depth-indexed
	TWT       *grid.Grid // two-way time (ms), depth-indexed
	RCTime    *grid.Grid // reflection coefficients on the time axis
	SeisTime  *grid.Grid // synthetic seismic, time-indexed
	SeisDepth *grid.Grid // synthetic seismic, depth-indexed

	GlobalTmaxMs float64
}

// Nt returns the shared time-axis length.
func (r *Result) Nt() int { return len(r.TimeAxis) }

// AmplitudeRange returns the min and max of the time-domain synthetic.
func (r *Result) AmplitudeRange() (lo, hi float64) {
	return floats.Min(r.SeisTime.Data), floats.Max(r.SeisTime.Data)
}

// Pipeline runs the forward-modeling stages in order: impedance and
// reflectivity, travel-time integration, time-axis construction,
// reflectivity scattering, wavelet convolution, and depth remapping.
type Pipeline struct {
	cfg *ModelConfig
}

// NewPipeline creates a Pipeline with the given tuning. A nil config uses
// all defaults.
func NewPipeline(cfg *ModelConfig) *Pipeline {
	if cfg == nil {
		cfg = EmptyModelConfig()
	}
	return &Pipeline{cfg: cfg}
}

// Run executes the full depth-to-time-to-depth pipeline over the supplied
// grids. Configuration and shape problems are rejected before any grid
// computation begins. Stages after the travel-time barrier are per-trace
// and independent; cancellation is honored between traces.
func (p *Pipeline) Run(ctx context.Context, x, y, vp, rhob *grid.Grid) (*Result, error) {
	if err := p.cfg.Validate(); err != nil {
		return nil, err
	}
	dt := p.cfg.GetDtMs()
	freq := p.cfg.GetWaveletFrequencyHz()
	workers := p.cfg.GetWorkers()

	if err := grid.CheckShapes(x, y, vp, rhob); err != nil {
		return nil, fmt.Errorf("pipeline: %w: %v", ErrShapeMismatch, err)
	}
	if vp.Ny < 2 {
		return nil, fmt.Errorf("pipeline: %w: need at least 2 depth samples, got %d", ErrShapeMismatch, vp.Ny)
	}

	res := &Result{
		XAxis: grid.XAxisFrom(x),
		YAxis: grid.YAxisFrom(y),
	}

	var err error
	if res.AI, res.RC, err = Impedance(ctx, vp, rhob, workers); err != nil {
		return nil, err
	}

	// Global barrier: every trace's end time must be known before the
	// shared axis length can be fixed.
	if res.TWT, res.GlobalTmaxMs, err = TravelTimes(ctx, vp, res.YAxis, workers); err != nil {
		return nil, err
	}
	log.Printf("pipeline: global max TWT across %d traces = %.2f ms", vp.Nx, res.GlobalTmaxMs)

	if res.TimeAxis, err = UniformTimeAxis(res.GlobalTmaxMs, dt); err != nil {
		return nil, err
	}
	log.Printf("pipeline: dt = %g ms, time axis length = %d", dt, res.Nt())

	if res.RCTime, err = ScatterReflectivity(ctx, res.RC, res.TWT, res.TimeAxis, workers); err != nil {
		return nil, err
	}

	durationMs := res.GlobalTmaxMs + dt
	if res.SeisTime, err = Synthesize(ctx, res.RCTime, durationMs, dt, freq, workers); err != nil {
		return nil, err
	}

	if res.SeisDepth, err = RemapToDepth(ctx, res.SeisTime, res.TimeAxis, res.TWT, workers); err != nil {
		return nil, err
	}

	return res, nil
}

// RunFromSource pulls the input grids from src and runs the pipeline.
func (p *Pipeline) RunFromSource(ctx context.Context, src GridSource) (*Result, error) {
	x, y, vp, rhob, err := src.Grids(ctx)
	if err != nil {
		return nil, fmt.Errorf("pipeline: load grids: %w", err)
	}
	return p.Run(ctx, x, y, vp, rhob)
}
