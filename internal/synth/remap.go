package synth

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/interp"

	"github.com/mahmoud-neo/synthseis/internal/grid"
)

// RemapToDepth projects each time-domain synthetic trace back onto the
// original depth samples by evaluating a piecewise-linear interpolant of
// the trace at every depth sample's travel time. Travel times outside the
// time axis yield zero amplitude; that is expected boundary behavior, not
// an error.
func RemapToDepth(ctx context.Context, seisTime *grid.Grid, timeAxis grid.Axis, twt *grid.Grid, workers int) (*grid.Grid, error) {
	seisDepth := grid.New(twt.Ny, twt.Nx)
	tMin, tMax := timeAxis.Min(), timeAxis.Max()

	err := forEachTrace(ctx, twt.Nx, workers, func(ix int) error {
		var pl interp.PiecewiseLinear
		if err := pl.Fit(timeAxis, seisTime.Col(ix)); err != nil {
			return fmt.Errorf("remap: trace %d: fit interpolant: %w", ix, err)
		}
		for i := 0; i < twt.Ny; i++ {
			t := twt.At(i, ix)
			if t < tMin || t > tMax {
				continue // amplitude stays zero outside the record
			}
			seisDepth.Set(i, ix, pl.Predict(t))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seisDepth, nil
}
