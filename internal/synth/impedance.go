package synth

import (
	"context"
	"fmt"

	"github.com/mahmoud-neo/synthseis/internal/grid"
	"github.com/mahmoud-neo/synthseis/internal/units"
)

// Impedance converts velocity (m/s) and density (kg/m³) grids into
// acoustic impedance (km/s · g/m³) and normal-incidence reflection
// coefficients. RC[0] is zero for every trace: there is no reflector above
// the first sample. Any non-positive velocity or density sample aborts the
// run, since it would make the impedance ratio undefined downstream.
func Impedance(ctx context.Context, vp, rhob *grid.Grid, workers int) (ai, rc *grid.Grid, err error) {
	ai = grid.New(vp.Ny, vp.Nx)
	rc = grid.New(vp.Ny, vp.Nx)

	err = forEachTrace(ctx, vp.Nx, workers, func(ix int) error {
		for i := 0; i < vp.Ny; i++ {
			v := vp.At(i, ix)
			r := rhob.At(i, ix)
			if v <= 0 || r <= 0 {
				return fmt.Errorf("impedance: trace %d sample %d: %w (vp=%g m/s, rhob=%g kg/m³)",
					ix, i, ErrNonPositiveInput, v, r)
			}
			ai.Set(i, ix, v*units.MPSToKMPS*r*units.KGM3ToGM3)
		}
		for i := 1; i < vp.Ny; i++ {
			upper := ai.At(i-1, ix)
			lower := ai.At(i, ix)
			rc.Set(i, ix, (lower-upper)/(lower+upper))
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return ai, rc, nil
}
