package synth

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/mahmoud-neo/synthseis/internal/grid"
	"github.com/mahmoud-neo/synthseis/internal/units"
)

// TravelTimes integrates each trace's depth increments over local velocity
// into a cumulative two-way-time column (milliseconds), and reduces the
// per-trace end times to the global maximum. The reduction is commutative
// and associative, so each worker writes only its own endpoint slot and the
// max is taken after the pool barrier; no shared accumulator is needed.
func TravelTimes(ctx context.Context, vp *grid.Grid, yAxis grid.Axis, workers int) (twt *grid.Grid, globalTmaxMs float64, err error) {
	twt = grid.New(vp.Ny, vp.Nx)
	endTimes := make([]float64, vp.Nx)

	err = forEachTrace(ctx, vp.Nx, workers, func(ix int) error {
		cum := 0.0
		for i := 1; i < vp.Ny; i++ {
			vel := vp.At(i, ix)
			if vel <= 0 {
				return fmt.Errorf("traveltime: trace %d sample %d: %w (vp=%g m/s)",
					ix, i, ErrNonPositiveVelocity, vel)
			}
			dz := math.Abs(yAxis[i] - yAxis[i-1])
			cum += units.TwoWayTimeMs(dz, vel)
			twt.Set(i, ix, cum)
		}
		endTimes[ix] = cum
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	if len(endTimes) == 0 {
		return twt, 0, nil
	}
	return twt, floats.Max(endTimes), nil
}
