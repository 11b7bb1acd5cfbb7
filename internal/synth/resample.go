package synth

import (
	"context"
	"math"

	"github.com/mahmoud-neo/synthseis/internal/grid"
)

// ScatterReflectivity maps each trace's depth-indexed reflection
// coefficients onto the shared uniform time axis by nearest-sample
// assignment. The axis is uniform, so the nearest bin is computed
// arithmetically instead of searching; a sample exactly halfway between two
// bins goes to the lower one. Samples whose travel time falls outside the
// axis are skipped, and unwritten bins stay zero.
//
// When two depth samples land in the same bin the later (deeper) sample
// overwrites the earlier one. This scatter is not energy-preserving under
// collisions; it matches the established model behavior, which assumes the
// sampling interval is fine relative to local travel-time gradients.
func ScatterReflectivity(ctx context.Context, rc, twt *grid.Grid, timeAxis grid.Axis, workers int) (*grid.Grid, error) {
	nt := len(timeAxis)
	rcTime := grid.New(nt, rc.Nx)
	dt := timeAxis[1] - timeAxis[0]
	tMax := timeAxis.Max()

	err := forEachTrace(ctx, rc.Nx, workers, func(ix int) error {
		for i := 0; i < rc.Ny; i++ {
			t := twt.At(i, ix)
			if t < 0 || t > tMax {
				continue
			}
			idx := nearestBin(t, dt)
			if idx < 0 || idx >= nt {
				continue
			}
			rcTime.Set(idx, ix, rc.At(i, ix))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rcTime, nil
}

// nearestBin returns the index of the axis sample closest to t, with exact
// half-interval ties resolved toward the lower index.
func nearestBin(t, dt float64) int {
	q := t / dt
	lo := math.Floor(q)
	idx := int(lo)
	if q-lo > 0.5 {
		idx++
	}
	return idx
}
