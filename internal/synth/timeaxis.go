package synth

import (
	"fmt"
	"math"

	"github.com/mahmoud-neo/synthseis/internal/grid"
)

// UniformTimeAxis builds the shared time axis: evenly spaced samples of
// interval dtMs from zero up to globalTmaxMs plus one step of margin, so
// the slowest trace's final reflector still lands on the axis.
func UniformTimeAxis(globalTmaxMs, dtMs float64) (grid.Axis, error) {
	if dtMs <= 0 {
		return nil, fmt.Errorf("timeaxis: %w: dt=%g ms", ErrInvalidConfiguration, dtMs)
	}
	if globalTmaxMs < 0 {
		return nil, fmt.Errorf("timeaxis: %w: global tmax=%g ms", ErrInvalidConfiguration, globalTmaxMs)
	}

	nt := int(math.Floor((globalTmaxMs+dtMs)/dtMs)) + 1
	axis := make(grid.Axis, nt)
	for k := range axis {
		axis[k] = float64(k) * dtMs
	}
	return axis, nil
}
