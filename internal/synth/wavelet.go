package synth

import (
	"context"
	"fmt"
	"math"

	"github.com/mahmoud-neo/synthseis/internal/grid"
	"github.com/mahmoud-neo/synthseis/internal/units"
)

// Ricker generates a zero-phase Ricker wavelet sampled at dtS seconds with
// central frequency freqHz, truncated to durationS seconds. The support is
// an odd number of samples so the peak sits exactly on the center sample,
// which keeps the same-length convolution free of a half-sample shift.
func Ricker(durationS, dtS, freqHz float64) ([]float64, error) {
	if durationS <= 0 || dtS <= 0 {
		return nil, fmt.Errorf("wavelet: %w: duration=%g s, dt=%g s", ErrInvalidConfiguration, durationS, dtS)
	}
	if freqHz <= 0 {
		return nil, fmt.Errorf("wavelet: %w: frequency=%g Hz", ErrInvalidConfiguration, freqHz)
	}

	half := int(math.Floor(durationS / 2 / dtS))
	n := 2*half + 1
	w := make([]float64, n)
	for k := 0; k < n; k++ {
		t := float64(k-half) * dtS
		a := math.Pi * freqHz * t
		a *= a
		w[k] = (1 - 2*a) * math.Exp(-a)
	}
	return w, nil
}

// ConvolveSame convolves trace with kernel and truncates the result to the
// trace's length, centered so a unit spike reproduces the kernel peak at
// the spike's own position.
func ConvolveSame(trace, kernel []float64) []float64 {
	n := len(trace)
	lw := len(kernel)
	out := make([]float64, n)
	offset := (lw - 1) / 2

	for i := 0; i < n; i++ {
		// out[i] = full[i+offset] = sum_j trace[j] * kernel[i+offset-j]
		var sum float64
		jLo := i + offset - (lw - 1)
		if jLo < 0 {
			jLo = 0
		}
		jHi := i + offset
		if jHi > n-1 {
			jHi = n - 1
		}
		for j := jLo; j <= jHi; j++ {
			sum += trace[j] * kernel[i+offset-j]
		}
		out[i] = sum
	}
	return out
}

// Synthesize convolves every time-indexed reflectivity trace with a Ricker
// wavelet spanning the full record length, producing the synthetic seismic
// section in time. Durations and intervals arrive in milliseconds and are
// converted to seconds for wavelet generation.
func Synthesize(ctx context.Context, rcTime *grid.Grid, durationMs, dtMs, freqHz float64, workers int) (*grid.Grid, error) {
	wavelet, err := Ricker(durationMs*units.MsToS, dtMs*units.MsToS, freqHz)
	if err != nil {
		return nil, err
	}

	seisTime := grid.New(rcTime.Ny, rcTime.Nx)
	err = forEachTrace(ctx, rcTime.Nx, workers, func(ix int) error {
		seisTime.SetCol(ix, ConvolveSame(rcTime.Col(ix), wavelet))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seisTime, nil
}
