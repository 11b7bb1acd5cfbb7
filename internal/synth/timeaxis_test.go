package synth

import (
	"errors"
	"testing"
)

func TestUniformTimeAxis(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		tmax   float64
		dt     float64
		wantNt int
	}{
		{"covers tmax plus one step", 1.0, 0.5, 4},
		{"zero tmax still yields two samples", 0, 0.02, 2},
		{"non-integral ratio floors", 1.01, 0.25, 6},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			axis, err := UniformTimeAxis(tc.tmax, tc.dt)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(axis) != tc.wantNt {
				t.Fatalf("nt = %d, want %d", len(axis), tc.wantNt)
			}
			if axis[0] != 0 {
				t.Fatalf("axis must start at zero, got %g", axis[0])
			}
			if axis.Max() < tc.tmax {
				t.Fatalf("axis max %g does not cover tmax %g", axis.Max(), tc.tmax)
			}
			for k := 1; k < len(axis); k++ {
				if got := axis[k] - axis[k-1]; got != tc.dt {
					t.Fatalf("step %d = %g, want %g", k, got, tc.dt)
				}
			}
		})
	}
}

func TestUniformTimeAxis_InvalidConfiguration(t *testing.T) {
	t.Parallel()

	if _, err := UniformTimeAxis(10.0, 0); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("dt=0: got %v, want ErrInvalidConfiguration", err)
	}
	if _, err := UniformTimeAxis(10.0, -0.5); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("dt<0: got %v, want ErrInvalidConfiguration", err)
	}
}
