package synth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahmoud-neo/synthseis/internal/grid"
)

func TestScatterReflectivity_NearestBin(t *testing.T) {
	t.Parallel()

	axis := grid.Axis{0, 1, 2, 3, 4, 5}
	rc := grid.New(3, 1)
	twt := grid.New(3, 1)
	rc.Set(1, 0, 0.25)
	twt.Set(1, 0, 2.4) // nearest to bin 2
	rc.Set(2, 0, -0.5)
	twt.Set(2, 0, 3.6) // nearest to bin 4

	rcTime, err := ScatterReflectivity(context.Background(), rc, twt, axis, 1)
	require.NoError(t, err)

	assert.Equal(t, 6, rcTime.Ny)
	assert.Equal(t, 0.25, rcTime.At(2, 0))
	assert.Equal(t, -0.5, rcTime.At(4, 0))
	// All other bins stay zero: a scatter, not an accumulation.
	for _, i := range []int{0, 1, 3, 5} {
		assert.Zero(t, rcTime.At(i, 0), "bin %d", i)
	}
}

func TestScatterReflectivity_HalfwayTieGoesToLowerBin(t *testing.T) {
	t.Parallel()

	axis := grid.Axis{0, 1, 2}
	rc := grid.New(2, 1)
	twt := grid.New(2, 1)
	rc.Set(1, 0, 0.1)
	twt.Set(1, 0, 0.5) // exactly halfway between bins 0 and 1

	rcTime, err := ScatterReflectivity(context.Background(), rc, twt, axis, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.1, rcTime.At(0, 0))
	assert.Zero(t, rcTime.At(1, 0))
}

func TestScatterReflectivity_LastWriteWinsOnCollision(t *testing.T) {
	t.Parallel()

	axis := grid.Axis{0, 1, 2}
	rc := grid.New(3, 1)
	twt := grid.New(3, 1)
	// Both deeper samples land in bin 1; the deeper one overwrites.
	rc.Set(1, 0, 0.2)
	twt.Set(1, 0, 0.9)
	rc.Set(2, 0, 0.7)
	twt.Set(2, 0, 1.1)

	rcTime, err := ScatterReflectivity(context.Background(), rc, twt, axis, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.7, rcTime.At(1, 0))
}

func TestScatterReflectivity_OutOfRangeSamplesExcluded(t *testing.T) {
	t.Parallel()

	axis := grid.Axis{0, 1, 2, 3}
	rc := grid.New(2, 1)
	twt := grid.New(2, 1)
	rc.Set(1, 0, 0.9)
	twt.Set(1, 0, 3.4) // beyond the axis: skipped, never written

	rcTime, err := ScatterReflectivity(context.Background(), rc, twt, axis, 1)
	require.NoError(t, err)
	for _, v := range rcTime.Data {
		assert.Zero(t, v)
	}
}

func TestScatterReflectivity_RCZeroAtSurfaceOverwritesNothing(t *testing.T) {
	t.Parallel()

	// TWT[0]=0 maps RC[0]=0 into bin 0; the bin stays zero.
	axis := grid.Axis{0, 1}
	rc := grid.New(1, 2)
	twt := grid.New(1, 2)

	rcTime, err := ScatterReflectivity(context.Background(), rc, twt, axis, 2)
	require.NoError(t, err)
	for _, v := range rcTime.Data {
		assert.Zero(t, v)
	}
}
