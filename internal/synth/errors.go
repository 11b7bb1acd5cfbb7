package synth

import "errors"

// Sentinel errors returned by the pipeline stages. All are fatal for the
// run; the wrapping message names the stage and, where applicable, the
// trace and sample index.
var (
	// ErrShapeMismatch indicates the input grids disagree in shape.
	ErrShapeMismatch = errors.New("input grid shape mismatch")

	// ErrNonPositiveInput indicates a velocity or density sample <= 0,
	// which would make impedance non-positive and the reflection-
	// coefficient ratio undefined.
	ErrNonPositiveInput = errors.New("non-positive velocity or density sample")

	// ErrNonPositiveVelocity indicates a velocity sample <= 0 during
	// travel-time integration.
	ErrNonPositiveVelocity = errors.New("non-positive velocity sample")

	// ErrInvalidConfiguration indicates a non-positive sampling interval
	// or wavelet frequency.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
