// Package synth owns the seismic forward-modeling pipeline.
//
// Responsibilities: impedance and reflectivity computation, depth-to-time
// conversion, uniform time-axis construction, reflectivity scattering onto
// the time grid, Ricker wavelet convolution, and time-to-depth remapping.
// Key types: Pipeline, Result, ModelConfig.
//
// Dependency rule: synth may depend on grid and units, never on IO,
// rendering, or storage packages. No SQL/database code is allowed here.
package synth
