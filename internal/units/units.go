// Package units provides shared conversion constants for the physical
// quantities carried through the modeling pipeline.
package units

// Conversion factors. Impedance follows the convention of the source
// models: velocity in km/s times density in g/m³.
const (
	// MPSToKMPS converts velocity from m/s to km/s.
	MPSToKMPS = 1e-3

	// KGM3ToGM3 converts density from kg/m³ to g/m³.
	KGM3ToGM3 = 1e3

	// MsToS converts milliseconds to seconds.
	MsToS = 1e-3

	// SToMs converts seconds to milliseconds.
	SToMs = 1e3
)

// TwoWayTimeMs returns the two-way travel time in milliseconds through a
// layer of thickness dz meters at velocity vel m/s.
func TwoWayTimeMs(dz, vel float64) float64 {
	return 2.0 * dz / vel * SToMs
}
