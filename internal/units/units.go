// Package units converts between physical (SI) and display (pixel) lengths,
// and between exoplanet-catalog units and SI.
package units

import (
	"fmt"
	"math"
)

// Physical constants used as bridge units.
const (
	// AUMeters is one astronomical unit in meters.
	AUMeters = 149.6e9

	// SolarMassKg is one solar mass in kilograms.
	SolarMassKg = 1.989e30

	// SolarRadiusM is one solar radius in meters.
	SolarRadiusM = 6.957e8

	// EarthMassKg is one earth mass in kilograms.
	EarthMassKg = 5.972e24

	// EarthRadiusM is one earth radius in meters.
	EarthRadiusM = 6.371e6

	// SecondsPerDay converts catalog orbital periods (days) to seconds.
	SecondsPerDay = 86400.0
)

// ConfigurationError reports a display scale that cannot be used for
// conversion. Scale is pixels per AU and must be a finite positive number.
type ConfigurationError struct {
	Scale float64
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("units: invalid display scale %v px/AU (must be finite and positive)", e.Scale)
}

// CheckScale validates a pixels-per-AU display scale.
func CheckScale(scale float64) error {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return &ConfigurationError{Scale: scale}
	}
	return nil
}

// MeterToPixel converts a physical length in meters to display pixels
// under the given pixels-per-AU scale.
func MeterToPixel(meters, scale float64) float64 {
	// m * (px/AU) * (AU/m) = px
	return meters * scale / AUMeters
}

// PixelToMeter converts a display length in pixels back to meters
// under the given pixels-per-AU scale. Inverse of MeterToPixel for any
// fixed positive scale.
func PixelToMeter(px, scale float64) float64 {
	return px / scale * AUMeters
}

// SolarMassToKg converts stellar masses (catalog st_mass) to kilograms.
func SolarMassToKg(solarMasses float64) float64 {
	return SolarMassKg * solarMasses
}

// SolarRadiusToM converts stellar radii (catalog st_rad) to meters.
func SolarRadiusToM(solarRadii float64) float64 {
	return SolarRadiusM * solarRadii
}

// EarthMassToKg converts earth masses (catalog pl_masse) to kilograms.
func EarthMassToKg(earthMasses float64) float64 {
	return EarthMassKg * earthMasses
}

// EarthRadiusToM converts earth radii (catalog pl_rade) to meters.
func EarthRadiusToM(earthRadii float64) float64 {
	return EarthRadiusM * earthRadii
}

// DaysToSeconds converts catalog orbital periods (pl_orbper, days) to seconds.
func DaysToSeconds(days float64) float64 {
	return SecondsPerDay * days
}
