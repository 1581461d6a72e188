// Package core provides mass calculations for charged ions.
package core

import "math"

const (
	// ProtonMass is the mass of a proton (Da), used to convert between
	// m/z and neutral mass for a given charge state.
	ProtonMass = 1.00727646688
)

// NeutralMass computes the neutral monoisotopic mass of an ion observed at
// the given m/z and charge state: M = mz*z - z*proton.
func NeutralMass(mz float64, charge int) float64 {
	z := float64(charge)
	return mz*z - z*ProtonMass
}

// MZForCharge computes the m/z at which an ion of the given neutral mass
// appears for a charge state: (M + z*proton) / z.
func MZForCharge(neutralMass float64, charge int) float64 {
	z := float64(charge)
	return (neutralMass + z*ProtonMass) / z
}

// RoundFloat rounds a float to n decimal places
func RoundFloat(val float64, precision int) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}
