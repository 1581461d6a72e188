package deisotope

import "math"

// IsotopeDistance is the expected m/z spacing between isotope peaks of a
// singly charged ion. The mass of one neutron is 1.008665 Da, but part of
// it is consumed as binding energy to other protons/neutrons, and the
// exact increase depends on the chemical formula. Since the formula is
// unknown, ~1.0033 Da is assumed, with a user-defined tolerance. For
// charge c the spacing shrinks to IsotopeDistance/c.
const IsotopeDistance = 1.0033

// expectedMZ returns the m/z where the n:th isotope peak of the given
// charge is expected, in the given direction from the seed (-1 = below
// the seed m/z, +1 = above it).
func expectedMZ(seedMZ float64, charge, direction, n int) float64 {
	return seedMZ + float64(direction)*float64(n)*IsotopeDistance/float64(charge)
}

// withinMZTolerance reports whether mz lies within tol of the expected
// isotope position. The bound is inclusive.
func withinMZTolerance(mz, expected, tol float64) bool {
	return math.Abs(mz-expected) <= tol
}

// withinRTTolerance reports whether rt lies within tol of the seed RT.
// The bound is exclusive, matching the m/z-inclusive, RT-exclusive
// qualification rule.
func withinRTTolerance(rt, seedRT, tol float64) bool {
	return math.Abs(rt-seedRT) < tol
}
