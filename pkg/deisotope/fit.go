package deisotope

// fitPattern fits an isotope pattern around the seed at the given charge.
// It returns the pool indices of the fitted peaks: the seed first, then
// peaks found below the seed m/z in order of increasing distance, then
// peaks found above it. With MonotonicShape set the search below the seed
// is skipped.
func fitPattern(p *pool, seedIdx, charge int, params Parameters) []int {
	fitted := []int{seedIdx}
	inFitted := map[int]bool{seedIdx: true}

	if !params.MonotonicShape {
		fitted = fitHalfPattern(p, seedIdx, charge, -1, fitted, inFitted, params)
	}
	fitted = fitHalfPattern(p, seedIdx, charge, +1, fitted, inFitted, params)

	return fitted
}

// fitHalfPattern extends the fitted set in one direction from the seed.
// For n = 1, 2, ... it scans the whole pool for unconsumed, not-yet-fitted
// peaks within tolerance of the n:th expected isotope position and picks
// the strongest one; the chain stops at the first n with no qualifying
// peak. On an exact height tie the peak seen first in pool order wins,
// because the comparison is strict.
func fitHalfPattern(p *pool, seedIdx, charge, direction int, fitted []int, inFitted map[int]bool, params Parameters) []int {
	seed := p.peak(seedIdx)

	for n := 1; ; n++ {
		expected := expectedMZ(seed.MZ, charge, direction, n)

		best := -1
		for i := 0; i < p.len(); i++ {
			if p.isConsumed(i) || inFitted[i] {
				continue
			}
			candidate := p.peak(i)
			if !withinMZTolerance(candidate.MZ, expected, params.MZTolerance) {
				continue
			}
			if !withinRTTolerance(candidate.RT, seed.RT, params.RTTolerance) {
				continue
			}
			if best < 0 || p.peak(best).Height < candidate.Height {
				best = i
			}
		}

		if best < 0 {
			return fitted
		}
		fitted = append(fitted, best)
		inFitted[best] = true
	}
}
