// Package core provides the peak-list data model and validation logic
// shared by the isotoper tools.
package core

import "fmt"

// Peak represents a single chromatographic peak detected in one run.
// Peaks are treated as immutable values; annotating a peak with an isotope
// pattern produces a new peak via WithPattern rather than mutating in place.
type Peak struct {
	ID      int     // Stable identity within a run
	MZ      float64 // Mass-to-charge ratio (Da)
	RT      float64 // Retention time
	Height  float64 // Peak height (intensity)
	Charge  int     // Resolved charge state (0 = unknown)
	Pattern *IsotopePattern
}

// Name returns a human-readable identifier for the peak, used as the
// description of isotope patterns seeded on it.
func (p Peak) Name() string {
	return fmt.Sprintf("m/z %.4f @ RT %.2f", p.MZ, p.RT)
}

// WithPattern returns a copy of p carrying the given isotope pattern and
// resolved charge. The original peak is left untouched.
func WithPattern(p Peak, pattern *IsotopePattern, charge int) Peak {
	annotated := p
	annotated.Pattern = pattern
	annotated.Charge = charge
	return annotated
}
