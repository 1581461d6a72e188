// Package deisotope groups isotope patterns in a peak list. For every
// unconsumed seed peak (strongest first) it searches the remaining peaks
// for an isotope envelope at each allowed charge state, collapses the best
// fit into a single annotated peak, and emits a new peak list holding both
// collapsed and untouched rows.
package deisotope

import (
	"fmt"
	"strings"
)

// Parameters holds the user-facing settings of an isotope grouping run.
type Parameters struct {
	// Suffix is appended to the source list's name to form the output name.
	Suffix string
	// MZTolerance is the maximum m/z distance (Da) from an expected isotope
	// position for a peak to qualify.
	MZTolerance float64
	// RTTolerance is the maximum retention-time distance from the seed peak
	// for a peak to qualify.
	RTTolerance float64
	// MonotonicShape assumes the envelope only decays above the seed m/z,
	// skipping the search below it.
	MonotonicShape bool
	// MaximumCharge is the highest charge state tried for each seed.
	MaximumCharge int
	// AutoRemove removes the source list from the workspace after the
	// grouped list is registered.
	AutoRemove bool
}

// DefaultParameters returns the settings used when none are specified.
func DefaultParameters() Parameters {
	return Parameters{
		Suffix:        "deisotoped",
		MZTolerance:   0.05,
		RTTolerance:   0.1,
		MaximumCharge: 3,
	}
}

// Validate checks the parameters for basic sanity.
func (p Parameters) Validate() error {
	var errs []string

	if p.Suffix == "" {
		errs = append(errs, "suffix is required")
	}
	if p.MZTolerance < 0 {
		errs = append(errs, "m/z tolerance must be non-negative")
	}
	if p.RTTolerance < 0 {
		errs = append(errs, "RT tolerance must be non-negative")
	}
	if p.MaximumCharge < 1 {
		errs = append(errs, "maximum charge must be at least 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid parameters: %s", strings.Join(errs, "; "))
	}
	return nil
}

// String renders the parameters as stored in provenance records.
func (p Parameters) String() string {
	return fmt.Sprintf(
		"suffix=%s, mzTolerance=%g, rtTolerance=%g, monotonicShape=%t, maximumCharge=%d, autoRemove=%t",
		p.Suffix, p.MZTolerance, p.RTTolerance, p.MonotonicShape, p.MaximumCharge, p.AutoRemove)
}
