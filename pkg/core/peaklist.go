package core

import (
	"fmt"
	"math"
	"strings"
)

// AppliedMethod records one processing step applied to a peak list,
// forming the list's provenance chain.
type AppliedMethod struct {
	Description string
	Parameters  string
}

// PeakList is a named collection of rows over one or more raw data sources.
type PeakList struct {
	Name    string
	sources []Source
	rows    []*Row
	applied []AppliedMethod

	// rowByPeak indexes the originating row of every peak by peak ID.
	rowByPeak map[int]*Row
}

// NewPeakList creates an empty peak list bound to the given sources.
func NewPeakList(name string, sources ...Source) *PeakList {
	return &PeakList{
		Name:      name,
		sources:   sources,
		rowByPeak: make(map[int]*Row),
	}
}

// Sources returns the raw data sources this list is bound to.
func (l *PeakList) Sources() []Source {
	return l.sources
}

// AddRow appends a row and indexes its peaks for RowForPeak lookups.
func (l *PeakList) AddRow(r *Row) {
	l.rows = append(l.rows, r)
	for _, src := range l.sources {
		if p, ok := r.Peak(src); ok {
			l.rowByPeak[p.ID] = r
		}
	}
}

// Rows returns the rows in insertion order.
func (l *PeakList) Rows() []*Row {
	return l.rows
}

// NumRows returns the number of rows in the list.
func (l *PeakList) NumRows() int {
	return len(l.rows)
}

// Peaks returns all peaks of the given source, in row order.
func (l *PeakList) Peaks(src Source) []Peak {
	var peaks []Peak
	for _, r := range l.rows {
		if p, ok := r.Peak(src); ok {
			peaks = append(peaks, p)
		}
	}
	return peaks
}

// RowForPeak returns the row holding the peak with the given ID, or nil.
func (l *PeakList) RowForPeak(peakID int) *Row {
	return l.rowByPeak[peakID]
}

// AppliedMethods returns the provenance chain in application order.
func (l *PeakList) AppliedMethods() []AppliedMethod {
	return l.applied
}

// AddAppliedMethod appends a provenance record.
func (l *PeakList) AddAppliedMethod(m AppliedMethod) {
	l.applied = append(l.applied, m)
}

// ValidationError represents an error found during peak-list validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
}

// Validate checks that a peak list meets all requirements for processing.
func (l *PeakList) Validate() error {
	var errs []string

	if l.Name == "" {
		errs = append(errs, "name is required")
	}
	if len(l.sources) == 0 {
		errs = append(errs, "at least one source is required")
	}

	seenRowIDs := make(map[int]bool)
	seenPeakIDs := make(map[int]bool)
	for i, r := range l.rows {
		if seenRowIDs[r.ID] {
			errs = append(errs, fmt.Sprintf("row %d has duplicate ID %d", i, r.ID))
		}
		seenRowIDs[r.ID] = true

		for _, src := range l.sources {
			p, ok := r.Peak(src)
			if !ok {
				continue
			}
			if seenPeakIDs[p.ID] {
				errs = append(errs, fmt.Sprintf("row %d has duplicate peak ID %d", i, p.ID))
			}
			seenPeakIDs[p.ID] = true

			if math.IsNaN(p.MZ) || math.IsInf(p.MZ, 0) {
				errs = append(errs, fmt.Sprintf("row %d has invalid m/z", i))
			}
			if math.IsNaN(p.Height) || math.IsInf(p.Height, 0) {
				errs = append(errs, fmt.Sprintf("row %d has invalid height", i))
			}
			if p.MZ <= 0 {
				errs = append(errs, fmt.Sprintf("row %d m/z must be positive", i))
			}
			if p.Height < 0 {
				errs = append(errs, fmt.Sprintf("row %d height must be non-negative", i))
			}
			if p.Charge < 0 {
				errs = append(errs, fmt.Sprintf("row %d charge must be non-negative", i))
			}
		}
	}

	if len(errs) > 0 {
		return &ValidationError{
			Field:   "PeakList",
			Message: strings.Join(errs, "; "),
		}
	}

	return nil
}
