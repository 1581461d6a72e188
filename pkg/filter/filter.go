// Package filter provides peak-list filtering applied before grouping
package filter

import (
	"fmt"

	"github.com/ChrisMcGann/isotoper/pkg/core"
)

// Config holds filtering configuration. Zero values disable a filter.
type Config struct {
	MinHeight float64 // Keep only peaks at or above this height
	MZMin     float64 // Lower m/z bound (0 = open)
	MZMax     float64 // Upper m/z bound (0 = open)
	RTMin     float64 // Lower RT bound (0 = open)
	RTMax     float64 // Upper RT bound (0 = open)
}

// Active reports whether any filter is configured.
func (c *Config) Active() bool {
	return c.MinHeight > 0 || c.MZMin > 0 || c.MZMax > 0 || c.RTMin > 0 || c.RTMax > 0
}

// String renders the configuration as stored in provenance records.
func (c *Config) String() string {
	return fmt.Sprintf("minHeight=%g, mzRange=%g-%g, rtRange=%g-%g",
		c.MinHeight, c.MZMin, c.MZMax, c.RTMin, c.RTMax)
}

// Apply builds a new peak list holding only the rows whose peaks pass all
// configured filters. Row IDs, peaks, and the provenance chain carry over
// unchanged; one new provenance record describes the filtering. A row is
// kept only if every one of its peaks passes.
func (c *Config) Apply(list *core.PeakList) *core.PeakList {
	filtered := core.NewPeakList(list.Name+" filtered", list.Sources()...)

	for _, row := range list.Rows() {
		if c.rowPasses(list, row) {
			filtered.AddRow(row)
		}
	}

	for _, m := range list.AppliedMethods() {
		filtered.AddAppliedMethod(m)
	}
	filtered.AddAppliedMethod(core.AppliedMethod{
		Description: "Peak filter",
		Parameters:  c.String(),
	})

	return filtered
}

// rowPasses checks every peak of the row against the configured filters.
func (c *Config) rowPasses(list *core.PeakList, row *core.Row) bool {
	for _, src := range list.Sources() {
		p, ok := row.Peak(src)
		if !ok {
			continue
		}
		if c.MinHeight > 0 && p.Height < c.MinHeight {
			return false
		}
		if c.MZMin > 0 && p.MZ < c.MZMin {
			return false
		}
		if c.MZMax > 0 && p.MZ > c.MZMax {
			return false
		}
		if c.RTMin > 0 && p.RT < c.RTMin {
			return false
		}
		if c.RTMax > 0 && p.RT > c.RTMax {
			return false
		}
	}
	return true
}
