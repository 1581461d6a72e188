package deisotope

import (
	"sort"

	"github.com/ChrisMcGann/isotoper/pkg/core"
)

// pool is the mutable working set of peaks still eligible to seed or join
// an isotope group. Peaks are sorted once by descending height (ascending
// ID on equal height, for a deterministic order) and marked consumed when
// assigned to a multi-peak group. Consumed entries never become eligible
// again.
type pool struct {
	peaks    []core.Peak
	consumed []bool
}

// newPool copies and sorts the input peaks into a fresh candidate pool.
func newPool(peaks []core.Peak) *pool {
	sorted := make([]core.Peak, len(peaks))
	copy(sorted, peaks)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Height != sorted[j].Height {
			return sorted[i].Height > sorted[j].Height
		}
		return sorted[i].ID < sorted[j].ID
	})
	return &pool{
		peaks:    sorted,
		consumed: make([]bool, len(sorted)),
	}
}

// len returns the total number of pool entries, consumed or not.
func (p *pool) len() int {
	return len(p.peaks)
}

// peak returns the pool entry at index i.
func (p *pool) peak(i int) core.Peak {
	return p.peaks[i]
}

// isConsumed reports whether entry i has been assigned to a group.
func (p *pool) isConsumed(i int) bool {
	return p.consumed[i]
}

// consume permanently removes entry i from eligibility.
func (p *pool) consume(i int) {
	p.consumed[i] = true
}
