package core

// Source identifies the raw data file a peak was detected in.
type Source string

// Row associates one peak per source with a persistent integer ID and
// copied properties. The ID survives transformations: a row whose peak is
// replaced by a collapsed isotope-group peak keeps its original ID.
type Row struct {
	ID      int
	Comment string
	peaks   map[Source]Peak
}

// NewRow creates an empty row with the given persistent ID.
func NewRow(id int) *Row {
	return &Row{
		ID:    id,
		peaks: make(map[Source]Peak),
	}
}

// SetPeak assigns the peak of the given source.
func (r *Row) SetPeak(src Source, p Peak) {
	if r.peaks == nil {
		r.peaks = make(map[Source]Peak)
	}
	r.peaks[src] = p
}

// Peak returns the peak of the given source, if present.
func (r *Row) Peak(src Source) (Peak, bool) {
	p, ok := r.peaks[src]
	return p, ok
}

// Sources returns the sources this row has peaks for.
func (r *Row) Sources() []Source {
	sources := make([]Source, 0, len(r.peaks))
	for src := range r.peaks {
		sources = append(sources, src)
	}
	return sources
}

// CopyRowProperties copies the transferable row properties (everything
// except the ID and the peaks themselves) from one row to another.
func CopyRowProperties(from, to *Row) {
	to.Comment = from.Comment
}
