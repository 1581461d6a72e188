// Package peaks provides a streaming reader for CSV peak lists
// (one "mz,rt,height" line per detected peak).
package peaks

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ChrisMcGann/isotoper/pkg/core"
)

// Reader provides streaming access to CSV peak-list files. Lines starting
// with '#' and an optional non-numeric header line are skipped. Each peak
// is assigned a sequential ID in file order.
type Reader struct {
	scanner       *bufio.Scanner
	lineNum       int
	nextID        int
	headerSkipped bool
	currentPeak   core.Peak
	err           error
}

// NewReader creates a new CSV peak-list reader
func NewReader(r io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(r),
		nextID:  1,
	}
}

// Next advances to the next peak. Returns false when no more peaks or error.
func (r *Reader) Next() bool {
	for r.scanner.Scan() {
		r.lineNum++
		line := strings.TrimSpace(r.scanner.Text())

		// Skip blanks and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			r.err = fmt.Errorf("line %d: expected 3 comma-separated fields, got %d", r.lineNum, len(fields))
			return false
		}

		mz, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			// Allow one non-numeric header line before any data
			if r.nextID == 1 && !r.headerSkipped {
				r.headerSkipped = true
				continue
			}
			r.err = fmt.Errorf("line %d: invalid m/z value %q: %w", r.lineNum, fields[0], err)
			return false
		}
		rt, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			r.err = fmt.Errorf("line %d: invalid RT value %q: %w", r.lineNum, fields[1], err)
			return false
		}
		height, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if err != nil {
			r.err = fmt.Errorf("line %d: invalid height value %q: %w", r.lineNum, fields[2], err)
			return false
		}

		r.currentPeak = core.Peak{
			ID:     r.nextID,
			MZ:     mz,
			RT:     rt,
			Height: height,
		}
		r.nextID++
		return true
	}

	if err := r.scanner.Err(); err != nil {
		r.err = fmt.Errorf("error reading peak list: %w", err)
	}
	return false
}

// Peak returns the current peak
func (r *Reader) Peak() core.Peak {
	return r.currentPeak
}

// Err returns any error encountered during reading
func (r *Reader) Err() error {
	return r.err
}

// ReadPeakList reads a whole CSV stream into a peak list with one row per
// peak. Row IDs equal peak IDs.
func ReadPeakList(r io.Reader, name string, source core.Source) (*core.PeakList, error) {
	list := core.NewPeakList(name, source)

	reader := NewReader(r)
	for reader.Next() {
		p := reader.Peak()
		row := core.NewRow(p.ID)
		row.SetPeak(source, p)
		list.AddRow(row)
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}

	return list, nil
}
