// Package sqlite provides reading of peak-list databases produced by the
// SQLite writer.
package sqlite

import (
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ChrisMcGann/isotoper/pkg/core"
)

// ReadPeakList reads the first peak list stored in the database at path,
// including rows, isotope patterns, and provenance records.
func ReadPeakList(path string) (*core.PeakList, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	var listID int
	var name string
	err = db.QueryRow(`
		SELECT PeakListId, Name FROM PeakListTable ORDER BY PeakListId LIMIT 1
	`).Scan(&listID, &name)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("database contains no peak lists")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read peak list: %w", err)
	}

	sources, err := readSources(db, listID)
	if err != nil {
		return nil, err
	}

	list := core.NewPeakList(name, sources...)

	if err := readRows(db, listID, list); err != nil {
		return nil, err
	}
	if err := readAppliedMethods(db, listID, list); err != nil {
		return nil, err
	}

	return list, nil
}

// readSources reads the source names of a peak list in stored order.
func readSources(db *sql.DB, listID int) ([]core.Source, error) {
	rows, err := db.Query(`
		SELECT Name FROM SourceTable WHERE PeakListId = ? ORDER BY Position
	`, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources: %w", err)
	}
	defer rows.Close()

	var sources []core.Source
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan source: %w", err)
		}
		sources = append(sources, core.Source(name))
	}
	return sources, rows.Err()
}

// readRows reads the row records of a peak list, regrouping per-source
// entries sharing a RowId into one row.
func readRows(db *sql.DB, listID int, list *core.PeakList) error {
	rows, err := db.Query(`
		SELECT RowId, Comment, SourceName, PeakId, MZ, RT, Height, Charge,
		       PatternStatus, PatternDescription, blobPatternMZ, blobPatternIntensity
		FROM RowTable WHERE PeakListId = ? ORDER BY rowid
	`, listID)
	if err != nil {
		return fmt.Errorf("failed to read rows: %w", err)
	}
	defer rows.Close()

	byID := make(map[int]*core.Row)
	var ordered []*core.Row
	for rows.Next() {
		var rowID, peakID, charge int
		var comment, sourceName string
		var mz, rt, height float64
		var status, description sql.NullString
		var mzBlob, intBlob []byte

		err := rows.Scan(&rowID, &comment, &sourceName, &peakID, &mz, &rt, &height,
			&charge, &status, &description, &mzBlob, &intBlob)
		if err != nil {
			return fmt.Errorf("failed to scan row: %w", err)
		}

		peak := core.Peak{
			ID:     peakID,
			MZ:     mz,
			RT:     rt,
			Height: height,
			Charge: charge,
		}
		if status.Valid {
			peak.Pattern = &core.IsotopePattern{
				Points:      decodePointsFloat64(mzBlob, intBlob),
				Status:      core.ParsePatternStatus(status.String),
				Description: description.String,
			}
		}

		row, ok := byID[rowID]
		if !ok {
			row = core.NewRow(rowID)
			row.Comment = comment
			byID[rowID] = row
			ordered = append(ordered, row)
		}
		row.SetPeak(core.Source(sourceName), peak)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	// Rows are indexed only once all their per-source peaks are known
	for _, row := range ordered {
		list.AddRow(row)
	}
	return nil
}

// readAppliedMethods reads the provenance chain in application order.
func readAppliedMethods(db *sql.DB, listID int, list *core.PeakList) error {
	rows, err := db.Query(`
		SELECT Description, Parameters FROM AppliedMethodTable
		WHERE PeakListId = ? ORDER BY Position
	`, listID)
	if err != nil {
		return fmt.Errorf("failed to read applied methods: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m core.AppliedMethod
		if err := rows.Scan(&m.Description, &m.Parameters); err != nil {
			return fmt.Errorf("failed to scan applied method: %w", err)
		}
		list.AddAppliedMethod(m)
	}
	return rows.Err()
}

// decodePointsFloat64 decodes little-endian float64 blobs into data points
func decodePointsFloat64(mzBlob, intBlob []byte) []core.DataPoint {
	n := len(mzBlob) / 8
	points := make([]core.DataPoint, 0, n)
	for i := 0; i < n; i++ {
		pt := core.DataPoint{
			MZ: math.Float64frombits(binary.LittleEndian.Uint64(mzBlob[i*8:])),
		}
		if len(intBlob) >= (i+1)*8 {
			pt.Intensity = math.Float64frombits(binary.LittleEndian.Uint64(intBlob[i*8:]))
		}
		points = append(points, pt)
	}
	return points
}
