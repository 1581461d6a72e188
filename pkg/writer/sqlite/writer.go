// Package sqlite provides SQLite database writing for peak lists
package sqlite

import (
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ChrisMcGann/isotoper/pkg/core"
)

// Date format for PeakListTable (ISO 8601)
const creationDateFormat = "2006-01-02"

// Writer handles writing peak lists to SQLite database files
type Writer struct {
	db         *sql.DB
	outputPath string
	sourceStmt *sql.Stmt
	rowStmt    *sql.Stmt
	methodStmt *sql.Stmt
	peakListID int
}

// NewWriter creates a new SQLite writer
func NewWriter(outputPath string) (*Writer, error) {
	db, err := sql.Open("sqlite3", outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	w := &Writer{
		db:         db,
		outputPath: outputPath,
		peakListID: 1,
	}

	if err := w.createTables(); err != nil {
		db.Close()
		return nil, err
	}

	if err := w.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}

	return w, nil
}

// createTables creates the required database schema
func (w *Writer) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS PeakListTable (
		PeakListId INTEGER PRIMARY KEY,
		Name TEXT,
		CreationDate TEXT
	);

	CREATE TABLE IF NOT EXISTS SourceTable (
		PeakListId INTEGER REFERENCES PeakListTable(PeakListId),
		Position INTEGER,
		Name TEXT
	);

	CREATE TABLE IF NOT EXISTS RowTable (
		PeakListId INTEGER REFERENCES PeakListTable(PeakListId),
		RowId INTEGER,
		Comment TEXT,
		SourceName TEXT,
		PeakId INTEGER,
		MZ DOUBLE,
		RT DOUBLE,
		Height DOUBLE,
		Charge INTEGER,
		PatternStatus TEXT,
		PatternDescription TEXT,
		blobPatternMZ BLOB,
		blobPatternIntensity BLOB
	);

	CREATE TABLE IF NOT EXISTS AppliedMethodTable (
		PeakListId INTEGER REFERENCES PeakListTable(PeakListId),
		Position INTEGER,
		Description TEXT,
		Parameters TEXT
	);
	`

	_, err := w.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return nil
}

// prepareStatements prepares SQL statements for batch insertion
func (w *Writer) prepareStatements() error {
	var err error

	w.sourceStmt, err = w.db.Prepare(`
		INSERT INTO SourceTable (PeakListId, Position, Name) VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare source statement: %w", err)
	}

	w.rowStmt, err = w.db.Prepare(`
		INSERT INTO RowTable (
			PeakListId, RowId, Comment, SourceName, PeakId,
			MZ, RT, Height, Charge,
			PatternStatus, PatternDescription, blobPatternMZ, blobPatternIntensity
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare row statement: %w", err)
	}

	w.methodStmt, err = w.db.Prepare(`
		INSERT INTO AppliedMethodTable (PeakListId, Position, Description, Parameters)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare method statement: %w", err)
	}

	return nil
}

// WritePeakList writes a whole peak list (rows, patterns, provenance) to
// the database.
func (w *Writer) WritePeakList(list *core.PeakList) error {
	_, err := w.db.Exec(`
		INSERT INTO PeakListTable (PeakListId, Name, CreationDate) VALUES (?, ?, ?)
	`, w.peakListID, list.Name, time.Now().Format(creationDateFormat))
	if err != nil {
		return fmt.Errorf("failed to insert peak list: %w", err)
	}

	for i, src := range list.Sources() {
		if _, err := w.sourceStmt.Exec(w.peakListID, i, string(src)); err != nil {
			return fmt.Errorf("failed to insert source: %w", err)
		}
	}

	for _, row := range list.Rows() {
		for _, src := range list.Sources() {
			p, ok := row.Peak(src)
			if !ok {
				continue
			}

			// Pattern columns stay NULL for peaks without a pattern
			var status, description interface{}
			var mzBlob, intBlob interface{}
			if p.Pattern != nil {
				status = p.Pattern.Status.String()
				description = p.Pattern.Description
				mzBlob = encodePointsFloat64(p.Pattern.Points, true)
				intBlob = encodePointsFloat64(p.Pattern.Points, false)
			}

			_, err := w.rowStmt.Exec(
				w.peakListID,
				row.ID,
				row.Comment,
				string(src),
				p.ID,
				p.MZ,
				p.RT,
				p.Height,
				p.Charge,
				status,
				description,
				mzBlob,
				intBlob,
			)
			if err != nil {
				return fmt.Errorf("failed to insert row %d: %w", row.ID, err)
			}
		}
	}

	for i, m := range list.AppliedMethods() {
		if _, err := w.methodStmt.Exec(w.peakListID, i, m.Description, m.Parameters); err != nil {
			return fmt.Errorf("failed to insert applied method: %w", err)
		}
	}

	w.peakListID++
	return nil
}

// encodePointsFloat64 encodes pattern data as little-endian float64 blob
func encodePointsFloat64(points []core.DataPoint, useMZ bool) []byte {
	buf := make([]byte, len(points)*8)
	for i, pt := range points {
		var value float64
		if useMZ {
			value = pt.MZ
		} else {
			value = pt.Intensity
		}
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(value))
	}
	return buf
}

// Finalize closes the prepared statements and the database
func (w *Writer) Finalize() error {
	if w.sourceStmt != nil {
		w.sourceStmt.Close()
	}
	if w.rowStmt != nil {
		w.rowStmt.Close()
	}
	if w.methodStmt != nil {
		w.methodStmt.Close()
	}

	if err := w.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}

// Close closes the database connection (alias for Finalize)
func (w *Writer) Close() error {
	return w.Finalize()
}
