package export

import (
	"database/sql"
	"fmt"
	"iter"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"neo-explorer/internal/neo"
)

const createApproachesTable = `
	DROP TABLE IF EXISTS close_approaches;

	CREATE TABLE close_approaches (
		id TEXT PRIMARY KEY,
		datetime_utc TEXT NOT NULL,
		distance_au REAL,
		velocity_km_s REAL,
		designation TEXT NOT NULL,
		name TEXT,
		diameter_km REAL,
		potentially_hazardous INTEGER
	);
`

// WriteSQLite saves the approaches into a SQLite database file, recreating
// the close_approaches table and inserting every row in one transaction.
// Unknown quantities and NEO fields of unlinked approaches store as NULL.
func WriteSQLite(path string, approaches iter.Seq[*neo.CloseApproach]) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to open database %s: %w", path, err)
	}
	defer db.Close()

	if _, err := db.Exec(createApproachesTable); err != nil {
		return fmt.Errorf("failed to create close_approaches table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO close_approaches
			(id, datetime_utc, distance_au, velocity_km_s,
			 designation, name, diameter_km, potentially_hazardous)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for ca := range approaches {
		designation := ca.Designation
		var name, diameter, hazardous any
		if ca.NEO != nil {
			designation = ca.NEO.Designation
			if ca.NEO.Name != "" {
				name = ca.NEO.Name
			}
			diameter = quantityValue(ca.NEO.Diameter)
			hazardous = ca.NEO.Hazardous
		}

		_, err := stmt.Exec(
			uuid.New().String(),
			ca.TimeStr(),
			quantityValue(ca.Distance),
			quantityValue(ca.Velocity),
			designation,
			name,
			diameter,
			hazardous,
		)
		if err != nil {
			return fmt.Errorf("failed to insert approach: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func quantityValue(q neo.Quantity) any {
	if !q.Known {
		return nil
	}
	return q.Value
}
