// Package export writes query results out as CSV, JSON or SQLite. The
// column and key names come from the entities' Serialize contracts.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"iter"

	"neo-explorer/internal/neo"
)

// csvHeader is the fixed column order for CSV output: the approach fields
// first, then the linked NEO's fields flattened alongside.
var csvHeader = []string{
	"datetime_utc", "distance_au", "velocity_km_s",
	"designation", "name", "diameter_km", "potentially_hazardous",
}

// WriteCSV writes the approaches as CSV rows with a header. Unknown
// quantities and absent names render as empty cells; for an unlinked
// approach the NEO columns other than designation stay empty.
func WriteCSV(w io.Writer, approaches iter.Seq[*neo.CloseApproach]) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for ca := range approaches {
		row := []string{
			ca.TimeStr(),
			quantityCell(ca.Distance),
			quantityCell(ca.Velocity),
			ca.Designation,
			"", "", "",
		}
		if ca.NEO != nil {
			row[3] = ca.NEO.Designation
			row[4] = ca.NEO.Name
			row[5] = quantityCell(ca.NEO.Diameter)
			row[6] = fmt.Sprintf("%t", ca.NEO.Hazardous)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}
	return nil
}

func quantityCell(q neo.Quantity) string {
	if !q.Known {
		return ""
	}
	return q.String()
}

// WriteJSON writes the approaches as a JSON array. Each element carries the
// approach's serialized fields plus a nested "neo" object, or a null neo for
// unlinked approaches. Unknown quantities serialize as null.
func WriteJSON(w io.Writer, approaches iter.Seq[*neo.CloseApproach]) error {
	out := make([]map[string]any, 0)
	for ca := range approaches {
		entry := ca.Serialize()
		if ca.NEO != nil {
			entry["neo"] = ca.NEO.Serialize()
		} else {
			entry["neo"] = nil
		}
		out = append(out, entry)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}
