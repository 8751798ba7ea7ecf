// Package ingest reads the two NASA data sets off disk: the NEO catalog CSV
// and the close approach JSON. Field-level quirks (blank names, unknown
// diameters) are handled by the entity constructors; this package only fails
// on structural problems such as missing files or absent columns.
package ingest

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/sync/errgroup"

	"neo-explorer/internal/neo"
)

// LoadNEOs reads the NEO catalog from a CSV file with at least the columns
// pdes, name, diameter and pha, returning the objects in file order.
func LoadNEOs(path string) ([]*neo.NearEarthObject, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open NEO file %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read NEO header from %s: %w", path, err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{"pdes", "name", "diameter", "pha"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("NEO file %s is missing column %q", path, required)
		}
	}

	var neos []*neo.NearEarthObject
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read NEO row from %s: %w", path, err)
		}
		neos = append(neos, neo.NewNearEarthObject(
			row[col["pdes"]],
			row[col["name"]],
			row[col["diameter"]],
			row[col["pha"]],
		))
	}

	return neos, nil
}

// approachDocument is the shape of the close approach JSON: a fields array
// naming the columns and a data array of row-arrays.
type approachDocument struct {
	Fields []string `json:"fields"`
	Data   [][]any  `json:"data"`
}

// LoadApproaches reads the close approach data set from a JSON document,
// resolving the des, cd, dist and v_rel columns by their position in the
// fields array, returning the approaches in file order.
func LoadApproaches(path string) ([]*neo.CloseApproach, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open approach file %s: %w", path, err)
	}
	defer f.Close()

	var doc approachDocument
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode approach file %s: %w", path, err)
	}

	col := make(map[string]int, len(doc.Fields))
	for i, name := range doc.Fields {
		col[name] = i
	}
	for _, required := range []string{"des", "cd", "dist", "v_rel"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("approach file %s is missing field %q", path, required)
		}
	}

	approaches := make([]*neo.CloseApproach, 0, len(doc.Data))
	for _, row := range doc.Data {
		approaches = append(approaches, neo.NewCloseApproach(
			cell(row, col["des"]),
			cell(row, col["cd"]),
			cell(row, col["dist"]),
			cell(row, col["v_rel"]),
		))
	}

	return approaches, nil
}

// cell renders one row value as a string. The JPL export mixes strings and
// numbers; short rows read as empty, which the constructors normalize.
func cell(row []any, i int) string {
	if i >= len(row) {
		return ""
	}
	switch v := row[i].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		if v {
			return "Y"
		}
		return "N"
	default:
		return ""
	}
}

// LoadAll loads both data sets concurrently. Either failure aborts the load.
func LoadAll(neoPath, cadPath string) ([]*neo.NearEarthObject, []*neo.CloseApproach, error) {
	var (
		g          errgroup.Group
		neos       []*neo.NearEarthObject
		approaches []*neo.CloseApproach
	)

	g.Go(func() error {
		var err error
		neos, err = LoadNEOs(neoPath)
		return err
	})
	g.Go(func() error {
		var err error
		approaches, err = LoadApproaches(cadPath)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return neos, approaches, nil
}
