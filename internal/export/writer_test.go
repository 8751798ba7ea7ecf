package export

import (
	"bytes"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neo-explorer/internal/neo"
	"neo-explorer/internal/neodb"
)

// testApproaches returns a linked pair plus an unlinked approach with
// unknown numerics, exercising every output edge the writers handle.
func testApproaches(t *testing.T) []*neo.CloseApproach {
	t.Helper()

	neos := []*neo.NearEarthObject{
		neo.NewNearEarthObject("433", "Eros", "16.84", "N"),
	}
	approaches := []*neo.CloseApproach{
		neo.NewCloseApproach("433", "2020-01-01 06:00", "0.15", "5.2"),
		neo.NewCloseApproach("unknown-des", "2021-06-01 00:00", "", ""),
	}
	neodb.New(neos, approaches)
	return approaches
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, slices.Values(testApproaches(t))))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"datetime_utc", "distance_au", "velocity_km_s",
		"designation", "name", "diameter_km", "potentially_hazardous",
	}, records[0])

	assert.Equal(t, []string{
		"2020-01-01 06:00", "0.150", "5.200",
		"433", "Eros", "16.840", "false",
	}, records[1])

	// Unlinked approach with unknown numerics: empty cells, FK designation.
	assert.Equal(t, []string{
		"2021-06-01 00:00", "", "",
		"unknown-des", "", "", "",
	}, records[2])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, slices.Values(testApproaches(t))))

	var out []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 2)

	assert.Equal(t, "2020-01-01 06:00", out[0]["datetime_utc"])
	assert.Equal(t, 0.15, out[0]["distance_au"])
	assert.Equal(t, 5.2, out[0]["velocity_km_s"])

	linkedNEO, ok := out[0]["neo"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "433", linkedNEO["designation"])
	assert.Equal(t, "Eros", linkedNEO["name"])
	assert.Equal(t, 16.84, linkedNEO["diameter_km"])
	assert.Equal(t, false, linkedNEO["potentially_hazardous"])

	assert.Nil(t, out[1]["distance_au"])
	assert.Nil(t, out[1]["velocity_km_s"])
	assert.Nil(t, out[1]["neo"])
}

func TestWriteJSON_EmptyResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, slices.Values([]*neo.CloseApproach{})))
	assert.JSONEq(t, "[]", buf.String())
}

func TestWriteSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	require.NoError(t, WriteSQLite(path, slices.Values(testApproaches(t))))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	rows, err := db.Query(`
		SELECT id, datetime_utc, distance_au, velocity_km_s,
		       designation, name, diameter_km, potentially_hazardous
		FROM close_approaches ORDER BY datetime_utc`)
	require.NoError(t, err)
	defer rows.Close()

	type record struct {
		id, datetime, designation string
		distance, velocity, diam  sql.NullFloat64
		name                      sql.NullString
		hazardous                 sql.NullBool
	}

	var got []record
	for rows.Next() {
		var rec record
		require.NoError(t, rows.Scan(
			&rec.id, &rec.datetime, &rec.distance, &rec.velocity,
			&rec.designation, &rec.name, &rec.diam, &rec.hazardous))
		got = append(got, rec)
	}
	require.NoError(t, rows.Err())
	require.Len(t, got, 2)

	assert.NotEmpty(t, got[0].id)
	assert.Equal(t, "2020-01-01 06:00", got[0].datetime)
	assert.Equal(t, "433", got[0].designation)
	assert.Equal(t, sql.NullString{String: "Eros", Valid: true}, got[0].name)
	assert.Equal(t, sql.NullFloat64{Float64: 0.15, Valid: true}, got[0].distance)
	assert.Equal(t, sql.NullFloat64{Float64: 16.84, Valid: true}, got[0].diam)
	assert.Equal(t, sql.NullBool{Bool: false, Valid: true}, got[0].hazardous)

	// NULLs for unknown quantities and the unlinked NEO's fields.
	assert.Equal(t, "unknown-des", got[1].designation)
	assert.False(t, got[1].distance.Valid)
	assert.False(t, got[1].velocity.Valid)
	assert.False(t, got[1].name.Valid)
	assert.False(t, got[1].diam.Valid)
	assert.False(t, got[1].hazardous.Valid)

	assert.NotEqual(t, got[0].id, got[1].id)
}

func TestWriteSQLite_ReplacesExistingTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	require.NoError(t, WriteSQLite(path, slices.Values(testApproaches(t))))
	require.NoError(t, WriteSQLite(path, slices.Values([]*neo.CloseApproach{})))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM close_approaches`).Scan(&count))
	assert.Zero(t, count)
}
