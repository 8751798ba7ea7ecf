package neodb

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neo-explorer/internal/neo"
)

// setupTestDB builds a small database with a mix of named, unnamed and
// unmatched records.
func setupTestDB(t *testing.T) *Database {
	t.Helper()

	neos := []*neo.NearEarthObject{
		neo.NewNearEarthObject("433", "Eros", "16.84", "N"),
		neo.NewNearEarthObject("2000433", "", "", "N"),
		neo.NewNearEarthObject("99942", "Apophis", "0.37", "Y"),
	}
	approaches := []*neo.CloseApproach{
		neo.NewCloseApproach("433", "2020-01-01 06:00", "0.15", "5.2"),
		neo.NewCloseApproach("99942", "2029-04-13 21:46", "0.00025", "7.42"),
		neo.NewCloseApproach("433", "2056-01-24 11:03", "0.17", "5.9"),
		neo.NewCloseApproach("unknown-des", "2021-06-01 00:00", "0.5", "12.0"),
	}
	return New(neos, approaches)
}

func TestNEOByDesignation(t *testing.T) {
	db := setupTestDB(t)

	for _, des := range []string{"433", "2000433", "99942"} {
		o := db.NEOByDesignation(des)
		require.NotNil(t, o, des)
		assert.Equal(t, des, o.Designation)
	}

	assert.Nil(t, db.NEOByDesignation("missing"))
	assert.Nil(t, db.NEOByDesignation(""))
}

func TestNEOByName(t *testing.T) {
	db := setupTestDB(t)

	eros := db.NEOByName("Eros")
	require.NotNil(t, eros)
	assert.Equal(t, "433", eros.Designation)

	assert.Nil(t, db.NEOByName("Halley"))

	// Unnamed NEOs are never reachable through the name index.
	assert.Nil(t, db.NEOByName(""))
}

func TestLinking(t *testing.T) {
	db := setupTestDB(t)

	eros := db.NEOByDesignation("433")
	require.NotNil(t, eros)
	require.Len(t, eros.Approaches, 2)
	// Input order preserved within a NEO's approaches.
	assert.Equal(t, "2020-01-01 06:00", eros.Approaches[0].TimeStr())
	assert.Equal(t, "2056-01-24 11:03", eros.Approaches[1].TimeStr())
	for _, ca := range eros.Approaches {
		assert.Same(t, eros, ca.NEO)
		assert.Equal(t, eros.Designation, ca.Designation)
	}

	// A NEO with no matching approaches keeps an empty collection.
	assert.Empty(t, db.NEOByDesignation("2000433").Approaches)

	// An approach with an unmatched designation stays unlinked but present.
	all := slices.Collect(db.Query())
	require.Len(t, all, 4)
	assert.Nil(t, all[3].NEO)
	assert.Equal(t, "unknown-des", all[3].Designation)
}

func TestLinking_DuplicateDesignationLastWins(t *testing.T) {
	first := neo.NewNearEarthObject("433", "Eros", "16.84", "N")
	second := neo.NewNearEarthObject("433", "Eros", "17.0", "Y")
	db := New([]*neo.NearEarthObject{first, second}, []*neo.CloseApproach{
		neo.NewCloseApproach("433", "2020-01-01 06:00", "0.15", "5.2"),
	})

	got := db.NEOByDesignation("433")
	assert.Same(t, second, got)
	assert.Same(t, second, db.NEOByName("Eros"))
	assert.Len(t, second.Approaches, 1)
	assert.Empty(t, first.Approaches)
}

func TestQuery_NoFiltersReturnsAllInOrder(t *testing.T) {
	db := setupTestDB(t)

	got := slices.Collect(db.Query())
	require.Len(t, got, 4)
	assert.Equal(t, "2020-01-01 06:00", got[0].TimeStr())
	assert.Equal(t, "2029-04-13 21:46", got[1].TimeStr())
	assert.Equal(t, "2056-01-24 11:03", got[2].TimeStr())
	assert.Equal(t, "2021-06-01 00:00", got[3].TimeStr())
}

func TestQuery_IsRestartable(t *testing.T) {
	db := setupTestDB(t)

	seq := db.Query(MinDistance(0.1))
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
	require.NotEmpty(t, first)

	// Early break must not poison a later full scan.
	for range seq {
		break
	}
	assert.Equal(t, first, slices.Collect(seq))
}

func TestQuery_Conjunction(t *testing.T) {
	db := setupTestDB(t)

	f1 := MinDistance(0.1)
	f2 := MaxVelocity(6.0)

	both := slices.Collect(db.Query(f1, f2))

	want := make(map[*neo.CloseApproach]bool)
	for _, ca := range slices.Collect(db.Query(f1)) {
		want[ca] = true
	}
	var intersection []*neo.CloseApproach
	for _, ca := range slices.Collect(db.Query(f2)) {
		if want[ca] {
			intersection = append(intersection, ca)
		}
	}

	assert.Equal(t, intersection, both)
}

func TestLimit(t *testing.T) {
	db := setupTestDB(t)

	assert.Len(t, slices.Collect(Limit(db.Query(), 2)), 2)
	assert.Len(t, slices.Collect(Limit(db.Query(), 0)), 4)
	assert.Len(t, slices.Collect(Limit(db.Query(), -1)), 4)
	assert.Len(t, slices.Collect(Limit(db.Query(), 10)), 4)
}
