// Package neodb links independently loaded NEO and close approach data sets
// into one in-memory database and answers lookups and filtered queries
// against it. The database is built once and treated as an immutable
// snapshot afterward, so concurrent readers need no locking.
package neodb

import (
	"iter"

	"neo-explorer/internal/neo"
)

// Database owns the full NEO and close approach collections plus the lookup
// indexes over them.
type Database struct {
	neos       []*neo.NearEarthObject
	approaches []*neo.CloseApproach

	byDesignation map[string]*neo.NearEarthObject
	byName        map[string]*neo.NearEarthObject
}

// New builds a Database from the loaded collections and links them: every
// approach whose designation matches a NEO gets its back-pointer set and is
// appended to that NEO's Approaches in input order. Approaches with no
// matching NEO stay unlinked but remain queryable. Duplicate designations or
// names are not expected in the data; if they occur, the last one wins.
func New(neos []*neo.NearEarthObject, approaches []*neo.CloseApproach) *Database {
	db := &Database{
		neos:          neos,
		approaches:    approaches,
		byDesignation: make(map[string]*neo.NearEarthObject, len(neos)),
		byName:        make(map[string]*neo.NearEarthObject),
	}

	for _, o := range neos {
		db.byDesignation[o.Designation] = o
		if o.Name != "" {
			db.byName[o.Name] = o
		}
	}

	for _, ca := range approaches {
		if o, ok := db.byDesignation[ca.Designation]; ok {
			ca.NEO = o
			o.Approaches = append(o.Approaches, ca)
		}
	}

	return db
}

// NEOByDesignation returns the NEO with the given primary designation, or
// nil if none was loaded.
func (db *Database) NEOByDesignation(designation string) *neo.NearEarthObject {
	return db.byDesignation[designation]
}

// NEOByName returns the NEO with the given IAU name, or nil. Unnamed NEOs
// are never indexed, so the empty string finds nothing.
func (db *Database) NEOByName(name string) *neo.NearEarthObject {
	if name == "" {
		return nil
	}
	return db.byName[name]
}

// NEOs returns the loaded NEO collection in file order.
func (db *Database) NEOs() []*neo.NearEarthObject {
	return db.neos
}

// Query yields every close approach matching all of the given filters, in
// the original load order. The sequence is lazy and restartable: each range
// over it rescans the collection, nothing is memoized. No filters means
// every approach.
func (db *Database) Query(filters ...Filter) iter.Seq[*neo.CloseApproach] {
	return func(yield func(*neo.CloseApproach) bool) {
		for _, ca := range db.approaches {
			if !matchesAll(ca, filters) {
				continue
			}
			if !yield(ca) {
				return
			}
		}
	}
}

func matchesAll(ca *neo.CloseApproach, filters []Filter) bool {
	for _, f := range filters {
		if !f(ca) {
			return false
		}
	}
	return true
}

// Limit truncates a query result to at most n approaches. A non-positive n
// leaves the sequence unlimited.
func Limit(seq iter.Seq[*neo.CloseApproach], n int) iter.Seq[*neo.CloseApproach] {
	if n <= 0 {
		return seq
	}
	return func(yield func(*neo.CloseApproach) bool) {
		count := 0
		for ca := range seq {
			if !yield(ca) {
				return
			}
			count++
			if count == n {
				return
			}
		}
	}
}
