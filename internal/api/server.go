// Package api serves read-only lookups and queries over a linked NEO
// database. The database is an immutable snapshot once built, so handlers
// can share it without locking.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"neo-explorer/internal/neo"
	"neo-explorer/internal/neodb"
)

// Server answers HTTP queries against a linked database.
type Server struct {
	db *neodb.Database
}

// NewServer creates a Server over db.
func NewServer(db *neodb.Database) *Server {
	return &Server{db: db}
}

// Routes returns the HTTP handler for the query API.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/neos", s.handleNEOByName)
	r.Get("/neos/{designation}", s.handleNEOByDesignation)
	r.Get("/approaches", s.handleApproaches)
	return r
}

func (s *Server) handleNEOByDesignation(w http.ResponseWriter, r *http.Request) {
	o := s.db.NEOByDesignation(chi.URLParam(r, "designation"))
	if o == nil {
		writeError(w, http.StatusNotFound, "no NEO with that designation")
		return
	}
	writeJSON(w, http.StatusOK, neoResponse(o))
}

func (s *Server) handleNEOByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "name query parameter is required")
		return
	}
	o := s.db.NEOByName(name)
	if o == nil {
		writeError(w, http.StatusNotFound, "no NEO with that name")
		return
	}
	writeJSON(w, http.StatusOK, neoResponse(o))
}

func (s *Server) handleApproaches(w http.ResponseWriter, r *http.Request) {
	filters, limit, err := parseQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	out := make([]map[string]any, 0)
	for ca := range neodb.Limit(s.db.Query(filters...), limit) {
		entry := ca.Serialize()
		if ca.NEO != nil {
			entry["neo"] = ca.NEO.Serialize()
		} else {
			entry["neo"] = nil
		}
		out = append(out, entry)
	}
	writeJSON(w, http.StatusOK, out)
}

// parseQuery translates URL query parameters into filters. Every parameter
// is optional; a present parameter with an unparseable value is a client
// error.
func parseQuery(r *http.Request) ([]neodb.Filter, int, error) {
	q := r.URL.Query()
	var filters []neodb.Filter

	dates := []struct {
		param string
		build func(time.Time) neodb.Filter
	}{
		{"date", neodb.OnDate},
		{"start_date", neodb.StartDate},
		{"end_date", neodb.EndDate},
	}
	for _, d := range dates {
		raw := q.Get(d.param)
		if raw == "" {
			continue
		}
		t, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid %s %q, want YYYY-MM-DD", d.param, raw)
		}
		filters = append(filters, d.build(t))
	}

	ranges := []struct {
		param string
		build func(float64) neodb.Filter
	}{
		{"min_distance", neodb.MinDistance},
		{"max_distance", neodb.MaxDistance},
		{"min_velocity", neodb.MinVelocity},
		{"max_velocity", neodb.MaxVelocity},
		{"min_diameter", neodb.MinDiameter},
		{"max_diameter", neodb.MaxDiameter},
	}
	for _, rg := range ranges {
		raw := q.Get(rg.param)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid %s %q", rg.param, raw)
		}
		filters = append(filters, rg.build(v))
	}

	if raw := q.Get("hazardous"); raw != "" {
		want, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid hazardous %q", raw)
		}
		filters = append(filters, neodb.Hazardous(want))
	}

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, 0, fmt.Errorf("invalid limit %q", raw)
		}
		limit = n
	}

	return filters, limit, nil
}

// neoResponse is a NEO's serialized fields plus its linked approaches.
func neoResponse(o *neo.NearEarthObject) map[string]any {
	entry := o.Serialize()
	approaches := make([]map[string]any, 0, len(o.Approaches))
	for _, ca := range o.Approaches {
		approaches = append(approaches, ca.Serialize())
	}
	entry["approaches"] = approaches
	return entry
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
