package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleListSpells returns the whole collection in corpus order. The
// optional school and level query parameters filter it.
func (s *Server) handleListSpells(w http.ResponseWriter, r *http.Request) {
	school := r.URL.Query().Get("school")
	level := r.URL.Query().Get("level")

	out := make([]any, 0, len(s.records))
	for _, rec := range s.records {
		if school != "" && rec.School != school {
			continue
		}
		if level != "" && level != fmt.Sprint(rec.Level) {
			continue
		}
		out = append(out, rec)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"count":  len(out),
		"spells": out,
	})
}

func (s *Server) handleGetSpell(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "spellID")
	rec, ok := s.byID[id]
	if !ok {
		jsonError(w, "unknown spell: "+id, http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rec)
}

// handleStats summarizes the collection: record count plus per-level and
// per-school tallies.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	byLevel := make(map[string]int)
	bySchool := make(map[string]int)
	ritual := 0
	for _, rec := range s.records {
		byLevel[fmt.Sprint(rec.Level)]++
		if rec.School != "" {
			bySchool[rec.School]++
		}
		if rec.Ritual {
			ritual++
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"count":     len(s.records),
		"by_level":  byLevel,
		"by_school": bySchool,
		"rituals":   ritual,
	})
}
