package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dgallion1/srdex/internal/spell"
)

// Server exposes an aggregated spell collection over HTTP. The collection
// is built once before the server starts and is immutable afterwards, so
// handlers read it without locking.
type Server struct {
	router  chi.Router
	records []*spell.Record
	byID    map[string]*spell.Record
	log     *slog.Logger
}

// NewServer creates and configures the HTTP server.
func NewServer(records []*spell.Record, log *slog.Logger) *Server {
	s := &Server{
		records: records,
		byID:    make(map[string]*spell.Record, len(records)),
		log:     log,
	}
	for _, rec := range records {
		s.byID[rec.ID] = rec
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Get("/api/spells", s.handleListSpells)
	r.Get("/api/spells/{spellID}", s.handleGetSpell)
	r.Get("/api/stats", s.handleStats)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
