// Package web serves the SylvaNote HTTP API: one CRUD route group per
// entity kind plus the whole-graph and export aggregate routes.
package web

import (
	"log"
	"net/http"

	"github.com/sylvanote/sylvanote/pkg/types"
)

// Server handles HTTP requests against an attached store.
type Server struct {
	store      types.Store
	mux        *http.ServeMux
	addr       string
	corsOrigin string
}

// NewServer creates a new API server instance backed by store.
func NewServer(store types.Store, cfg types.Config) *Server {
	s := &Server{
		store:      store,
		mux:        http.NewServeMux(),
		addr:       cfg.ListenAddr,
		corsOrigin: cfg.CORSOrigin,
	}
	s.registerRoutes()
	return s
}

// registerRoutes sets up all HTTP routes.
func (s *Server) registerRoutes() {
	// People
	s.mux.HandleFunc("POST /people/{$}", s.handleCreatePerson)
	s.mux.HandleFunc("GET /people/{$}", s.handleListPeople)
	s.mux.HandleFunc("GET /people/{id}", s.handleGetPerson)
	s.mux.HandleFunc("PUT /people/{id}", s.handleReplacePerson)
	s.mux.HandleFunc("DELETE /people/{id}", s.handleDeletePerson)

	// Events
	s.mux.HandleFunc("POST /events/{$}", s.handleCreateEvent)
	s.mux.HandleFunc("GET /events/{$}", s.handleListEvents)
	s.mux.HandleFunc("GET /events/{id}", s.handleGetEvent)
	s.mux.HandleFunc("PUT /events/{id}", s.handleReplaceEvent)
	s.mux.HandleFunc("DELETE /events/{id}", s.handleDeleteEvent)

	// Relationships
	s.mux.HandleFunc("POST /relationships/{$}", s.handleCreateRelationship)
	s.mux.HandleFunc("GET /relationships/{$}", s.handleListRelationships)
	s.mux.HandleFunc("GET /relationships/{id}", s.handleGetRelationship)
	s.mux.HandleFunc("PUT /relationships/{id}", s.handleReplaceRelationship)
	s.mux.HandleFunc("DELETE /relationships/{id}", s.handleDeleteRelationship)

	// Aggregates
	s.mux.HandleFunc("GET /graph/{$}", s.handleGraph)
	s.mux.HandleFunc("GET /export/{$}", s.handleExport)

	s.mux.HandleFunc("GET /{$}", s.handleRoot)
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	log.Printf("Starting SylvaNote API server on %s", s.addr)
	return http.ListenAndServe(s.addr, s.Handler())
}

// Handler returns the HTTP handler for use with custom servers and tests.
func (s *Server) Handler() http.Handler {
	return s.withCORS(s.mux)
}

// handleRoot answers the API welcome route.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to SylvaNote API"})
}

// withCORS allows the configured frontend origin and answers preflight
// requests.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.corsOrigin != "" {
			w.Header().Set("Access-Control-Allow-Origin", s.corsOrigin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
