// Package server exposes the sketch catalog as a JSON API for the content
// website's rendering layer.
//
// Every endpoint mirrors the catalog client's never-fail contract: upstream
// trouble produces empty or default-valued JSON with a 200, never a 5xx.
// The site renders whatever it gets.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/oleander/sketchfeed/pkg/openprocessing"
)

// Server serves the catalog API.
type Server struct {
	client *openprocessing.Client
	logger *log.Logger
}

// New creates a Server around a catalog client.
func New(client *openprocessing.Client, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{client: client, logger: logger}
}

// Router builds the chi router with all routes and middleware registered.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(recovery(s.logger))
	r.Use(requestLogger(s.logger))

	r.Route("/api", func(r chi.Router) {
		r.Get("/curation", s.handleCuration)
		r.Get("/curation/random", s.handleRandom)
		r.Get("/sketch/{id}", s.handleSketch)
		r.Get("/sketch/{id}/size", s.handleSketchSize)
		r.Get("/sketch/{id}/thumbnail", s.handleThumbnail)
		r.Get("/health", s.handleHealth)
	})

	return r
}

// handleCuration handles GET /api/curation?limit=n.
func (s *Server) handleCuration(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 0)
	items := s.client.CurationSketches(r.Context(), limit)
	respondJSON(w, http.StatusOK, items)
}

// handleRandom handles GET /api/curation/random?count=n.
func (s *Server) handleRandom(w http.ResponseWriter, r *http.Request) {
	count := queryInt(r, "count", 0)
	items := s.client.RandomCurationSketches(r.Context(), count)
	respondJSON(w, http.StatusOK, items)
}

// handleSketch handles GET /api/sketch/{id}.
func (s *Server) handleSketch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	respondJSON(w, http.StatusOK, s.client.Sketch(r.Context(), id))
}

// sizeResponse pairs dimensions with the URLs the renderer needs alongside
// them, so embedding a sketch takes one request.
type sizeResponse struct {
	openprocessing.Dimensions
	SketchURL string `json:"sketchURL"`
	EmbedURL  string `json:"embedURL"`
}

// handleSketchSize handles GET /api/sketch/{id}/size.
func (s *Server) handleSketchSize(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	respondJSON(w, http.StatusOK, sizeResponse{
		Dimensions: s.client.SketchSize(r.Context(), id),
		SketchURL:  openprocessing.SketchURL(id),
		EmbedURL:   openprocessing.EmbedURL(id),
	})
}

// handleThumbnail handles GET /api/sketch/{id}/thumbnail.
func (s *Server) handleThumbnail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	respondJSON(w, http.StatusOK, s.client.ResolveThumbnail(id))
}

// handleHealth handles GET /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// queryInt parses an integer query parameter, falling back on absence or
// garbage. Bad input degrades like everything else here.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// respondJSON writes a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
