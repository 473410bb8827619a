package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aretw0/traits"
	"github.com/aretw0/traits/internal/logging"
	"github.com/aretw0/traits/pkg/domain"
	"github.com/aretw0/traits/pkg/trait"
	"github.com/go-chi/chi/v5"
)

// Catalog defines what the HTTP adapter needs from a trait catalog.
type Catalog interface {
	Names() []string
	Trait(name string) (domain.Trait, error)
	SampleAny(name string, input any) ([]float64, error)
}

// Server serves a catalog over HTTP.
type Server struct {
	Catalog Catalog
	Metrics http.Handler
	Logger  *slog.Logger
}

// Option configures the handler.
type Option func(*Server)

// WithMetricsHandler mounts h (usually promhttp) at GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// SampleRequest is the body of POST /traits/{name}/sample.
// Occupancy is kept untyped so that non-array input is reported as a bad request
// instead of a JSON decoding failure.
type SampleRequest struct {
	Occupancy any `json:"occupancy"`
}

// SampleResponse is the reply of POST /traits/{name}/sample.
type SampleResponse struct {
	Trait  string    `json:"trait"`
	Values []float64 `json:"values"`
}

// TraitResponse describes one trait.
type TraitResponse struct {
	Name         string       `json:"name"`
	Distribution domain.Kind  `json:"distribution"`
	Description  string       `json:"description"`
	Spec         *domain.Spec `json:"spec,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewHandler creates a new HTTP handler for the catalog.
func NewHandler(catalog Catalog, opts ...Option) http.Handler {
	s := &Server{Catalog: catalog}
	for _, opt := range opts {
		opt(s)
	}
	if s.Logger == nil {
		s.Logger = logging.NewNop()
	}

	r := chi.NewRouter()
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/traits", s.ListTraits)
	r.Get("/traits/{name}", s.GetTrait)
	r.Post("/traits/{name}/sample", s.Sample)
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics)
	}
	return r
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "traits-http",
		"version": traits.Version,
	})
}

// ListTraits handles the GET /traits request.
func (s *Server) ListTraits(w http.ResponseWriter, r *http.Request) {
	names := s.Catalog.Names()
	resp := make([]TraitResponse, 0, len(names))
	for _, name := range names {
		t, err := s.Catalog.Trait(name)
		if err != nil {
			continue
		}
		resp = append(resp, describe(t))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// GetTrait handles the GET /traits/{name} request.
func (s *Server) GetTrait(w http.ResponseWriter, r *http.Request) {
	t, err := s.Catalog.Trait(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, describe(t))
}

// Sample handles the POST /traits/{name}/sample request.
func (s *Server) Sample(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var body SampleRequest
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		s.Logger.Warn("Sample: invalid request body", "trait", name, "error", err)
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	values, err := s.Catalog.SampleAny(name, body.Occupancy)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, SampleResponse{Trait: name, Values: values})
}

func describe(t domain.Trait) TraitResponse {
	resp := TraitResponse{
		Name:         t.Name(),
		Distribution: t.Kind(),
		Description:  t.String(),
	}
	if spec, ok := trait.SpecOf(t); ok {
		resp.Spec = &spec
	}
	return resp
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrTraitNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidOccupancy):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		s.Logger.Error("request failed", "error", err)
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}
