// Package server exposes the webhook over HTTP.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"jellygate/decision"
)

// Server routes inbound webhook notifications to the decision engine
type Server struct {
	router chi.Router
	engine *decision.Engine
	logger zerolog.Logger
}

// New creates the HTTP server around a decision engine
func New(engine *decision.Engine, logger zerolog.Logger) *Server {
	s := &Server{
		router: chi.NewRouter(),
		engine: engine,
		logger: logger,
	}
	s.router.Use(middleware.Recoverer)
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Get("/healthz", s.handleHealthz)
	s.router.Post("/webhook", s.handleWebhook)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
