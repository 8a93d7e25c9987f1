// Package server exposes loaded levels over a small read-only JSON API.
//
//	GET /levels
//	GET /levels/{name}
//	GET /levels/{name}/route?from=a&to=b
//	GET /levels/{name}/costs?from=a
//
// Levels are immutable once loaded, so requests run concurrently without locking.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/katalvlaran/lvlpath/levelio"
	"github.com/katalvlaran/lvlpath/navigate"
)

// ErrNoLevels is returned by New when there is nothing to serve.
var ErrNoLevels = errors.New("server: no levels to serve")

// Config holds listener settings.
type Config struct {
	Addr        string
	ReadTimeout time.Duration
}

// Server serves route and cost queries for a fixed set of levels.
type Server struct {
	router   *mux.Router
	server   *http.Server
	logger   *log.Logger
	names    []string
	planners map[string]*navigate.Planner
}

// New builds a Server for levels. planOpts apply to every level's planner.
// Level names must be unique; LoadAll already guarantees that.
func New(cfg Config, levels []levelio.Named, logger *log.Logger, planOpts ...navigate.Option) (*Server, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		router:   mux.NewRouter(),
		logger:   logger,
		planners: make(map[string]*navigate.Planner, len(levels)),
	}
	for _, nl := range levels {
		if _, dup := s.planners[nl.Name]; dup {
			return nil, fmt.Errorf("server: level %q loaded twice", nl.Name)
		}
		p, err := navigate.NewPlanner(nl.Level, append(planOpts, navigate.WithLogger(logger))...)
		if err != nil {
			return nil, fmt.Errorf("server: level %q: %w", nl.Name, err)
		}
		s.planners[nl.Name] = p
		s.names = append(s.names, nl.Name)
	}

	s.registerRoutes()
	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.applyMiddleware(s.router),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

func (s *Server) registerRoutes() {
	s.router.HandleFunc("/levels", s.handleLevels).Methods(http.MethodGet)
	s.router.HandleFunc("/levels/{name}", s.handleLevel).Methods(http.MethodGet)
	s.router.HandleFunc("/levels/{name}/route", s.handleRoute).Methods(http.MethodGet)
	s.router.HandleFunc("/levels/{name}/costs", s.handleCosts).Methods(http.MethodGet)

	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, errors.New("no such endpoint"))
	})
}

// applyMiddleware wraps h so that the request id is assigned first and panics are caught last.
func (s *Server) applyMiddleware(h http.Handler) http.Handler {
	h = recoveryMiddleware(s.logger)(h)
	h = loggingMiddleware(s.logger)(h)
	return requestIDMiddleware(h)
}

// ServeHTTP lets the server be driven directly, as httptest does.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.server.Handler.ServeHTTP(w, r)
}

// ListenAndServe blocks until the server stops. A clean shutdown returns nil.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting HTTP server", "addr", s.server.Addr, "levels", len(s.names))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: listen: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
