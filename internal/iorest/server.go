// Package iorest serves a loaded WCVP dataset over a read-only HTTP API.
package iorest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/gnames/wcvp/pkg/config"
	"github.com/gnames/wcvp/pkg/dataset"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// APIPrefix is the path every route is mounted under.
const APIPrefix = "/api/v1"

// Server is the HTTP API over a dataset.
type Server struct {
	cfg    *config.Config
	data   *dataset.Dataset
	router *chi.Mux
	enc    gnfmt.GNjson
}

// New creates a Server for the dataset.
func New(cfg *config.Config, d *dataset.Dataset) *Server {
	s := &Server{
		cfg:    cfg,
		data:   d,
		router: chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// Handler returns the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(30 * time.Second))
}

func (s *Server) setupRoutes() {
	s.router.Route(APIPrefix, func(r chi.Router) {
		r.Get("/ping", s.handlePing)
		r.Get("/version", s.handleVersion)
		r.Get("/metadata", s.handleMetadata)
		r.Get("/stats", s.handleStats)
		r.Get("/records/{id}", s.handleRecord)
		r.Get("/powo/{powoID}", s.handlePowo)
		r.Get("/names", s.handleNames)
	})
	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.respondError(w, r, http.StatusNotFound, "unknown route %s", r.URL.Path)
	})
}

// Run listens on Server.Port until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Server.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting WCVP API", "port", s.cfg.Server.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return ServerError(s.cfg.Server.Port, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), 10*time.Second,
		)
		defer cancel()
		slog.Info("Stopping WCVP API")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return ServerError(s.cfg.Server.Port, err)
		}
		return nil
	}
}

// requestLogger logs every request with its status and duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			slog.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}
