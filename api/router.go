// Package api exposes the QR lab over HTTP: an embedded page for interactive
// use, a generate endpoint, and download endpoints that re-export the
// session's last result.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/qrlab/qrlab"
	"github.com/qrlab/qrlab/pkg/logger"
	"github.com/qrlab/qrlab/pkg/render"
)

// Server holds the dependencies for all HTTP handlers.
type Server struct {
	Session *qrlab.Session
	Presets map[string]render.Options
	Log     *slog.Logger
	Version string
}

// NewRouter returns a fully configured chi router with all routes.
func NewRouter(s *Server) http.Handler {
	if s.Log == nil {
		s.Log = slog.New(slog.DiscardHandler)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.Log))

	r.Get("/", s.handlePage)
	r.Get("/api/status", s.handleStatus)
	r.Post("/api/generate", s.handleGenerate)
	r.Get("/api/qr.png", s.handleDownloadPNG)
	r.Get("/api/qr.svg", s.handleDownloadSVG)
	r.Get("/api/qr.pdf", s.handleDownloadPDF)

	return r
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.Debug("http request",
				logger.Component("api"),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				logger.Duration(time.Since(start)),
			)
		})
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	_, ok := s.Session.Last()
	writeJSON(w, http.StatusOK, map[string]any{
		"version":    s.Version,
		"has_result": ok,
	})
}
