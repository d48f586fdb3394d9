// Package web exposes the inventory service as a JSON API.
package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sergiogarciaj/bartulos/internal/service"
)

type Server struct {
	service *service.InventoryService
	mux     *http.ServeMux
	logger  *slog.Logger
}

func NewServer(svc *service.InventoryService, logger *slog.Logger) *Server {
	s := &Server{
		service: svc,
		mux:     http.NewServeMux(),
		logger:  logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /api/locations", s.handleListLocations)
	s.mux.HandleFunc("POST /api/locations", s.handleSaveLocation)
	s.mux.HandleFunc("DELETE /api/locations/{id}", s.handleDeleteLocation)

	s.mux.HandleFunc("GET /api/boxes", s.handleListBoxes)
	s.mux.HandleFunc("POST /api/boxes", s.handleSaveBox)
	s.mux.HandleFunc("GET /api/boxes/{id}", s.handleGetBox)
	s.mux.HandleFunc("DELETE /api/boxes/{id}", s.handleDeleteBox)
	s.mux.HandleFunc("POST /api/boxes/{id}/move", s.handleMoveBox)
	s.mux.HandleFunc("GET /api/boxes/{id}/items", s.handleListBoxItems)

	s.mux.HandleFunc("GET /api/items", s.handleListItems)
	s.mux.HandleFunc("POST /api/items", s.handleSaveItem)
	s.mux.HandleFunc("GET /api/items/{id}", s.handleGetItem)
	s.mux.HandleFunc("DELETE /api/items/{id}", s.handleDeleteItem)
	s.mux.HandleFunc("POST /api/items/{id}/move", s.handleMoveItem)
	s.mux.HandleFunc("POST /api/items/{id}/loan", s.handleLoanItem)
	s.mux.HandleFunc("POST /api/items/{id}/return", s.handleReturnItem)

	s.mux.HandleFunc("POST /api/photos", s.handleNormalizePhoto)
	s.mux.HandleFunc("POST /api/assistant/analyze", s.handleAnalyze)
	s.mux.HandleFunc("POST /api/assistant/place", s.handleResolvePlace)
	s.mux.HandleFunc("POST /api/assistant/chat", s.handleChat)
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"request_id", uuid.NewString(),
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, securityHeaders(s.mux)).ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return srv.ListenAndServe()
}
