package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nguyentantai21042004/summary-flow/internal/config"
	"github.com/nguyentantai21042004/summary-flow/internal/ingest"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
	"github.com/nguyentantai21042004/summary-flow/internal/processor"
	"github.com/nguyentantai21042004/summary-flow/internal/store"
)

// Server exposes the document summarization pipeline over HTTP.
type Server struct {
	cfg       *config.Config
	processor processor.Processor
	ingestor  ingest.Ingestor
	store     store.Store
	logger    logger.Logger
	http      *http.Server
}

// New creates the HTTP server and wires up all routes.
func New(cfg *config.Config, proc processor.Processor, ing ingest.Ingestor, st store.Store, log logger.Logger) *Server {
	s := &Server{
		cfg:       cfg,
		processor: proc,
		ingestor:  ing,
		store:     st,
		logger:    log,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(corsAllowAll)

	r.Get("/", s.handleRoot)
	r.Post("/upload/", s.handleUpload)
	r.Post("/ingest_url/", s.handleIngestURL)
	r.Post("/ingest_all/", s.handleIngestAll)
	r.Get("/download_summary/{filename}", s.handleDownloadSummary)

	r.Route("/api", func(r chi.Router) {
		r.Get("/documents", s.handleListDocuments)
		r.Post("/documents", s.handleCreateDocument)
	})

	s.http = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute, // summarization with retries can take minutes
	}

	return s
}

// Handler returns the route handler, exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func corsAllowAll(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
