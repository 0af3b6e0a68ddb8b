package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/nguyentantai21042004/summary-flow/internal/logger"
	"github.com/nguyentantai21042004/summary-flow/internal/store"
)

type uploadResponse struct {
	OriginalFilename    string `json:"original_filename"`
	SummaryContent      string `json:"summary_content"`
	DBID                string `json:"db_id"`
	SummaryDownloadName string `json:"summary_download_name"`
}

type urlIngestRequest struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Document Summarizer API is running",
	})
}

// handleUpload accepts a multipart file, runs the summarization pipeline and
// records the result.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("missing file field: %v", err))
		return
	}
	defer file.Close()

	filename := filepath.Base(header.Filename)
	if filename == "" || filename == "." {
		writeError(w, http.StatusBadRequest, "invalid filename")
		return
	}

	if err := os.MkdirAll(s.cfg.Paths.Raw, 0755); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to save uploaded file: %v", err))
		return
	}

	rawPath := filepath.Join(s.cfg.Paths.Raw, filename)
	dest, err := os.Create(rawPath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to save uploaded file: %v", err))
		return
	}
	_, err = io.Copy(dest, file)
	if closeErr := dest.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(rawPath)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to save uploaded file: %v", err))
		return
	}

	res, err := s.processor.Process(ctx, rawPath, "")
	if err != nil {
		s.logger.Error(ctx, "Summarization failed for %s: %v", filename, err)
		os.Remove(rawPath)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to generate summary: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, uploadResponse{
		OriginalFilename:    filename,
		SummaryContent:      res.Summary,
		DBID:                res.RecordID,
		SummaryDownloadName: filepath.Base(res.SummaryFilePath),
	})
}

// handleIngestURL fetches a remote document into the raw directory and runs
// the same pipeline as an upload.
func (s *Server) handleIngestURL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req urlIngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if req.URL == "" || req.Filename == "" {
		writeError(w, http.StatusBadRequest, "url and filename are required")
		return
	}

	rawPath, err := s.ingestor.SaveFromURL(ctx, req.URL, req.Filename)
	if err != nil {
		writeError(w, http.StatusBadRequest, logger.FormatError(err))
		return
	}

	res, err := s.processor.Process(ctx, rawPath, req.URL)
	if err != nil {
		s.logger.Error(ctx, "Summarization failed for %s: %v", req.Filename, err)
		os.Remove(rawPath)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to generate summary: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, uploadResponse{
		OriginalFilename:    req.Filename,
		SummaryContent:      res.Summary,
		DBID:                res.RecordID,
		SummaryDownloadName: filepath.Base(res.SummaryFilePath),
	})
}

// handleIngestAll acknowledges a bulk ingestion request. Bulk processing is
// handled by the inbox directory watcher; this endpoint only accepts the
// request.
func (s *Server) handleIngestAll(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusAccepted, map[string]string{
		"message": "Bulk ingestion request received.",
	})
}

func (s *Server) handleDownloadSummary(w http.ResponseWriter, r *http.Request) {
	filename := filepath.Base(chi.URLParam(r, "filename"))
	path := filepath.Join(s.cfg.Paths.Summaries, filename)

	if _, err := os.Stat(path); err != nil {
		writeError(w, http.StatusNotFound, "Summary file not found")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	http.ServeFile(w, r, path)
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	recs, err := s.store.List(r.Context(), 1000)
	if err != nil {
		s.logger.Error(r.Context(), "DB read error: %v", err)
		writeError(w, http.StatusInternalServerError, "Database error on fetch.")
		return
	}
	if recs == nil {
		recs = []*store.DocumentRecord{}
	}
	writeJSON(w, http.StatusOK, recs)
}

// handleCreateDocument mirrors the legacy placeholder endpoint: records are
// created through /upload/ or /ingest_url/.
func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Use /upload/ or /ingest_url/ to create summaries.",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"error": detail})
}
