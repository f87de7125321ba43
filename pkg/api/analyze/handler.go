// Package analyze exposes the document analysis pipeline over HTTP. Uploaded
// files are written to a temp path, analyzed, and the result is cached under
// a generated analysis id so reports can be fetched afterwards.
package analyze

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"finsight/pkg/core/extract"
	"finsight/pkg/core/pipeline"
	"finsight/pkg/core/report"
	"finsight/pkg/logger"
)

// Handler serves the analysis endpoints.
type Handler struct {
	analyzer       *pipeline.Analyzer
	results        *gocache.Cache
	maxUploadBytes int64
}

// NewHandler builds a Handler whose results live in an in-memory cache for
// ttl. Expired entries are swept at twice the ttl.
func NewHandler(maxUploadBytes int64, ttl time.Duration) *Handler {
	return &Handler{
		analyzer:       pipeline.NewAnalyzer(),
		results:        gocache.New(ttl, 2*ttl),
		maxUploadBytes: maxUploadBytes,
	}
}

// Routes mounts the analysis endpoints on a fresh router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/analyze", h.Analyze)
	r.Get("/analysis/{id}", h.GetAnalysis)
	r.Get("/analysis/{id}/report", h.GetReport)
	return r
}

// analyzeResponse wraps the pipeline result with its cache id.
type analyzeResponse struct {
	AnalysisID string                   `json:"analysis_id"`
	Result     *pipeline.AnalysisResult `json:"result"`
}

// Analyze accepts a multipart upload under the "file" field, runs the
// pipeline on it, and returns the result together with an analysis id.
// The optional "file_type" field forces pdf or csv handling.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("parse upload: %v", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	fileType := r.FormValue("file_type")
	if fileType == "" {
		fileType = extract.FileTypeAuto
	}

	tmpPath, err := saveUpload(file, header.Filename)
	if err != nil {
		logger.L.Error("save upload", "error", err)
		writeError(w, http.StatusInternalServerError, "could not store upload")
		return
	}
	defer os.Remove(tmpPath)

	result := h.analyzer.Analyze(tmpPath, fileType)

	id := uuid.NewString()
	h.results.SetDefault(id, result)

	logger.L.Info("analysis complete",
		"analysis_id", id,
		"filename", header.Filename,
		"status", result.Status,
		"document_type", result.DocumentType)

	status := http.StatusOK
	if result.Status == pipeline.StatusError {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, analyzeResponse{AnalysisID: id, Result: result})
}

// GetAnalysis returns a previously computed result by id.
func (h *Handler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	result, ok := h.lookup(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "analysis not found or expired")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// GetReport renders the cached result as an HTML report.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	result, ok := h.lookup(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "analysis not found or expired")
		return
	}
	html, err := report.HTML(result)
	if err != nil {
		logger.L.Error("render report", "error", err)
		writeError(w, http.StatusInternalServerError, "could not render report")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, html)
}

func (h *Handler) lookup(id string) (*pipeline.AnalysisResult, bool) {
	v, ok := h.results.Get(id)
	if !ok {
		return nil, false
	}
	result, ok := v.(*pipeline.AnalysisResult)
	return result, ok
}

// saveUpload copies the upload to a temp file, keeping the original extension
// so file type detection still works on the stored copy.
func saveUpload(src io.Reader, filename string) (string, error) {
	ext := filepath.Ext(filename)
	tmp, err := os.CreateTemp("", "finsight-upload-*"+ext)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, src); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write upload: %w", err)
	}
	return tmp.Name(), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.L.Error("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
