package server

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-scanner/internal/analyzer"
	"github.com/jonathan/resume-scanner/internal/reader"
	"github.com/jonathan/resume-scanner/internal/types"
)

// handleUpload accepts one or more documents in the multipart field "file",
// runs the extractors over each, and returns the per-file results in request
// order. Any invalid file type or processing failure aborts the whole batch.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No file uploaded")
		return
	}

	files := r.MultipartForm.File["file"]
	if files == nil {
		s.errorResponse(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	if len(files) == 0 || files[0].Filename == "" {
		s.errorResponse(w, http.StatusBadRequest, "No selected file")
		return
	}
	if len(files) > s.cfg.MaxBatchSize {
		s.errorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("Too many files: at most %d per request", s.cfg.MaxBatchSize))
		return
	}

	// Validate every file type before any processing starts.
	for _, header := range files {
		if !reader.Supported(header.Filename) {
			s.errorResponse(w, http.StatusBadRequest,
				fmt.Sprintf("Invalid file type for %s. Allowed types: %s.",
					header.Filename, strings.Join(reader.SupportedTypes(), ", ")))
			return
		}
	}

	results := make([]types.FileResult, len(files))
	g, _ := errgroup.WithContext(r.Context())
	for i, header := range files {
		g.Go(func() error {
			result, err := s.processFile(header)
			if err != nil {
				return fmt.Errorf("Error processing file %s: %v", header.Filename, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, results)
}

// processFile spools one upload to disk, extracts its text from the spool
// file, and runs the analysis. The spool file is removed once processing
// finishes.
func (s *Server) processFile(header *multipart.FileHeader) (types.FileResult, error) {
	file, err := header.Open()
	if err != nil {
		return types.FileResult{}, fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return types.FileResult{}, fmt.Errorf("failed to read upload: %w", err)
	}

	// The spool name keeps the original extension so extraction dispatches
	// on the same type the upload was validated against.
	spoolPath := filepath.Join(s.cfg.UploadDir, uuid.NewString()+"-"+filepath.Base(header.Filename))
	if err := os.WriteFile(spoolPath, data, 0o600); err != nil {
		return types.FileResult{}, fmt.Errorf("failed to spool upload: %w", err)
	}
	defer os.Remove(spoolPath)

	text, err := reader.ExtractFile(spoolPath)
	if err != nil {
		return types.FileResult{}, err
	}

	return analyzer.AnalyzeFile(text, header.Filename), nil
}
