package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/sergiogarciaj/bartulos/internal/service"
)

// maxBodyBytes bounds request bodies; embedded photos fit comfortably.
const maxBodyBytes = 16 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// serviceError maps service failures to HTTP statuses.
func (s *Server) serviceError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrBorrowerRequired):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		s.logger.Error(logMsg, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// readUploadedPhoto extracts image bytes from either a multipart "photo"
// field or a raw request body.
func readUploadedPhoto(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
			writeError(w, http.StatusBadRequest, "invalid multipart form")
			return nil, false
		}
		f, _, err := r.FormFile("photo")
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing photo field")
			return nil, false
		}
		defer func() { _ = f.Close() }()
		data, err := io.ReadAll(f)
		if err != nil {
			writeError(w, http.StatusBadRequest, "failed to read photo")
			return nil, false
		}
		return data, true
	}

	data, err := io.ReadAll(r.Body)
	if err != nil || len(data) == 0 {
		writeError(w, http.StatusBadRequest, "empty body")
		return nil, false
	}
	return data, true
}
