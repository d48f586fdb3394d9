package web

import (
	"net/http"

	"github.com/sergiogarciaj/bartulos/internal/assistant"
)

// handleNormalizePhoto converts an uploaded image into the embedded data
// string stored on records. A decode failure is a client error: the photo
// is not persisted.
func (s *Server) handleNormalizePhoto(w http.ResponseWriter, r *http.Request) {
	data, ok := readUploadedPhoto(w, r)
	if !ok {
		return
	}

	photoURL, err := s.service.NormalizePhoto(data)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid or unsupported image")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"photoUrl": photoURL})
}

// handleAnalyze normalizes the upload and returns the photo together with
// the assistant's best-effort metadata. The metadata side never fails; on
// provider errors the fixed fallback record comes back instead.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	data, ok := readUploadedPhoto(w, r)
	if !ok {
		return
	}

	photoURL, metadata, err := s.service.AnalyzeItemPhoto(r.Context(), data)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid or unsupported image")
		return
	}
	writeJSON(w, http.StatusOK, struct {
		PhotoURL string              `json:"photoUrl"`
		Metadata *assistant.Metadata `json:"metadata"`
	}{photoURL, metadata})
}

func (s *Server) handleResolvePlace(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query string `json:"query"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	writeJSON(w, http.StatusOK, s.service.ResolvePlace(r.Context(), req.Query))
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string           `json:"message"`
		History []assistant.Turn `json:"history"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	answer, err := s.service.Chat(r.Context(), req.Message, req.History)
	if err != nil {
		s.serviceError(w, err, "chat failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"answer": answer})
}
