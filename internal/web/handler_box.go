package web

import (
	"net/http"

	"github.com/sergiogarciaj/bartulos/internal/domain"
)

// handleListBoxes filters by the location query parameter; absent or "ALL"
// returns every box.
func (s *Server) handleListBoxes(w http.ResponseWriter, r *http.Request) {
	boxes, err := s.service.ListBoxes(r.Context(), r.URL.Query().Get("location"))
	if err != nil {
		s.serviceError(w, err, "list boxes failed")
		return
	}
	if boxes == nil {
		boxes = []domain.Box{}
	}
	writeJSON(w, http.StatusOK, boxes)
}

func (s *Server) handleSaveBox(w http.ResponseWriter, r *http.Request) {
	var box domain.Box
	if !decodeJSON(w, r, &box) {
		return
	}

	saved, err := s.service.SaveBox(r.Context(), box)
	if err != nil {
		s.serviceError(w, err, "save box failed")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleGetBox(w http.ResponseWriter, r *http.Request) {
	box, err := s.service.GetBox(r.Context(), r.PathValue("id"))
	if err != nil {
		s.serviceError(w, err, "get box failed")
		return
	}
	writeJSON(w, http.StatusOK, box)
}

func (s *Server) handleDeleteBox(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteBox(r.Context(), r.PathValue("id")); err != nil {
		s.serviceError(w, err, "delete box failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMoveBox(w http.ResponseWriter, r *http.Request) {
	var req struct {
		LocationID string `json:"locationId"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	box, err := s.service.MoveBox(r.Context(), r.PathValue("id"), req.LocationID)
	if err != nil {
		s.serviceError(w, err, "move box failed")
		return
	}
	writeJSON(w, http.StatusOK, box)
}

func (s *Server) handleListBoxItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.service.ListItems(r.Context(), r.PathValue("id"))
	if err != nil {
		s.serviceError(w, err, "list box items failed")
		return
	}
	if items == nil {
		items = []domain.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}
