package web

import (
	"net/http"

	"github.com/sergiogarciaj/bartulos/internal/domain"
)

func (s *Server) handleListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := s.service.ListLocations(r.Context())
	if err != nil {
		s.serviceError(w, err, "list locations failed")
		return
	}
	if locations == nil {
		locations = []domain.Location{}
	}
	writeJSON(w, http.StatusOK, locations)
}

func (s *Server) handleSaveLocation(w http.ResponseWriter, r *http.Request) {
	var loc domain.Location
	if !decodeJSON(w, r, &loc) {
		return
	}

	saved, err := s.service.SaveLocation(r.Context(), loc)
	if err != nil {
		s.serviceError(w, err, "save location failed")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleDeleteLocation(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteLocation(r.Context(), r.PathValue("id")); err != nil {
		s.serviceError(w, err, "delete location failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
