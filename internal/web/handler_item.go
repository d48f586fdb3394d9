package web

import (
	"net/http"

	"github.com/sergiogarciaj/bartulos/internal/domain"
)

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.service.ListItems(r.Context(), r.URL.Query().Get("box"))
	if err != nil {
		s.serviceError(w, err, "list items failed")
		return
	}
	if items == nil {
		items = []domain.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleSaveItem(w http.ResponseWriter, r *http.Request) {
	var item domain.Item
	if !decodeJSON(w, r, &item) {
		return
	}

	saved, err := s.service.SaveItem(r.Context(), item)
	if err != nil {
		s.serviceError(w, err, "save item failed")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	item, err := s.service.GetItem(r.Context(), r.PathValue("id"))
	if err != nil {
		s.serviceError(w, err, "get item failed")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteItem(r.Context(), r.PathValue("id")); err != nil {
		s.serviceError(w, err, "delete item failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMoveItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BoxID string `json:"boxId"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := s.service.MoveItem(r.Context(), r.PathValue("id"), req.BoxID)
	if err != nil {
		s.serviceError(w, err, "move item failed")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleLoanItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BorrowerName       string `json:"borrowerName"`
		ExpectedReturnDate int64  `json:"expectedReturnDate"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := s.service.LoanItem(r.Context(), r.PathValue("id"), req.BorrowerName, req.ExpectedReturnDate)
	if err != nil {
		s.serviceError(w, err, "loan item failed")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleReturnItem(w http.ResponseWriter, r *http.Request) {
	item, err := s.service.ReturnItem(r.Context(), r.PathValue("id"))
	if err != nil {
		s.serviceError(w, err, "return item failed")
		return
	}
	writeJSON(w, http.StatusOK, item)
}
