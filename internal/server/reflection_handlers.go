package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/growlog/growlog-api/internal/services"
)

func (s *Server) handleCreateReflection(w http.ResponseWriter, r *http.Request) {
	var input services.CreateReflectionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	reflection, err := s.reflections.Create(r.Context(), userIDFromContext(r), input)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":    "reflection recorded",
		"reflection": reflection,
	})
}

func (s *Server) handleListReflections(w http.ResponseWriter, r *http.Request) {
	reflections, err := s.reflections.List(r.Context(), userIDFromContext(r), r.URL.Query().Get("date"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reflections": reflections})
}

func (s *Server) handleGetReflection(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid reflection id"})
		return
	}

	reflection, err := s.reflections.GetByID(r.Context(), userIDFromContext(r), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reflection": reflection})
}

func (s *Server) handleUpdateReflection(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid reflection id"})
		return
	}

	var input struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	reflection, err := s.reflections.Update(r.Context(), userIDFromContext(r), id, input.Content)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "reflection updated",
		"reflection": reflection,
	})
}
