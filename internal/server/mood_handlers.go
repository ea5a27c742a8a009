package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/growlog/growlog-api/internal/services"
)

func (s *Server) handleCreateMood(w http.ResponseWriter, r *http.Request) {
	var input services.CreateMoodInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	mood, err := s.moods.Create(r.Context(), userIDFromContext(r), input)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "mood recorded",
		"mood":    mood,
	})
}

func (s *Server) handleListMoods(w http.ResponseWriter, r *http.Request) {
	moods, err := s.moods.ListByDate(r.Context(), userIDFromContext(r),
		r.URL.Query().Get("date"), r.URL.Query().Get("emoji"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"moods": moods})
}

func (s *Server) handleUpdateMood(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid mood id"})
		return
	}

	var input services.UpdateMoodInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	mood, err := s.moods.Update(r.Context(), userIDFromContext(r), id, input)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "mood updated",
		"mood":    mood,
	})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
