package server

import "net/http"

func (s *Server) handleDailySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.daily.GetDailySummary(r.Context(), userIDFromContext(r), r.URL.Query().Get("date"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleStatsSummary(w http.ResponseWriter, r *http.Request) {
	stats, err := s.stats.GetSummary(r.Context(), userIDFromContext(r),
		r.URL.Query().Get("date"), r.URL.Query().Get("period"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
