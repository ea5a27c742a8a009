package server

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/growlog/growlog-api/internal/errors"
	"github.com/growlog/growlog-api/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps the error taxonomy onto HTTP statuses. Logging goes through
// the central error handler; the client only sees the message for
// request-level errors, internal details stay in the logs.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	s.errs.Handle(r.Context(), err)

	status := statusFromError(err)
	message := "internal server error"
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && status < http.StatusInternalServerError {
		message = appErr.Message
	}

	writeJSON(w, status, map[string]string{"error": message})
}

func statusFromError(err error) int {
	switch apperrors.TypeOf(err) {
	case apperrors.ErrorTypeValidation:
		return http.StatusBadRequest
	case apperrors.ErrorTypeConflict:
		return http.StatusConflict
	case apperrors.ErrorTypeNotFound:
		return http.StatusNotFound
	case apperrors.ErrorTypePermission:
		return http.StatusForbidden
	case apperrors.ErrorTypeRateLimit:
		return http.StatusTooManyRequests
	case apperrors.ErrorTypeExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
