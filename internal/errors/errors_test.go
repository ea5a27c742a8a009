package errors

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
)

type recordingHandler struct {
	records *[]slog.Record
}

func (h recordingHandler) Enabled(context.Context, slog.Level) bool { return true }
func (h recordingHandler) Handle(_ context.Context, r slog.Record) error {
	*h.records = append(*h.records, r)
	return nil
}
func (h recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h recordingHandler) WithGroup(string) slog.Handler      { return h }

func newRecordingLogger() (*slog.Logger, *[]slog.Record) {
	records := &[]slog.Record{}
	return slog.New(recordingHandler{records: records}), records
}

func TestHandlerRoutesByType(t *testing.T) {
	tests := []struct {
		err   error
		level slog.Level
	}{
		{NewValidationError("bad input"), slog.LevelWarn},
		{NewConflictError("duplicate"), slog.LevelWarn},
		{NewNotFoundError("missing"), slog.LevelWarn},
		{NewPermissionError("denied"), slog.LevelWarn},
		{NewDatabaseError(errors.New("down")), slog.LevelError},
		{NewExternalAPIError(errors.New("down"), "sentiment"), slog.LevelError},
		{errors.New("plain failure"), slog.LevelError},
	}

	for _, tt := range tests {
		logger, records := newRecordingLogger()
		NewHandler(logger).Handle(context.Background(), tt.err)
		if len(*records) != 1 {
			t.Errorf("Handle(%v) produced %d records, want 1", tt.err, len(*records))
			continue
		}
		if (*records)[0].Level != tt.level {
			t.Errorf("Handle(%v) level = %v, want %v", tt.err, (*records)[0].Level, tt.level)
		}
	}
}

func TestHandlerIgnoresNil(t *testing.T) {
	logger, records := newRecordingLogger()
	NewHandler(logger).Handle(context.Background(), nil)
	if len(*records) != 0 {
		t.Errorf("nil error produced %d records", len(*records))
	}
}

func TestTypeOf(t *testing.T) {
	if got := TypeOf(NewConflictError("dup")); got != ErrorTypeConflict {
		t.Errorf("TypeOf = %v, want conflict", got)
	}
	if got := TypeOf(errors.New("plain")); got != ErrorTypeInternal {
		t.Errorf("TypeOf(plain) = %v, want internal", got)
	}
	// Wrapped AppErrors are still recognized.
	wrapped := fmt.Errorf("context: %w", NewNotFoundError("missing"))
	if got := TypeOf(wrapped); got != ErrorTypeNotFound {
		t.Errorf("TypeOf(wrapped) = %v, want not_found", got)
	}
}

func TestIsType(t *testing.T) {
	err := NewPermissionError("denied")
	if !IsType(err, ErrorTypePermission) {
		t.Errorf("IsType missed a permission error")
	}
	if IsType(err, ErrorTypeValidation) {
		t.Errorf("IsType matched the wrong type")
	}
	if IsType(nil, ErrorTypeValidation) {
		t.Errorf("IsType matched nil")
	}
}
