package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  *AppError
		code int
	}{
		{"not found", NewNotFoundError("missing", cause), http.StatusNotFound},
		{"validation", NewValidationError("bad", cause), http.StatusBadRequest},
		{"conflict", NewConflictError("locked", cause), http.StatusConflict},
		{"too many", NewTooManyRequestsError("slow down"), http.StatusTooManyRequests},
		{"unavailable", NewServiceUnavailableError("down", cause), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.StatusCode())
		})
	}
}

func TestInternalErrorHidesDetails(t *testing.T) {
	cause := errors.New("disk full")
	err := NewInternalError("save failed", cause)

	assert.Equal(t, "Internal server error", err.UserMessage())
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "save failed")
}

func TestWithContext(t *testing.T) {
	err := NewServiceUnavailableError("storage unavailable", nil).WithContext("storage")
	assert.Equal(t, "storage", err.GetContext())
	assert.Equal(t, "storage unavailable", err.Error())
}

func TestErrorMetricsCollector(t *testing.T) {
	m := NewErrorMetricsCollector(2)

	m.RecordError(NewNotFoundError("a", nil), "/api/x", "r1")
	m.RecordError(NewValidationError("b", nil), "/api/x", "r2")
	m.RecordError(NewValidationError("c", nil), "/api/y", "r3")

	s := m.Snapshot()
	assert.EqualValues(t, 3, s.TotalErrors)
	assert.EqualValues(t, 2, s.ErrorsByType["ValidationError"])
	assert.EqualValues(t, 2, s.ErrorsByEndpoint["/api/x"])
	require.Len(t, s.LastErrors, 2)
	assert.Equal(t, "r3", s.LastErrors[0].RequestID)

	m.Reset()
	assert.Zero(t, m.Snapshot().TotalErrors)
}
