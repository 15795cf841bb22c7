package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "retail/internal/errors"
)

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", apperrors.NewValidationError("invalid ID format"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"unauthorized", apperrors.NewUnauthorizedError("nope"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"not found", apperrors.NewNotFoundError("Product not found"), http.StatusNotFound, "NOT_FOUND"},
		{"internal", apperrors.NewInternalError("db", errors.New("down")), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"plain", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
			req = req.WithContext(WithTraceID(req.Context(), "trace-1"))
			rec := httptest.NewRecorder()

			WriteError(rec, req, tt.err, zap.NewNop())

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error)
			assert.Equal(t, "trace-1", body.TraceID)
		})
	}
}

func TestWriteError_InternalDoesNotLeakCause(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()

	WriteError(rec, req, errors.New("mongo: connection string secret"), zap.NewNop())

	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestTraceID_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", TraceID(req.Context()))
}
