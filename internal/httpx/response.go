package httpx

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	apperrors "retail/internal/errors"
)

const TraceIDHeader = "X-Trace-ID"

type traceIDKey struct{}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

func TraceID(ctx context.Context) string {
	id, _ := ctx.Value(traceIDKey{}).(string)
	return id
}

type ErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details,omitempty"`
	TraceID string                       `json:"traceId,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

// WriteError maps an application error onto its HTTP status. Unclassified
// errors are logged and reported as a generic 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *zap.Logger) {
	traceID := TraceID(r.Context())

	if ve, ok := apperrors.IsValidationError(err); ok {
		WriteJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "VALIDATION_ERROR",
			Message: ve.Message,
			Details: ve.Details,
			TraceID: traceID,
		}, logger)
		return
	}

	if ue, ok := apperrors.IsUnauthorizedError(err); ok {
		WriteJSON(w, http.StatusUnauthorized, ErrorResponse{
			Error:   "UNAUTHORIZED",
			Message: ue.Message,
			TraceID: traceID,
		}, logger)
		return
	}

	if nf, ok := apperrors.IsNotFoundError(err); ok {
		WriteJSON(w, http.StatusNotFound, ErrorResponse{
			Error:   "NOT_FOUND",
			Message: nf.Message,
			TraceID: traceID,
		}, logger)
		return
	}

	logger.Error("unexpected error",
		zap.String("traceId", traceID),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:   "INTERNAL_ERROR",
		Message: "an unexpected error occurred",
		TraceID: traceID,
	}, logger)
}
