package server

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"retail/internal/httpx"
)

const maxDiagnosticErrorLen = 80

// StoreProbe is the read-only view of the document store used by /test.
type StoreProbe interface {
	Name() string
	Ping(ctx context.Context) error
	CollectionNames(ctx context.Context) ([]string, error)
}

type DiagnosticResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type HealthHandler struct {
	store         StoreProbe
	urlConfigured bool
	logger        *zap.Logger
}

func NewHealthHandler(store StoreProbe, urlConfigured bool, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		store:         store,
		urlConfigured: urlConfigured,
		logger:        logger,
	}
}

func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Retail API running",
		"cod":     true,
	}, h.logger)
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true}, h.logger)
}

// Diagnostic reports store connectivity. Store failures are described in the
// body; the response itself is always 200.
func (h *HealthHandler) Diagnostic(w http.ResponseWriter, r *http.Request) {
	resp := DiagnosticResponse{
		Backend:          "Running",
		Database:         "Not Available",
		DatabaseURL:      "Not Set",
		DatabaseName:     h.store.Name(),
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}
	if h.urlConfigured {
		resp.DatabaseURL = "Set"
	}

	if err := h.store.Ping(r.Context()); err != nil {
		h.logger.Warn("store diagnostic failed", zap.String("traceId", httpx.TraceID(r.Context())), zap.Error(err))
		resp.Database = diagnosticError(err)
		httpx.WriteJSON(w, http.StatusOK, resp, h.logger)
		return
	}
	resp.ConnectionStatus = "Connected"

	names, err := h.store.CollectionNames(r.Context())
	if err != nil {
		h.logger.Warn("store diagnostic failed", zap.String("traceId", httpx.TraceID(r.Context())), zap.Error(err))
		resp.Database = diagnosticError(err)
		httpx.WriteJSON(w, http.StatusOK, resp, h.logger)
		return
	}
	if names != nil {
		resp.Collections = names
	}
	resp.Database = "Connected & Working"

	httpx.WriteJSON(w, http.StatusOK, resp, h.logger)
}

func diagnosticError(err error) string {
	msg := err.Error()
	if len(msg) > maxDiagnosticErrorLen {
		msg = msg[:maxDiagnosticErrorLen]
	}
	return "Error: " + msg
}
