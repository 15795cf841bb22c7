package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	apperrors "retail/internal/errors"
	"retail/internal/httpx"
	"retail/internal/infrastructure/metrics"
)

// RouteMounter is implemented by the resource controllers.
type RouteMounter interface {
	Routes(r chi.Router)
}

func NewRouter(products, orders RouteMounter, health *HealthHandler, httpMetrics *metrics.HTTPMetrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(TraceID)
	r.Use(RequestLogger(logger, httpMetrics))
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		httpx.WriteError(w, req, apperrors.NewNotFoundError("route not found"), logger)
	})

	r.Get("/", health.Root)
	r.Get("/health", health.Health)
	r.Get("/test", health.Diagnostic)
	r.Method(http.MethodGet, "/metrics", httpMetrics.Handler())

	r.Route("/api/products", products.Routes)
	r.Route("/api/orders", orders.Routes)

	return r
}
