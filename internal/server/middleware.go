package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"retail/internal/httpx"
	"retail/internal/infrastructure/metrics"
)

// TraceID tags every request with an id, reusing one supplied by the caller.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(httpx.TraceIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(httpx.TraceIDHeader, id)
		next.ServeHTTP(w, r.WithContext(httpx.WithTraceID(r.Context(), id)))
	})
}

// RequestLogger logs and measures each request once the route has been
// resolved.
func RequestLogger(logger *zap.Logger, httpMetrics *metrics.HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			elapsed := time.Since(start)
			route := routePattern(r)

			httpMetrics.Observe(r.Method, route, status, elapsed)
			logger.Info("request handled",
				zap.String("traceId", httpx.TraceID(r.Context())),
				zap.String("method", r.Method),
				zap.String("route", route),
				zap.Int("status", status),
				zap.Duration("latency", elapsed),
			)
		})
	}
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
