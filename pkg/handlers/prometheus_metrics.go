package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stackrox/newsletter-manager/pkg/metrics"
)

// PrometheusMetricsHandler serves the registered collectors.
type PrometheusMetricsHandler struct{}

// NewPrometheusMetricsHandler ...
func NewPrometheusMetricsHandler() *PrometheusMetricsHandler {
	return &PrometheusMetricsHandler{}
}

// Handler ...
func (h *PrometheusMetricsHandler) Handler() http.Handler {
	return promhttp.Handler()
}

// MetricsMiddleware records the count and duration of every request by route name.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := "unknown"
		if current := mux.CurrentRoute(r); current != nil && current.GetName() != "" {
			route = current.GetName()
		}
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		metrics.ObserveAPIRequest(route, r.Method, rec.status, time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
