package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/stackrox/newsletter-manager/pkg/api"
	"github.com/stackrox/newsletter-manager/pkg/environments"
	"github.com/stackrox/newsletter-manager/pkg/handlers"
)

var _ environments.BootService = &MetricsServer{}

// MetricsServer exposes the prometheus registry on /metrics.
type MetricsServer struct {
	*listener
}

// NewMetricsServer ...
func NewMetricsServer(metricsConfig *MetricsConfig, serverConfig *ServerConfig) *MetricsServer {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(api.SendNotFound)
	router.Handle("/metrics", handlers.NewPrometheusMetricsHandler().Handler())

	return &MetricsServer{
		listener: newListener("metrics", metricsConfig.BindAddress, router, metricsConfig.EnableHTTPS, serverConfig),
	}
}
