package server

import (
	"fmt"
	"net/http"

	health "github.com/docker/go-healthcheck"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/stackrox/newsletter-manager/pkg/api"
	"github.com/stackrox/newsletter-manager/pkg/db"
	"github.com/stackrox/newsletter-manager/pkg/environments"
)

const maintenanceCheck = "maintenance_status"

var errMaintenance = errors.New("maintenance mode")

var _ environments.BootService = &HealthCheckServer{}

// HealthCheckServer answers liveness and readiness probes.
// POST /healthcheck/down puts the instance into maintenance until POST /healthcheck/up.
type HealthCheckServer struct {
	*listener
	maintenance         health.Updater
	dbConnectionFactory *db.ConnectionFactory
}

// NewHealthCheckServer ...
func NewHealthCheckServer(healthCheckConfig *HealthCheckConfig, serverConfig *ServerConfig, dbConnectionFactory *db.ConnectionFactory) *HealthCheckServer {
	registry := health.NewRegistry()
	s := &HealthCheckServer{
		maintenance:         health.NewStatusUpdater(),
		dbConnectionFactory: dbConnectionFactory,
	}
	registry.Register(maintenanceCheck, s.maintenance)

	router := mux.NewRouter()
	router.HandleFunc("/healthcheck", statusHandler(registry)).Methods(http.MethodGet)
	router.HandleFunc("/healthcheck/down", func(http.ResponseWriter, *http.Request) { s.maintenance.Update(errMaintenance) }).Methods(http.MethodPost)
	router.HandleFunc("/healthcheck/up", func(http.ResponseWriter, *http.Request) { s.maintenance.Update(nil) }).Methods(http.MethodPost)
	router.HandleFunc("/healthcheck/ready", s.ready).Methods(http.MethodGet)

	s.listener = newListener("health check", healthCheckConfig.BindAddress, router, healthCheckConfig.EnableHTTPS, serverConfig)
	return s
}

// statusHandler reports 503 with the failing checks as JSON while any check fails.
func statusHandler(registry *health.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		failing := registry.CheckStatus()
		if len(failing) == 0 {
			w.WriteHeader(http.StatusOK)
			return
		}
		api.SendServiceUnavailable(w, r, fmt.Sprintf("checks failing: %v", failing))
	}
}

// ready backs the readiness check: the instance serves traffic only with a working DB.
func (s *HealthCheckServer) ready(w http.ResponseWriter, r *http.Request) {
	if err := s.dbConnectionFactory.CheckConnection(); err != nil {
		api.SendServiceUnavailable(w, r, "DB connection failed")
	}
}
