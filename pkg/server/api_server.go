package server

import (
	"net/http"
	"time"

	"github.com/goava/di"
	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/stackrox/newsletter-manager/pkg/api"
	"github.com/stackrox/newsletter-manager/pkg/auth"
	"github.com/stackrox/newsletter-manager/pkg/environments"
	"github.com/stackrox/newsletter-manager/pkg/handlers"
	"github.com/stackrox/newsletter-manager/pkg/logger"
	"github.com/stackrox/newsletter-manager/pkg/server/logging"
)

var _ environments.BootService = &APIServer{}

// PublicPaths are reachable without a bearer token. Entries ending in "/" match as a prefix.
var PublicPaths = []string{
	"/api/newsletters_mgmt",
	"/api/newsletters_mgmt/v1",
	"/api/newsletters_mgmt/v1/auth/",
}

// APIServer serves the REST API.
type APIServer struct {
	*listener
}

// ServerOptions ...
type ServerOptions struct {
	di.Inject
	ServerConfig *ServerConfig
	TokenIssuer  *auth.TokenIssuer
	RouteLoaders []environments.RouteLoader
}

// NewAPIServer ...
func NewAPIServer(options ServerOptions) *APIServer {
	// mainRouter is top level "/"
	mainRouter := mux.NewRouter()
	mainRouter.NotFoundHandler = http.HandlerFunc(api.SendNotFound)
	mainRouter.MethodNotAllowedHandler = http.HandlerFunc(api.SendMethodNotAllowed)

	// Top-level middlewares

	// Operation ID middleware sets a relatively unique operation ID in the context of each request for debugging purposes
	mainRouter.Use(logger.OperationIDMiddleware)

	// Request logging middleware logs pertinent information about the request and response
	mainRouter.Use(logging.RequestLoggingMiddleware)

	mainRouter.Use(handlers.MetricsMiddleware)

	for _, loader := range options.RouteLoaders {
		exitOnError(loader.AddRoutes(mainRouter), "error adding routes")
	}

	// referring to the router as type http.Handler allows us to add middleware via more handlers
	var mainHandler http.Handler = mainRouter

	mainHandler = auth.NewAuthenticationMiddleware(options.TokenIssuer, PublicPaths...)(mainHandler)

	mainHandler = gorillahandlers.CORS(
		gorillahandlers.AllowedMethods([]string{
			http.MethodDelete,
			http.MethodGet,
			http.MethodPatch,
			http.MethodPost,
		}),
		gorillahandlers.AllowedHeaders([]string{
			"Authorization",
			"Content-Type",
		}),
		gorillahandlers.MaxAge(int((10 * time.Minute).Seconds())),
	)(mainHandler)

	mainHandler = gorillahandlers.CompressHandler(mainHandler)

	mainHandler = removeTrailingSlash(mainHandler)

	cfg := options.ServerConfig
	return &APIServer{listener: newListener("API", cfg.BindAddress, mainHandler, cfg.EnableHTTPS, cfg)}
}
