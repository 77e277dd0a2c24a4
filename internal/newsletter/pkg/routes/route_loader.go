// Package routes registers the newsletters_mgmt REST API.
package routes

import (
	"fmt"
	"net/http"

	"github.com/goava/di"
	"github.com/gorilla/mux"

	"github.com/stackrox/newsletter-manager/internal/newsletter/constants"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/config"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/handlers"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/services"
	"github.com/stackrox/newsletter-manager/pkg/api"
	"github.com/stackrox/newsletter-manager/pkg/auth"
	"github.com/stackrox/newsletter-manager/pkg/db"
	"github.com/stackrox/newsletter-manager/pkg/environments"
	"github.com/stackrox/newsletter-manager/pkg/logger"
)

type options struct {
	di.Inject
	NewsletterConfig *config.NewsletterConfig

	Newsletter    services.NewsletterService
	NewsletterLog services.NewsletterLogService
	Client        services.ClientService
	User          services.UserService
	TokenIssuer   *auth.TokenIssuer
	DB            *db.ConnectionFactory
}

// NewRouteLoader ...
func NewRouteLoader(s options) environments.RouteLoader {
	return &s
}

// AddRoutes ...
func (s *options) AddRoutes(mainRouter *mux.Router) error {
	basePath := fmt.Sprintf("%s/%s", constants.APIEndpoint, constants.NewslettersManagementAPIPrefix)
	s.buildAPIBaseRouter(mainRouter, basePath)
	return nil
}

func (s *options) buildAPIBaseRouter(mainRouter *mux.Router, basePath string) {
	newsletterHandler := handlers.NewNewsletterHandler(s.Newsletter)
	newsletterLogHandler := handlers.NewNewsletterLogHandler(s.NewsletterLog)
	clientHandler := handlers.NewClientHandler(s.Client)
	tokenHandler := handlers.NewTokenHandler(s.User, s.TokenIssuer)

	requirePrincipal := handlers.RequirePrincipal(s.User)
	requireListPermission := handlers.RequirePermission(s.User, constants.PermissionListNewsletter, s.NewsletterConfig.EnforceListPermission)

	// base path.
	apiRouter := mainRouter.PathPrefix(basePath).Subrouter()

	// /v1
	apiV1Router := apiRouter.PathPrefix("/" + constants.APIVersion).Subrouter()

	// /auth/token
	apiV1AuthRouter := apiV1Router.PathPrefix("/auth").Subrouter()
	apiV1AuthRouter.HandleFunc("/token", tokenHandler.Create).
		Name(logger.NewLogEvent("create-token", "issue an access token").ToString()).
		Methods(http.MethodPost)

	v1Collections := []api.CollectionMetadata{}

	// /newsletters
	v1Collections = append(v1Collections, api.CollectionMetadata{
		ID:   "newsletters",
		Kind: constants.KindNewsletterList,
	})
	apiV1NewslettersRouter := apiV1Router.PathPrefix("/newsletters").Subrouter()
	apiV1NewslettersRouter.HandleFunc("/{id}", newsletterHandler.Get).
		Name(logger.NewLogEvent("get-newsletter", "get a newsletter").ToString()).
		Methods(http.MethodGet)
	apiV1NewslettersRouter.HandleFunc("/{id}", newsletterHandler.Update).
		Name(logger.NewLogEvent("update-newsletter", "update a newsletter").ToString()).
		Methods(http.MethodPatch)
	apiV1NewslettersRouter.HandleFunc("/{id}", newsletterHandler.Delete).
		Name(logger.NewLogEvent("delete-newsletter", "delete a newsletter").ToString()).
		Methods(http.MethodDelete)
	apiV1NewslettersRouter.HandleFunc("/{id}/form", newsletterHandler.Form).
		Name(logger.NewLogEvent("get-newsletter-form", "get the update form of a newsletter").ToString()).
		Methods(http.MethodGet)
	apiV1NewslettersRouter.HandleFunc("", newsletterHandler.Create).
		Name(logger.NewLogEvent("create-newsletter", "create a newsletter").ToString()).
		Methods(http.MethodPost)
	apiV1NewslettersRouter.Use(requirePrincipal)

	apiV1NewslettersListRouter := apiV1NewslettersRouter.NewRoute().Subrouter()
	apiV1NewslettersListRouter.HandleFunc("", newsletterHandler.List).
		Name(logger.NewLogEvent("list-newsletter", "list newsletters").ToString()).
		Methods(http.MethodGet)
	apiV1NewslettersListRouter.Use(requireListPermission)

	// /newsletter_logs
	v1Collections = append(v1Collections, api.CollectionMetadata{
		ID:   "newsletter_logs",
		Kind: constants.KindNewsletterLogList,
	})
	apiV1LogsRouter := apiV1Router.PathPrefix("/newsletter_logs").Subrouter()
	apiV1LogsRouter.HandleFunc("", newsletterLogHandler.List).
		Name(logger.NewLogEvent("list-newsletter-logs", "list newsletter logs").ToString()).
		Methods(http.MethodGet)
	apiV1LogsRouter.Use(requirePrincipal)

	// /clients
	v1Collections = append(v1Collections, api.CollectionMetadata{
		ID:   "clients",
		Kind: constants.KindClient,
	})
	apiV1ClientsRouter := apiV1Router.PathPrefix("/clients").Subrouter()
	apiV1ClientsRouter.HandleFunc("", clientHandler.New).
		Name(logger.NewLogEvent("new-client", "render an empty client").ToString()).
		Methods(http.MethodGet)
	apiV1ClientsRouter.HandleFunc("", clientHandler.Create).
		Name(logger.NewLogEvent("create-client", "create a client").ToString()).
		Methods(http.MethodPost)
	apiV1ClientsRouter.Use(requirePrincipal)

	v1Metadata := api.VersionMetadata{
		ID:          constants.APIVersion,
		Collections: v1Collections,
	}
	apiMetadata := api.Metadata{
		ID: constants.NewslettersManagementAPIPrefix,
		Versions: []api.VersionMetadata{
			v1Metadata,
		},
	}
	apiRouter.HandleFunc("", apiMetadata.ServeHTTP).Methods(http.MethodGet)
	apiRouter.Use(db.TransactionMiddleware(s.DB))

	apiV1Router.HandleFunc("", v1Metadata.ServeHTTP).Methods(http.MethodGet)
}
