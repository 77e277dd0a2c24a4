// Package newsletter wires the newsletter service into the dependency injection container.
package newsletter

import (
	"github.com/goava/di"

	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/config"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/migrations"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/routes"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/services"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/workers"
	"github.com/stackrox/newsletter-manager/pkg/environments"
	"github.com/stackrox/newsletter-manager/pkg/providers"
	coreWorkers "github.com/stackrox/newsletter-manager/pkg/workers"
)

// ConfigProviders ...
func ConfigProviders() di.Option {
	return di.Options(
		providers.CoreConfigProviders(),

		// Configuration for the newsletter service
		di.Provide(config.NewNewsletterConfig, di.As(new(environments.ConfigModule))),
		di.Provide(config.NewPermissionGroupsConfig, di.As(new(environments.ConfigModule)), di.As(new(environments.ServiceValidator))),

		ServiceProviders(),
		di.Provide(migrations.NewWithFactory),
	)
}

// ServiceProviders ...
func ServiceProviders() di.Option {
	return di.Options(
		di.Provide(services.NewNewsletterLogService),
		di.Provide(services.NewUserService),
		di.Provide(services.NewNewsletterService),
		di.Provide(services.NewClientService),
		di.Provide(routes.NewRouteLoader),
		di.Provide(workers.NewNewsletterLogManager, di.As(new(coreWorkers.Worker))),
	)
}
