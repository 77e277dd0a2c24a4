// Package providers ...
package providers

import (
	"github.com/goava/di"

	"github.com/stackrox/newsletter-manager/pkg/auth"
	"github.com/stackrox/newsletter-manager/pkg/db"
	"github.com/stackrox/newsletter-manager/pkg/environments"
	"github.com/stackrox/newsletter-manager/pkg/server"
	"github.com/stackrox/newsletter-manager/pkg/server/profiler"
	"github.com/stackrox/newsletter-manager/pkg/workers"
)

// CoreConfigProviders ...
func CoreConfigProviders() di.Option {
	return di.Options(
		// Add config types
		di.Provide(server.NewHealthCheckConfig, di.As(new(environments.ConfigModule))),
		di.Provide(db.NewDatabaseConfig, di.As(new(environments.ConfigModule))),
		di.Provide(server.NewServerConfig, di.As(new(environments.ConfigModule))),
		di.Provide(server.NewMetricsConfig, di.As(new(environments.ConfigModule))),
		di.Provide(auth.NewAuthConfig, di.As(new(environments.ConfigModule))),
		di.Provide(profiler.NewPprofConfig, di.As(new(environments.ConfigModule))),

		ServiceProviders(),
	)
}

// ServiceProviders ...
func ServiceProviders() di.Option {
	return di.Options(
		// provide the service constructors
		di.Provide(db.NewConnectionFactory),
		di.Provide(auth.NewTokenIssuer),

		// Types registered as a BootService are started when the env is started
		di.Provide(server.NewAPIServer, di.As(new(environments.BootService))),
		di.Provide(server.NewMetricsServer, di.As(new(environments.BootService))),
		di.Provide(server.NewHealthCheckServer, di.As(new(environments.BootService))),
		di.Provide(profiler.NewPprofServer, di.As(new(environments.BootService))),
		di.Provide(workers.NewService, di.As(new(environments.BootService))),
	)
}
