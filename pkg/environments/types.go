package environments

import (
	"github.com/gorilla/mux"
	"github.com/spf13/pflag"
)

// EnvName ...
type EnvName string

// Names of the supported environments
const (
	DevelopmentEnv EnvName = "development"
	TestingEnv     EnvName = "testing"
	ProductionEnv  EnvName = "production"

	// EnvironmentStringKey the environment variable selecting the environment
	EnvironmentStringKey = "NEWSLETTER_ENV"
	// EnvironmentDefault ...
	EnvironmentDefault = DevelopmentEnv
)

// ConfigModule is a configuration section read from flags and secret files.
type ConfigModule interface {
	AddFlags(fs *pflag.FlagSet)
	ReadFiles() error
}

// BootService is started when the env runs and stopped when it ends.
type BootService interface {
	Start()
	Stop()
}

// RouteLoader registers the routes of one API.
type RouteLoader interface {
	AddRoutes(mainRouter *mux.Router) error
}

// ServiceValidator validates cross cutting configuration once every ConfigModule has read its files.
type ServiceValidator interface {
	Validate() error
}

// EnvLoader provides the flag defaults of an environment and may adjust configuration before it is read.
type EnvLoader interface {
	Defaults() map[string]string
	ModifyConfiguration(env *Env) error
}
