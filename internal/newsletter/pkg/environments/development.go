// Package environments holds the flag defaults of each environment the service runs in.
package environments

import (
	"os"

	"github.com/stackrox/newsletter-manager/pkg/db"
	"github.com/stackrox/newsletter-manager/pkg/environments"
)

// DevelopmentEnvLoader ...
type DevelopmentEnvLoader struct{}

var _ environments.EnvLoader = DevelopmentEnvLoader{}

// NewDevelopmentEnvLoader ...
func NewDevelopmentEnvLoader() environments.EnvLoader {
	return DevelopmentEnvLoader{}
}

// Defaults ...
func (d DevelopmentEnvLoader) Defaults() map[string]string {
	return map[string]string{
		"v":                             "10",
		"logtostderr":                   "true",
		"enable-https":                  "false",
		"enable-metrics-https":          "false",
		"enable-health-check-https":     "false",
		"enable-newsletter-log-worker":  "false",
		"permission-groups-config-file": "config/permission-groups.yaml",
	}
}

// ModifyConfiguration enables database debugging when DB_DEBUG is set.
func (d DevelopmentEnvLoader) ModifyConfiguration(env *environments.Env) error {
	var databaseConfig *db.DatabaseConfig
	if err := env.Resolve(&databaseConfig); err != nil {
		return err
	}
	if os.Getenv("DB_DEBUG") == "true" {
		databaseConfig.Debug = true
	}
	return nil
}
