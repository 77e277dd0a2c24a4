package environments

import (
	"github.com/stackrox/newsletter-manager/pkg/environments"
)

// ProductionEnvLoader ...
type ProductionEnvLoader struct{}

var _ environments.EnvLoader = ProductionEnvLoader{}

// NewProductionEnvLoader ...
func NewProductionEnvLoader() environments.EnvLoader {
	return ProductionEnvLoader{}
}

// Defaults ...
func (p ProductionEnvLoader) Defaults() map[string]string {
	return map[string]string{
		"v":                               "1",
		"logtostderr":                     "true",
		"api-server-bindaddress":          ":8000",
		"metrics-server-bindaddress":      ":8080",
		"health-check-server-bindaddress": ":8083",
		"db-sslmode":                      "verify-full",
		"enable-newsletter-log-worker":    "true",
		"permission-groups-config-file":   "config/permission-groups.yaml",
	}
}

// ModifyConfiguration ...
func (p ProductionEnvLoader) ModifyConfiguration(env *environments.Env) error {
	return nil
}
