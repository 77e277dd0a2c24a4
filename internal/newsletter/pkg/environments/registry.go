package environments

import (
	"github.com/pkg/errors"

	"github.com/stackrox/newsletter-manager/pkg/environments"
)

// GetEnvironmentLoader returns the loader of the named environment.
func GetEnvironmentLoader(name string) (environments.EnvLoader, error) {
	switch environments.EnvName(name) {
	case environments.TestingEnv:
		return NewTestingEnvLoader(), nil
	case environments.DevelopmentEnv:
		return NewDevelopmentEnvLoader(), nil
	case environments.ProductionEnv:
		return NewProductionEnvLoader(), nil
	default:
		return nil, errors.Errorf("environment %q does not exist", name)
	}
}
