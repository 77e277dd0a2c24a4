package environments

import (
	"github.com/stackrox/newsletter-manager/pkg/auth"
	"github.com/stackrox/newsletter-manager/pkg/environments"
)

// testingJWTSecret signs the tokens of test runs only.
const testingJWTSecret = "newsletter-manager-testing-secret-0000" // pragma: allowlist secret

// TestingEnvLoader is used by unit and integration tests. Nothing is read from secret files.
type TestingEnvLoader struct{}

var _ environments.EnvLoader = TestingEnvLoader{}

// NewTestingEnvLoader ...
func NewTestingEnvLoader() environments.EnvLoader {
	return TestingEnvLoader{}
}

// Defaults ...
func (t TestingEnvLoader) Defaults() map[string]string {
	return map[string]string{
		"v":                             "0",
		"logtostderr":                   "true",
		"enable-https":                  "false",
		"enable-metrics-https":          "false",
		"enable-health-check-https":     "false",
		"enable-newsletter-log-worker":  "false",
		"enable-pprof":                  "false",
		"enforce-list-permission":       "false",
		"jwt-secret-file":               "",
		"permission-groups-config-file": "",
		"db-host-file":                  "",
		"db-port-file":                  "",
		"db-user-file":                  "",
		"db-password-file":              "",
		"db-name-file":                  "",
	}
}

// ModifyConfiguration falls back to a fixed signing secret. The database is configured through DATABASE_* variables.
func (t TestingEnvLoader) ModifyConfiguration(env *environments.Env) error {
	var authConfig *auth.AuthConfig
	if err := env.Resolve(&authConfig); err != nil {
		return err
	}
	if authConfig.JWTSecret == "" {
		authConfig.JWTSecret = testingJWTSecret
	}
	return nil
}
