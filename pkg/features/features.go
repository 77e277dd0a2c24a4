// Package features helps enable or disable features.
package features

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const envVarPrefix = "NEWSLETTER_"

// A FeatureFlag is a product behavior that can be enabled or disabled using an environment variable.
type FeatureFlag interface {
	Name() string
	EnvVar() string
	Enabled() bool
	Default() bool
}

var (
	// Flags contains all defined FeatureFlags by name.
	Flags = make(map[string]FeatureFlag)
)

func registerFeature(name, envVar string, defaultValue bool) FeatureFlag {
	if !strings.HasPrefix(envVar, envVarPrefix) {
		panic(fmt.Sprintf("invalid env var: %s, must start with %s", envVar, envVarPrefix))
	}
	f := &feature{
		name:         name,
		envVar:       envVar,
		defaultValue: defaultValue,
	}
	Flags[f.Name()] = f
	return f
}

type feature struct {
	name         string
	envVar       string
	defaultValue bool
}

func (f *feature) Name() string {
	return f.name
}

func (f *feature) EnvVar() string {
	return f.envVar
}

func (f *feature) Default() bool {
	return f.defaultValue
}

// Enabled parses the environment variable, falling back to the default when it is unset or not a boolean.
func (f *feature) Enabled() bool {
	value, ok := os.LookupEnv(f.envVar)
	if !ok {
		return f.defaultValue
	}
	enabled, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return f.defaultValue
	}
	return enabled
}
