// Package ctl contains the newsletterctl subcommands talking to a running newsletter-manager.
package ctl

import (
	"os"
	"strings"

	"github.com/golang/glog"

	"github.com/stackrox/newsletter-manager/pkg/client/newslettermgr"
)

const (
	endpointEnvVar = "NEWSLETTERCTL_ENDPOINT"
	tokenEnvVar    = "NEWSLETTERCTL_TOKEN"
	caFileEnvVar   = "NEWSLETTERCTL_CA_FILE"

	defaultEndpoint = "http://localhost:8000"

	apiErrorMsg = "Failed to %s: %v"
)

func configFromEnv() newslettermgr.Config {
	endpoint := os.Getenv(endpointEnvVar)
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	config := newslettermgr.Config{
		Endpoint: strings.TrimSuffix(endpoint, "/"),
		Token:    os.Getenv(tokenEnvVar),
	}
	if caFile := os.Getenv(caFileEnvVar); caFile != "" {
		config.CAFiles = []string{caFile}
	}
	return config
}

// authenticatedClient exits when no token is configured.
func authenticatedClient() *newslettermgr.Client {
	config := configFromEnv()
	if config.Token == "" {
		glog.Fatalf("%s is not set, run 'newsletterctl login' first", tokenEnvVar)
	}
	return mustClient(config)
}

func mustClient(config newslettermgr.Config) *newslettermgr.Client {
	client, err := newslettermgr.NewClient(config)
	if err != nil {
		glog.Fatalf("Unable to create client for %s: %v", config.Endpoint, err)
	}
	return client
}
