// Package main is the newsletter-manager binary: the REST API server and its operator commands.
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/stackrox/newsletter-manager/internal/newsletter"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/cmd/check"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/cmd/migrate"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/cmd/token"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/cmd/users"
	newsletterEnvironments "github.com/stackrox/newsletter-manager/internal/newsletter/pkg/environments"
	"github.com/stackrox/newsletter-manager/pkg/cmd/serve"
	"github.com/stackrox/newsletter-manager/pkg/environments"
)

func main() {
	// A local .env is optional, variables already set take precedence.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		glog.Warningf("Unable to load .env: %v", err)
	}

	env, err := newEnv(environments.GetEnvironmentStrFromEnv())
	if err != nil {
		glog.Fatalf("Unable to initialize environment: %s", err.Error())
	}
	defer env.Cleanup()

	rootCmd := newRootCommand(env)
	if err := rootCmd.Execute(); err != nil {
		glog.Errorf("error running command: %v", err)
		glog.Flush()
		os.Exit(1)
	}
	glog.Flush()
}

func newEnv(name string) (*environments.Env, error) {
	loader, err := newsletterEnvironments.GetEnvironmentLoader(name)
	if err != nil {
		return nil, err
	}
	return environments.New(name, loader, newsletter.ConfigProviders())
}

func newRootCommand(env *environments.Env) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:  "newsletter-manager",
		Long: "newsletter-manager serves the newsletter management API",
	}

	// glog flags such as -v and -logtostderr are registered on the go flag set.
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	if err := env.AddFlags(rootCmd.PersistentFlags()); err != nil {
		glog.Fatalf("Unable to add environment flags: %s", err.Error())
	}

	rootCmd.AddCommand(
		serve.NewServeCommand(env),
		migrate.NewMigrateCommand(env),
		check.NewCheckCommand(env),
		users.NewUsersCommand(env),
		token.NewTokenCommand(env),
	)
	return rootCmd
}
