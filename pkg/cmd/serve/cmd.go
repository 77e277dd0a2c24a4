// Package serve ...
package serve

import (
	"context"
	"os"
	"os/signal"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/stackrox/newsletter-manager/pkg/environments"
)

// NewServeCommand ...
func NewServeCommand(env *environments.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the newsletter-manager",
		Long:  "Serve the newsletter management REST API, its metrics and health check endpoints and the background workers.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := env.CreateServices(); err != nil {
				glog.Fatalf("Unable to initialize environment: %s", err.Error())
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, unix.SIGTERM)
			defer cancel()

			env.Run(ctx)
		},
	}
	return cmd
}
