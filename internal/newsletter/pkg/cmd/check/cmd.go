// Package check writes the newsletter log entry of one mailing run. It is meant to be invoked by cron.
package check

import (
	"context"
	"fmt"
	"io"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/services"
	"github.com/stackrox/newsletter-manager/pkg/environments"
)

// NewCheckCommand ...
func NewCheckCommand(env *environments.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Write a successful newsletter log",
		Long:  "Write one newsletter log with a successful status. Every invocation adds a new row.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := env.CreateServices(); err != nil {
				glog.Fatalf("Unable to initialize environment: %s", err.Error())
			}

			var logService services.NewsletterLogService
			env.MustResolve(&logService)
			if err := RunCheck(cmd.Context(), logService, cmd.OutOrStdout()); err != nil {
				glog.Fatal(err)
			}
		},
	}
	return cmd
}

// RunCheck records one successful newsletter log and prints its ID.
func RunCheck(ctx context.Context, logService services.NewsletterLogService, out io.Writer) error {
	entry, svcErr := logService.Record(ctx, true)
	if svcErr != nil {
		return svcErr
	}
	_, err := fmt.Fprintln(out, entry.ID)
	return err
}
