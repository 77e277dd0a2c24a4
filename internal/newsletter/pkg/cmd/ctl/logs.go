package ctl

import (
	"context"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/stackrox/newsletter-manager/pkg/client/newslettermgr"
)

// NewLogsCommand ...
func NewLogsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Inspect newsletter log entries",
	}
	list := &cobra.Command{
		Use:   "list",
		Short: "List log entries, newest first",
		Run: func(cmd *cobra.Command, _ []string) {
			page, size := pagingFromFlags(cmd)
			if err := RunListLogs(cmd.Context(), authenticatedClient(), page, size, jsonFromFlags(cmd), os.Stdout); err != nil {
				glog.Fatalf(apiErrorMsg, "list logs", err)
			}
		},
	}
	addPagingFlags(list)
	cmd.PersistentFlags().Bool(FlagJSON, false, "Print JSON instead of a table")
	cmd.AddCommand(list)
	return cmd
}

// RunListLogs ...
func RunListLogs(ctx context.Context, client *newslettermgr.Client, page, size int, asJSON bool, out io.Writer) error {
	list, err := client.ListNewsletterLogs(ctx, page, size)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(out, list)
	}
	return printTable(out, logHeader, logRows(list.Items))
}
