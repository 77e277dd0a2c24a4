package ctl

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/stackrox/newsletter-manager/pkg/client/newslettermgr"
	"github.com/stackrox/newsletter-manager/pkg/flags"
)

// NewNewslettersCommand ...
func NewNewslettersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "newsletters",
		Short: "Manage newsletters",
	}
	cmd.PersistentFlags().Bool(FlagJSON, false, "Print JSON instead of a table")
	cmd.AddCommand(newNewslettersListCommand(), newNewslettersGetCommand(), newNewslettersDeleteCommand(), newStatsCommand())
	return cmd
}

func addPagingFlags(cmd *cobra.Command) {
	cmd.Flags().Int(FlagPage, 1, "Page number")
	cmd.Flags().Int(FlagSize, 100, "Page size")
}

func pagingFromFlags(cmd *cobra.Command) (int, int) {
	return flags.MustGetInt(FlagPage, cmd.Flags()), flags.MustGetInt(FlagSize, cmd.Flags())
}

func jsonFromFlags(cmd *cobra.Command) bool {
	return flags.MustGetBool(FlagJSON, cmd.Flags())
}

func newNewslettersListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List newsletters visible to the logged in user",
		Run: func(cmd *cobra.Command, _ []string) {
			page, size := pagingFromFlags(cmd)
			if err := RunListNewsletters(cmd.Context(), authenticatedClient(), page, size, jsonFromFlags(cmd), os.Stdout); err != nil {
				glog.Fatalf(apiErrorMsg, "list newsletters", err)
			}
		},
	}
	addPagingFlags(cmd)
	return cmd
}

// RunListNewsletters ...
func RunListNewsletters(ctx context.Context, client *newslettermgr.Client, page, size int, asJSON bool, out io.Writer) error {
	list, err := client.ListNewsletters(ctx, page, size)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(out, list)
	}
	return printTable(out, newsletterHeader, newsletterRows(list.Items...))
}

func newNewslettersGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show one newsletter",
		Run: func(cmd *cobra.Command, _ []string) {
			id := flags.MustGetDefinedString(FlagID, cmd.Flags())
			newsletter, err := authenticatedClient().GetNewsletter(cmd.Context(), id)
			if err != nil {
				glog.Fatalf(apiErrorMsg, "get newsletter", err)
			}
			if jsonFromFlags(cmd) {
				err = printJSON(os.Stdout, newsletter)
			} else {
				err = printTable(os.Stdout, newsletterHeader, newsletterRows(*newsletter))
			}
			if err != nil {
				glog.Fatal(err)
			}
		},
	}
	cmd.Flags().String(FlagID, "", "Newsletter ID (required)")
	flags.MarkFlagRequired(FlagID, cmd)
	return cmd
}

func newNewslettersDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a newsletter",
		Run: func(cmd *cobra.Command, _ []string) {
			id := flags.MustGetDefinedString(FlagID, cmd.Flags())
			if err := authenticatedClient().DeleteNewsletter(cmd.Context(), id); err != nil {
				glog.Fatalf(apiErrorMsg, "delete newsletter", err)
			}
			glog.Infof("Deleted newsletter %s", id)
		},
	}
	cmd.Flags().String(FlagID, "", "Newsletter ID (required)")
	flags.MarkFlagRequired(FlagID, cmd)
	return cmd
}

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show mailing counters",
		Run: func(cmd *cobra.Command, _ []string) {
			if err := RunStats(cmd.Context(), authenticatedClient(), jsonFromFlags(cmd), os.Stdout); err != nil {
				glog.Fatalf(apiErrorMsg, "get stats", err)
			}
		},
	}
}

// Stats ...
type Stats struct {
	MailingCount   int64 `json:"mailing_count"`
	EnabledMailing int64 `json:"enabled_mailing"`
	UniqueUsers    int64 `json:"unique_users"`
}

// RunStats prints the counters attached to the newsletter list.
func RunStats(ctx context.Context, client *newslettermgr.Client, asJSON bool, out io.Writer) error {
	list, err := client.ListNewsletters(ctx, 1, 1)
	if err != nil {
		return err
	}
	stats := Stats{
		MailingCount:   list.MailingCount,
		EnabledMailing: list.EnabledMailing,
		UniqueUsers:    list.UniqueUsers,
	}
	if asJSON {
		return printJSON(out, stats)
	}
	return printTable(out, []string{"Mailings", "Enabled", "Unique users"}, [][]string{{
		fmt.Sprint(stats.MailingCount),
		fmt.Sprint(stats.EnabledMailing),
		fmt.Sprint(stats.UniqueUsers),
	}})
}
