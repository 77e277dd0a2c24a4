package ctl

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/api/public"
)

const (
	// FlagJSON switches output from tables to JSON.
	FlagJSON = "json"
	// FlagPage ...
	FlagPage = "page"
	// FlagSize ...
	FlagSize = "size"
	// FlagID ...
	FlagID = "id"
)

func printJSON(out io.Writer, v interface{}) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshalling output")
	}
	_, err = fmt.Fprintln(out, string(encoded))
	return err
}

func printTable(out io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(out)
	columns := make([]any, 0, len(header))
	for _, h := range header {
		columns = append(columns, h)
	}
	table.Header(columns...)
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return errors.Wrap(err, "appending table row")
		}
	}
	return errors.Wrap(table.Render(), "rendering table")
}

func newsletterRows(items ...public.Newsletter) [][]string {
	rows := make([][]string, 0, len(items))
	for _, n := range items {
		rows = append(rows, []string{
			n.ID,
			n.Subject,
			n.Periodicity,
			n.SendTime,
			n.Status,
			strconv.FormatBool(n.IsActive),
			n.OwnerID,
		})
	}
	return rows
}

var newsletterHeader = []string{"ID", "Subject", "Periodicity", "Send time", "Status", "Active", "Owner"}

func logRows(items []public.NewsletterLog) [][]string {
	rows := make([][]string, 0, len(items))
	for _, l := range items {
		rows = append(rows, []string{l.ID, strconv.FormatBool(l.Status), l.CreatedAt.Format(time.RFC3339)})
	}
	return rows
}

var logHeader = []string{"ID", "Status", "Created"}
