package ctl

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/stackrox/newsletter-manager/pkg/client/newslettermgr"
	"github.com/stackrox/newsletter-manager/pkg/flags"
	"github.com/stackrox/newsletter-manager/pkg/shared"
)

const (
	// FlagUsername ...
	FlagUsername = "username"
	// FlagPasswordFile ...
	FlagPasswordFile = "password-file"

	passwordEnvVar = "NEWSLETTERCTL_PASSWORD"
)

// NewLoginCommand exchanges credentials for an access token and prints an export line for it.
func NewLoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Obtain an access token",
		Long:  fmt.Sprintf("Obtain an access token. The password is read from --%s or %s.", FlagPasswordFile, passwordEnvVar),
		Run: func(cmd *cobra.Command, _ []string) {
			username := flags.MustGetDefinedString(FlagUsername, cmd.Flags())
			password, err := readPassword(flags.MustGetString(FlagPasswordFile, cmd.Flags()))
			if err != nil {
				glog.Fatal(err)
			}
			client := mustClient(configFromEnv())
			if err := RunLogin(cmd.Context(), client, username, password, os.Stdout); err != nil {
				glog.Fatalf(apiErrorMsg, "log in", err)
			}
		},
	}
	cmd.Flags().String(FlagUsername, "", "User name (required)")
	cmd.Flags().String(FlagPasswordFile, "", "File containing the password")
	flags.MarkFlagRequired(FlagUsername, cmd)
	return cmd
}

func readPassword(file string) (string, error) {
	if file != "" {
		content, err := shared.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading password file: %w", err)
		}
		return strings.TrimSpace(content), nil
	}
	if password := os.Getenv(passwordEnvVar); password != "" {
		return password, nil
	}
	return "", fmt.Errorf("no password given, use --%s or %s", FlagPasswordFile, passwordEnvVar)
}

// RunLogin writes a shell export of the issued token to out.
func RunLogin(ctx context.Context, client *newslettermgr.Client, username, password string, out io.Writer) error {
	token, err := client.Login(ctx, username, password)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "export %s=%s\n", tokenEnvVar, token.AccessToken)
	return err
}
