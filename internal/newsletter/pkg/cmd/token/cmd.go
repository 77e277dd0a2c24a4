// Package token prints access tokens for existing accounts.
package token

import (
	"context"
	"fmt"
	"io"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/services"
	"github.com/stackrox/newsletter-manager/pkg/auth"
	"github.com/stackrox/newsletter-manager/pkg/environments"
	"github.com/stackrox/newsletter-manager/pkg/flags"
)

const flagUsername = "username"

// NewTokenCommand ...
func NewTokenCommand(env *environments.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print an access token for an account",
		Long:  "Print a signed access token for an active account without checking its password.",
		Run: func(cmd *cobra.Command, args []string) {
			if err := env.CreateServices(); err != nil {
				glog.Fatalf("Unable to initialize environment: %s", err.Error())
			}
			var userService services.UserService
			var issuer *auth.TokenIssuer
			env.MustResolve(&userService)
			env.MustResolve(&issuer)

			username := flags.MustGetDefinedString(flagUsername, cmd.Flags())
			if err := RunToken(cmd.Context(), userService, issuer, username, cmd.OutOrStdout()); err != nil {
				glog.Fatal(err)
			}
		},
	}
	cmd.Flags().String(flagUsername, "", "Username of the account")
	flags.MarkFlagRequired(flagUsername, cmd)
	return cmd
}

// RunToken issues a token for username and prints it.
func RunToken(ctx context.Context, userService services.UserService, issuer *auth.TokenIssuer, username string, out io.Writer) error {
	user, svcErr := userService.GetByUsername(ctx, username)
	if svcErr != nil {
		return svcErr
	}
	if !user.IsActive {
		return errors.Errorf("account %q is inactive", username)
	}
	token, _, err := issuer.Issue(user.ID, user.Username)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, token)
	return err
}
