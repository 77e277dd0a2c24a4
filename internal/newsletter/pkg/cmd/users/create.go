package users

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/api/dbapi"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/services"
	"github.com/stackrox/newsletter-manager/pkg/environments"
	"github.com/stackrox/newsletter-manager/pkg/flags"
	"github.com/stackrox/newsletter-manager/pkg/shared"
)

// passwordEnvVar is read when no password file is given.
const passwordEnvVar = "NEWSLETTER_USER_PASSWORD" // pragma: allowlist secret

// NewCreateCommand ...
func NewCreateCommand(env *environments.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		Long:  "Create an account. The password is read from --password-file or from " + passwordEnvVar + ".",
		Run: func(cmd *cobra.Command, args []string) {
			request, err := createRequestFromFlags(cmd)
			if err != nil {
				glog.Fatal(err)
			}
			if err := RunCreate(cmd.Context(), userService(env), request, cmd.OutOrStdout()); err != nil {
				glog.Fatal(err)
			}
		},
	}
	cmd.Flags().String(FlagUsername, "", "Username of the account")
	cmd.Flags().String(FlagEmail, "", "Email address of the account")
	cmd.Flags().String(FlagPasswordFile, "", "File containing the password of the account")
	cmd.Flags().Bool(FlagStaff, false, "Grant access to every newsletter")
	cmd.Flags().Bool(FlagSuperuser, false, "Grant every permission")
	cmd.Flags().Bool(FlagInactive, false, "Create the account disabled")
	flags.MarkFlagRequired(FlagUsername, cmd)

	return cmd
}

// CreateRequest ...
type CreateRequest struct {
	User     *dbapi.User
	Password string
}

func createRequestFromFlags(cmd *cobra.Command) (CreateRequest, error) {
	fs := cmd.Flags()
	password, err := shared.ReadFile(flags.MustGetString(FlagPasswordFile, fs))
	if err != nil {
		return CreateRequest{}, err
	}
	if password == "" {
		password = os.Getenv(passwordEnvVar)
	}
	if password == "" {
		return CreateRequest{}, errors.Errorf("no password given, use --%s or %s", FlagPasswordFile, passwordEnvVar)
	}

	staff := flags.MustGetBool(FlagStaff, fs)
	superuser := flags.MustGetBool(FlagSuperuser, fs)
	inactive := flags.MustGetBool(FlagInactive, fs)
	return CreateRequest{
		User: &dbapi.User{
			Username:    flags.MustGetDefinedString(FlagUsername, fs),
			Email:       flags.MustGetString(FlagEmail, fs),
			IsActive:    !inactive,
			IsStaff:     staff,
			IsSuperuser: superuser,
		},
		Password: password,
	}, nil
}

// RunCreate creates the account and prints its ID.
func RunCreate(ctx context.Context, service services.UserService, request CreateRequest, out io.Writer) error {
	if svcErr := service.Create(ctx, request.User, request.Password); svcErr != nil {
		return svcErr
	}
	_, err := fmt.Fprintln(out, request.User.ID)
	return err
}
