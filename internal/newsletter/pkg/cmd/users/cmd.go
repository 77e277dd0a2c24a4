// Package users manages the accounts allowed to use the newsletter API.
package users

import (
	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/services"
	"github.com/stackrox/newsletter-manager/pkg/environments"
)

// Flag names shared by the user sub-commands.
const (
	FlagUsername     = "username"
	FlagEmail        = "email"
	FlagPasswordFile = "password-file"
	FlagStaff        = "staff"
	FlagSuperuser    = "superuser"
	FlagInactive     = "inactive"
	FlagPermission   = "permission"
	FlagGroup        = "group"
)

// NewUsersCommand ...
func NewUsersCommand(env *environments.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage newsletter-manager accounts",
		Long:  "Create accounts and grant or revoke their permissions directly in the database.",
	}

	cmd.AddCommand(
		NewCreateCommand(env),
		NewGrantCommand(env),
		NewRevokeCommand(env),
		NewAddGroupCommand(env),
	)
	return cmd
}

func userService(env *environments.Env) services.UserService {
	if err := env.CreateServices(); err != nil {
		glog.Fatalf("Unable to initialize environment: %s", err.Error())
	}
	var service services.UserService
	env.MustResolve(&service)
	return service
}
