package users

import (
	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/stackrox/newsletter-manager/pkg/environments"
	"github.com/stackrox/newsletter-manager/pkg/flags"
)

// NewGrantCommand ...
func NewGrantCommand(env *environments.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grant",
		Short: "Grant a permission to an account",
		Long:  "Grant a permission such as newsletters.set_subject to an account. Granting twice is a no-op.",
		Run: func(cmd *cobra.Command, args []string) {
			fs := cmd.Flags()
			username := flags.MustGetDefinedString(FlagUsername, fs)
			permission := flags.MustGetDefinedString(FlagPermission, fs)
			if err := userService(env).GrantPermission(cmd.Context(), username, permission); err != nil {
				glog.Fatal(err)
			}
			glog.Infof("Granted %q to %q", permission, username)
		},
	}
	cmd.Flags().String(FlagUsername, "", "Username of the account")
	cmd.Flags().String(FlagPermission, "", "Permission to grant, e.g. newsletters.set_subject")
	flags.MarkFlagRequired(FlagUsername, cmd)
	flags.MarkFlagRequired(FlagPermission, cmd)
	return cmd
}

// NewRevokeCommand ...
func NewRevokeCommand(env *environments.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revoke",
		Short: "Revoke a permission granted directly to an account",
		Long:  "Revoke a permission granted directly to an account. Permissions granted through groups are kept.",
		Run: func(cmd *cobra.Command, args []string) {
			fs := cmd.Flags()
			username := flags.MustGetDefinedString(FlagUsername, fs)
			permission := flags.MustGetDefinedString(FlagPermission, fs)
			if err := userService(env).RevokePermission(cmd.Context(), username, permission); err != nil {
				glog.Fatal(err)
			}
			glog.Infof("Revoked %q from %q", permission, username)
		},
	}
	cmd.Flags().String(FlagUsername, "", "Username of the account")
	cmd.Flags().String(FlagPermission, "", "Permission to revoke")
	flags.MarkFlagRequired(FlagUsername, cmd)
	flags.MarkFlagRequired(FlagPermission, cmd)
	return cmd
}

// NewAddGroupCommand ...
func NewAddGroupCommand(env *environments.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-group",
		Short: "Add an account to a permission group",
		Long:  "Add an account to one of the permission groups of the permission groups configuration file.",
		Run: func(cmd *cobra.Command, args []string) {
			fs := cmd.Flags()
			username := flags.MustGetDefinedString(FlagUsername, fs)
			group := flags.MustGetDefinedString(FlagGroup, fs)
			if err := userService(env).AddToGroup(cmd.Context(), username, group); err != nil {
				glog.Fatal(err)
			}
			glog.Infof("Added %q to group %q", username, group)
		},
	}
	cmd.Flags().String(FlagUsername, "", "Username of the account")
	cmd.Flags().String(FlagGroup, "", "Name of the permission group")
	flags.MarkFlagRequired(FlagUsername, cmd)
	flags.MarkFlagRequired(FlagGroup, cmd)
	return cmd
}
