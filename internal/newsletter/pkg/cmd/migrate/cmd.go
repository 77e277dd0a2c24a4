// Package migrate applies or rolls back the database schema.
package migrate

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/stackrox/newsletter-manager/pkg/db"
	"github.com/stackrox/newsletter-manager/pkg/environments"
	"github.com/stackrox/newsletter-manager/pkg/flags"
)

const (
	flagMigrateTo    = "migrate-to"
	flagRollbackTo   = "rollback-to"
	flagRollbackLast = "rollback-last"
	flagRollbackAll  = "rollback-all"
)

// Migrator is the part of db.Migration used by the command.
type Migrator interface {
	Migrate() error
	MigrateTo(migrationID string) error
	RollbackLast() error
	RollbackTo(migrationID string) error
	RollbackAll() error
	CountMigrationsApplied() (int, error)
}

var _ Migrator = &db.Migration{}

// Options selects what the command does. The zero value applies every pending migration.
type Options struct {
	MigrateTo    string
	RollbackTo   string
	RollbackLast bool
	RollbackAll  bool
}

func (o Options) validate() error {
	selected := 0
	for _, set := range []bool{o.MigrateTo != "", o.RollbackTo != "", o.RollbackLast, o.RollbackAll} {
		if set {
			selected++
		}
	}
	if selected > 1 {
		return errors.Errorf("--%s, --%s, --%s and --%s are mutually exclusive", flagMigrateTo, flagRollbackTo, flagRollbackLast, flagRollbackAll)
	}
	return nil
}

// NewMigrateCommand ...
func NewMigrateCommand(env *environments.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run newsletter-manager database migrations",
		Long:  "Apply pending database migrations, or roll some or all of them back.",
		Run: func(cmd *cobra.Command, args []string) {
			fs := cmd.Flags()
			opts := Options{
				MigrateTo:    flags.MustGetString(flagMigrateTo, fs),
				RollbackTo:   flags.MustGetString(flagRollbackTo, fs),
				RollbackLast: flags.MustGetBool(flagRollbackLast, fs),
				RollbackAll:  flags.MustGetBool(flagRollbackAll, fs),
			}
			if err := env.CreateServices(); err != nil {
				glog.Fatalf("Unable to initialize environment: %s", err.Error())
			}

			var migration *db.Migration
			env.MustResolve(&migration)

			applied, err := Run(migration, opts)
			if err != nil {
				glog.Fatal(err)
			}
			glog.Infof("Database has %d migrations applied", applied)
		},
	}
	cmd.Flags().String(flagMigrateTo, "", "Apply migrations up to and including this ID")
	cmd.Flags().String(flagRollbackTo, "", "Roll back every migration applied after this ID")
	cmd.Flags().Bool(flagRollbackLast, false, "Roll back the most recent migration")
	cmd.Flags().Bool(flagRollbackAll, false, "Roll back every applied migration")
	return cmd
}

// Run performs the selected action and returns the number of migrations applied afterwards.
func Run(m Migrator, opts Options) (int, error) {
	if err := opts.validate(); err != nil {
		return 0, err
	}
	var err error
	switch {
	case opts.RollbackAll:
		err = m.RollbackAll()
	case opts.RollbackLast:
		err = m.RollbackLast()
	case opts.RollbackTo != "":
		err = m.RollbackTo(opts.RollbackTo)
	case opts.MigrateTo != "":
		err = m.MigrateTo(opts.MigrateTo)
	default:
		err = m.Migrate()
	}
	if err != nil {
		return 0, err
	}
	return m.CountMigrationsApplied()
}
