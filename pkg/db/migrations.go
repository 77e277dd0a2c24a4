package db

import (
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Migration ...
type Migration struct {
	DbFactory   *ConnectionFactory
	Gormigrate  *gormigrate.Gormigrate
	GormOptions *gormigrate.Options
}

// NewMigration ...
func NewMigration(dbConfig *DatabaseConfig, gormOptions *gormigrate.Options, migrations []*gormigrate.Migration) (*Migration, func(), error) {
	err := dbConfig.ReadFiles()
	if err != nil {
		return nil, nil, err
	}
	dbFactory, cleanup := NewConnectionFactory(dbConfig)

	return NewMigrationWithFactory(dbFactory, gormOptions, migrations), cleanup, nil
}

// NewMigrationWithFactory builds a Migration on an already open connection.
func NewMigrationWithFactory(dbFactory *ConnectionFactory, gormOptions *gormigrate.Options, migrations []*gormigrate.Migration) *Migration {
	return &Migration{
		DbFactory:   dbFactory,
		GormOptions: gormOptions,
		Gormigrate:  gormigrate.New(dbFactory.New(), gormOptions, migrations),
	}
}

// Migrate ...
func (m *Migration) Migrate() error {
	if err := m.Gormigrate.Migrate(); err != nil {
		return errors.Wrap(err, "could not migrate")
	}
	return nil
}

// MigrateTo applies pending migrations up to and including migrationID.
func (m *Migration) MigrateTo(migrationID string) error {
	if err := m.Gormigrate.MigrateTo(migrationID); err != nil {
		return errors.Wrapf(err, "could not migrate to %s", migrationID)
	}
	return nil
}

// RollbackLast undoes the most recent migration.
func (m *Migration) RollbackLast() error {
	if err := m.Gormigrate.RollbackLast(); err != nil {
		return errors.Wrap(err, "could not rollback last migration")
	}
	return m.dropEmptyMigrationTable()
}

// RollbackTo undoes every migration applied after migrationID.
func (m *Migration) RollbackTo(migrationID string) error {
	if err := m.Gormigrate.RollbackTo(migrationID); err != nil {
		return errors.Wrapf(err, "could not rollback to %s", migrationID)
	}
	return nil
}

// RollbackAll undoes migrations one by one, newest first, and drops the then empty migration table.
func (m *Migration) RollbackAll() error {
	for {
		applied, err := m.CountMigrationsApplied()
		if err != nil {
			return err
		}
		if applied == 0 {
			break
		}
		if err := m.Gormigrate.RollbackLast(); err != nil {
			return errors.Wrap(err, "could not rollback last migration")
		}
	}
	return m.dropEmptyMigrationTable()
}

func (m *Migration) dropEmptyMigrationTable() error {
	applied, err := m.CountMigrationsApplied()
	if err != nil || applied > 0 {
		return err
	}
	migrator := m.DbFactory.New().Migrator()
	if !migrator.HasTable(m.GormOptions.TableName) {
		return nil
	}
	glog.V(5).Infof("Dropping empty migration table %s", m.GormOptions.TableName)
	return errors.Wrap(migrator.DropTable(m.GormOptions.TableName), "could not drop migration table")
}

// CountMigrationsApplied returns 0 when the migration table does not exist yet.
func (m *Migration) CountMigrationsApplied() (int, error) {
	conn := m.DbFactory.New()
	if !conn.Migrator().HasTable(m.GormOptions.TableName) {
		return 0, nil
	}
	var count int64
	if err := conn.Table(m.GormOptions.TableName).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "could not get migration count")
	}
	return int(count), nil
}

// Model is the base model embedded by the tables created in migrations.
type Model struct {
	ID        string `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
