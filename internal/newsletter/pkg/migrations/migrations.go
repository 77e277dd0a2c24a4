// Package migrations contains the schema migrations of the newsletter database.
//
// Migrations declare their own copies of the models so that later changes to the dbapi types never alter
// what an already released migration does.
package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"

	"github.com/stackrox/newsletter-manager/pkg/db"
)

// gormigrate is used to handle migrations and rollbacks.
// Migration IDs are timestamps, YYYYMMDDHHMM, ordered as listed here.
func getMigrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		addUsers(),
		addNewsletters(),
		addNewsletterLogs(),
		addClients(),
		addClientOwner(),
	}
}

var migrateOptions = &gormigrate.Options{
	TableName:                 "migrations",
	IDColumnName:              "id",
	IDColumnSize:              255,
	UseTransaction:            false,
	ValidateUnknownMigrations: true,
}

// New opens a connection with dbConfig and prepares every migration.
func New(dbConfig *db.DatabaseConfig) (*db.Migration, func(), error) {
	return db.NewMigration(dbConfig, migrateOptions, getMigrations())
}

// NewWithFactory prepares every migration on an open connection.
func NewWithFactory(dbFactory *db.ConnectionFactory) *db.Migration {
	return db.NewMigrationWithFactory(dbFactory, migrateOptions, getMigrations())
}
