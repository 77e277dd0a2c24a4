//go:build integration

// Package test starts a throwaway postgres for the integration suite.
package test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/config"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/migrations"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/services"
	"github.com/stackrox/newsletter-manager/pkg/db"
)

const (
	postgresImage    = "postgres:16-alpine"
	postgresDB       = "newsletters"
	postgresUser     = "newsletters"
	postgresPassword = "newsletters"
)

// Helper holds a migrated database and services bound to it.
type Helper struct {
	DBFactory  *db.ConnectionFactory
	Migration  *db.Migration
	Users      services.UserService
	Logs       services.NewsletterLogService
	Clients    services.ClientService
	Newsletter services.NewsletterService
}

// StartPostgres runs a postgres container and returns a config pointing at it.
// terminate must be called once the database is no longer needed.
func StartPostgres(ctx context.Context) (dbConfig *db.DatabaseConfig, terminate func() error, err error) {
	container, err := postgres.Run(ctx,
		postgresImage,
		postgres.WithDatabase(postgresDB),
		postgres.WithUsername(postgresUser),
		postgres.WithPassword(postgresPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, nil, errors.Wrap(err, "starting postgres container")
	}
	terminate = func() error { return testcontainers.TerminateContainer(container) }

	host, err := container.Host(ctx)
	if err != nil {
		return nil, terminate, errors.Wrap(err, "resolving container host")
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return nil, terminate, errors.Wrap(err, "resolving postgres port")
	}

	dbConfig = db.NewDatabaseConfig()
	dbConfig.Host = host
	dbConfig.Port = port.Int()
	dbConfig.Name = postgresDB
	dbConfig.Username = postgresUser
	dbConfig.Password = postgresPassword
	dbConfig.MaxOpenConnections = 5
	return dbConfig, terminate, nil
}

// NewHelper starts postgres, applies all migrations and registers cleanup on t.
func NewHelper(t *testing.T) *Helper {
	t.Helper()
	dbConfig, terminate, err := StartPostgres(context.Background())
	if terminate != nil {
		t.Cleanup(func() { require.NoError(t, terminate()) })
	}
	require.NoError(t, err)

	factory, cleanup := db.NewConnectionFactory(dbConfig)
	t.Cleanup(cleanup)

	migration := migrations.NewWithFactory(factory)
	require.NoError(t, migration.Migrate())

	users := services.NewUserService(factory, config.NewPermissionGroupsConfig())
	logs := services.NewNewsletterLogService(factory)
	return &Helper{
		DBFactory:  factory,
		Migration:  migration,
		Users:      users,
		Logs:       logs,
		Clients:    services.NewClientService(factory),
		Newsletter: services.NewNewsletterService(factory, logs, users),
	}
}

// CountRows ...
func (h *Helper) CountRows(t *testing.T, table string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, h.DBFactory.New().Table(table).Count(&count).Error)
	return count
}
