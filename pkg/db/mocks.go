package db

import (
	"fmt"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	mocket "github.com/selvatico/go-mocket"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewMockConnectionFactory returns a ConnectionFactory backed by go-mocket. Tests program replies through mocket.Catcher.
func NewMockConnectionFactory(dbConfig *DatabaseConfig) *ConnectionFactory {
	if dbConfig == nil {
		dbConfig = &DatabaseConfig{}
	}
	mocket.Catcher.Register()
	mocket.Catcher.Logging = false

	conn, err := gorm.Open(postgres.New(postgres.Config{
		DriverName: mocket.DriverName,
		DSN:        "mock_db",
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		panic(fmt.Sprintf("opening mock database: %v", err))
	}

	return &ConnectionFactory{
		Config: dbConfig,
		DB:     conn,
	}
}

// NewSQLMockConnectionFactory returns a ConnectionFactory backed by go-sqlmock, for tests asserting the exact
// statements and transaction boundaries. Callers close the factory when done.
func NewSQLMockConnectionFactory() (*ConnectionFactory, sqlmock.Sqlmock, error) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		return nil, nil, errors.Wrap(err, "creating sqlmock")
	}
	conn, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, nil, errors.Wrap(err, "opening sqlmock database")
	}
	return &ConnectionFactory{Config: NewDatabaseConfig(), DB: conn}, mock, nil
}
