package db

import (
	"database/sql"
	"fmt"

	"github.com/golang/glog"
	_ "github.com/lib/pq" // postgres driver
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ConnectionFactory hands out gorm sessions bound to a single connection pool.
type ConnectionFactory struct {
	Config *DatabaseConfig
	DB     *gorm.DB
}

// NewConnectionFactory will initialize a singleton ConnectionFactory as needed and return the same instance.
// Go includes database connection pooling in the platform. Gorm uses the same and provides a method to
// clone a connection via New(), which is safe for use by concurrent Goroutines.
func NewConnectionFactory(config *DatabaseConfig) (*ConnectionFactory, func()) {
	var db *sql.DB
	var err error
	// refer to https://gorm.io/docs/gorm_config.html
	gormConfig := &gorm.Config{
		PrepareStmt:            false,
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	}
	if config.Debug {
		gormConfig.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	}

	db, err = sql.Open(config.Dialect, config.ConnectionString(config.SSLMode != "disable"))
	if err != nil {
		db, err = sql.Open(config.Dialect, config.ConnectionString(false))
		if err != nil {
			panic(fmt.Sprintf(
				"SQL failed to connect to %s database %s with connection string: %s\nError: %s",
				config.Dialect,
				config.Name,
				config.LogSafeConnectionString(config.SSLMode != "disable"),
				err.Error(),
			))
		}
	}
	db.SetMaxOpenConns(config.MaxOpenConnections)

	conn, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), gormConfig)
	if err != nil {
		panic(fmt.Sprintf(
			"GORM failed to connect to %s database %s with connection string: %s\nError: %s",
			config.Dialect,
			config.Name,
			config.LogSafeConnectionString(config.SSLMode != "disable"),
			err.Error(),
		))
	}

	factory := &ConnectionFactory{Config: config, DB: conn}
	return factory, func() {
		if err := factory.Close(); err != nil {
			glog.Errorf("Error closing database connection: %v", err)
		}
	}
}

// New returns a new database connection
func (f *ConnectionFactory) New() *gorm.DB {
	if f.Config.Debug {
		return f.DB.Debug()
	}
	return f.DB
}

// CheckConnection checks to ensure a connection is present
func (f *ConnectionFactory) CheckConnection() error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return errors.Wrap(err, "getting database handle")
	}
	if err := sqlDB.Ping(); err != nil {
		return errors.Wrap(err, "pinging database")
	}
	return nil
}

// Close will close the connection to the database.
// THIS MUST **NOT** BE CALLED UNTIL THE SERVER/PROCESS IS EXITING!!
// This should only ever be called once for the entire duration of the application and only at the end.
func (f *ConnectionFactory) Close() error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return errors.Wrap(err, "getting database handle")
	}
	return sqlDB.Close()
}
