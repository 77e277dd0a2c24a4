package db

import (
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/stackrox/newsletter-manager/pkg/shared"
)

// DatabaseConfig ...
type DatabaseConfig struct {
	Dialect            string `json:"dialect"`
	SSLMode            string `json:"sslmode" env:"DATABASE_SSL_MODE"`
	Debug              bool   `json:"debug" env:"DATABASE_DEBUG"`
	MaxOpenConnections int    `json:"max_connections" env:"DATABASE_MAX_CONNECTIONS"`

	Host               string `json:"host" env:"DATABASE_HOST"`
	Port               int    `json:"port" env:"DATABASE_PORT"`
	Name               string `json:"name" env:"DATABASE_NAME"`
	Username           string `json:"username" env:"DATABASE_USER"`
	Password           string `json:"password" env:"DATABASE_PASSWORD"`
	DatabaseCaCertFile string `json:"db_ca_cert_file"`

	HostFile     string `json:"host_file"`
	PortFile     string `json:"port_file"`
	NameFile     string `json:"name_file"`
	UsernameFile string `json:"username_file"`
	PasswordFile string `json:"password_file"`
}

// NewDatabaseConfig ...
func NewDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Dialect:            "postgres",
		SSLMode:            "disable",
		Debug:              false,
		MaxOpenConnections: 50,

		HostFile:     "secrets/db.host",
		PortFile:     "secrets/db.port",
		UsernameFile: "secrets/db.user",
		PasswordFile: "secrets/db.password",
		NameFile:     "secrets/db.name",
	}
}

// AddFlags ...
func (c *DatabaseConfig) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.HostFile, "db-host-file", c.HostFile, "Database host string file")
	fs.StringVar(&c.PortFile, "db-port-file", c.PortFile, "Database port file")
	fs.StringVar(&c.UsernameFile, "db-user-file", c.UsernameFile, "Database username file")
	fs.StringVar(&c.PasswordFile, "db-password-file", c.PasswordFile, "Database password file")
	fs.StringVar(&c.NameFile, "db-name-file", c.NameFile, "Database name file")
	fs.StringVar(&c.DatabaseCaCertFile, "db-ca-cert-file", c.DatabaseCaCertFile, "Database CA certificate file, used when sslmode verifies the server")
	fs.StringVar(&c.SSLMode, "db-sslmode", c.SSLMode, "Database ssl mode (disable | require | verify-ca | verify-full)")
	fs.BoolVar(&c.Debug, "enable-db-debug", c.Debug, "framework's debug mode")
	fs.IntVar(&c.MaxOpenConnections, "db-max-open-connections", c.MaxOpenConnections, "Maximum open DB connections for this instance")
}

// ReadFiles reads the connection secrets and then applies DATABASE_* environment overrides.
func (c *DatabaseConfig) ReadFiles() error {
	var err error

	if c.Host == "" {
		c.Host, err = shared.ReadFile(c.HostFile)
		if err != nil {
			return err
		}
	}

	if c.Port == 0 {
		var portStr string
		portStr, err = shared.ReadFile(c.PortFile)
		if err != nil {
			return err
		}
		if portStr != "" {
			c.Port, err = strconv.Atoi(portStr)
			if err != nil {
				return errors.Wrapf(err, "parsing database port %q", portStr)
			}
		}
	}

	if c.Username == "" {
		c.Username, err = shared.ReadFile(c.UsernameFile)
		if err != nil {
			return err
		}
	}

	if c.Password == "" {
		c.Password, err = shared.ReadFile(c.PasswordFile)
		if err != nil {
			return err
		}
	}

	if c.Name == "" {
		c.Name, err = shared.ReadFile(c.NameFile)
		if err != nil {
			return err
		}
	}

	if err := env.Parse(c); err != nil {
		return errors.Wrap(err, "parsing database configuration from environment")
	}

	return nil
}

// ConnectionString returns the libpq connection string.
func (c *DatabaseConfig) ConnectionString(withSSL bool) string {
	return c.ConnectionStringWithName(c.Name, withSSL)
}

// ConnectionStringWithName ...
func (c *DatabaseConfig) ConnectionStringWithName(name string, withSSL bool) string {
	var cmd string
	if withSSL {
		cmd = fmt.Sprintf(
			"host=%s port=%d user=%s password='%s' dbname=%s sslmode=%s",
			c.Host, c.Port, c.Username, c.Password, name, c.SSLMode,
		)
		if c.DatabaseCaCertFile != "" {
			cmd += fmt.Sprintf(" sslrootcert=%s", c.DatabaseCaCertFile)
		}
	} else {
		cmd = fmt.Sprintf(
			"host=%s port=%d user=%s password='%s' dbname=%s sslmode=disable",
			c.Host, c.Port, c.Username, c.Password, name,
		)
	}

	return cmd
}

// LogSafeConnectionString returns the connection string with the password redacted.
func (c *DatabaseConfig) LogSafeConnectionString(withSSL bool) string {
	return c.LogSafeConnectionStringWithName(c.Name, withSSL)
}

// LogSafeConnectionStringWithName ...
func (c *DatabaseConfig) LogSafeConnectionStringWithName(name string, withSSL bool) string {
	if withSSL {
		return fmt.Sprintf(
			"host=%s port=%d user=%s password='<REDACTED>' dbname=%s sslmode=%s",
			c.Host, c.Port, c.Username, name, c.SSLMode,
		)
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password='<REDACTED>' dbname=%s",
		c.Host, c.Port, c.Username, name,
	)
}
