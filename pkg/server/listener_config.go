package server

import (
	"github.com/spf13/pflag"
)

// ListenerConfig is the bind address and TLS switch of an auxiliary server.
// The TLS key pair is shared with the API server.
type ListenerConfig struct {
	BindAddress string `json:"bind_address"`
	EnableHTTPS bool   `json:"enable_https"`

	flagPrefix string
}

// AddFlags registers --<prefix>-server-bindaddress and --enable-<prefix>-https.
func (c *ListenerConfig) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.BindAddress, c.flagPrefix+"-server-bindaddress", c.BindAddress, c.flagPrefix+" server bind address")
	fs.BoolVar(&c.EnableHTTPS, "enable-"+c.flagPrefix+"-https", c.EnableHTTPS, "Enable HTTPS for the "+c.flagPrefix+" server")
}

// ReadFiles ...
func (c *ListenerConfig) ReadFiles() error {
	return nil
}

// MetricsConfig ...
type MetricsConfig struct {
	ListenerConfig
}

// NewMetricsConfig ...
func NewMetricsConfig() *MetricsConfig {
	return &MetricsConfig{ListenerConfig{BindAddress: "localhost:8080", flagPrefix: "metrics"}}
}

// HealthCheckConfig ...
type HealthCheckConfig struct {
	ListenerConfig
}

// NewHealthCheckConfig ...
func NewHealthCheckConfig() *HealthCheckConfig {
	return &HealthCheckConfig{ListenerConfig{BindAddress: "localhost:8083", flagPrefix: "health-check"}}
}
