// Package config ...
package config

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/stackrox/newsletter-manager/pkg/features"
)

// NewsletterConfig ...
type NewsletterConfig struct {
	// EnforceListPermission requires newsletters.list_newsletter to list newsletters.
	EnforceListPermission bool `json:"enforce_list_permission"`
	// EnableLogWorker writes a newsletter log every LogInterval from the serve command.
	EnableLogWorker bool          `json:"enable_log_worker"`
	LogInterval     time.Duration `json:"log_interval"`
}

// NewNewsletterConfig ...
func NewNewsletterConfig() *NewsletterConfig {
	return &NewsletterConfig{
		EnforceListPermission: features.EnforceListPermission.Enabled(),
		EnableLogWorker:       features.NewsletterLogWorker.Enabled(),
		LogInterval:           time.Hour,
	}
}

// AddFlags ...
func (c *NewsletterConfig) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&c.EnforceListPermission, "enforce-list-permission", c.EnforceListPermission, "Require the newsletters.list_newsletter permission to list newsletters")
	fs.BoolVar(&c.EnableLogWorker, "enable-newsletter-log-worker", c.EnableLogWorker, "Periodically write a newsletter log from the serve command")
	fs.DurationVar(&c.LogInterval, "newsletter-log-interval", c.LogInterval, "Interval between two newsletter logs written by the log worker")
}

// ReadFiles ...
func (c *NewsletterConfig) ReadFiles() error {
	if c.EnableLogWorker && c.LogInterval <= 0 {
		return errors.Errorf("newsletter log interval must be positive, got %s", c.LogInterval)
	}
	return nil
}
