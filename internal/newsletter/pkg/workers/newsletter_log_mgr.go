// Package workers contains the background jobs of the newsletter service.
package workers

import (
	"context"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/config"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/services"
	"github.com/stackrox/newsletter-manager/pkg/workers"
)

// NewsletterLogManager writes one successful newsletter log every interval, the same row the check command writes.
type NewsletterLogManager struct {
	workers.BaseWorker
	logService services.NewsletterLogService
	enabled    bool
}

var _ workers.Worker = (*NewsletterLogManager)(nil)

// NewNewsletterLogManager ...
func NewNewsletterLogManager(logService services.NewsletterLogService, newsletterConfig *config.NewsletterConfig) *NewsletterLogManager {
	return &NewsletterLogManager{
		BaseWorker: workers.BaseWorker{
			ID:             uuid.New().String(),
			WorkerType:     "newsletter_log",
			RepeatInterval: newsletterConfig.LogInterval,
		},
		logService: logService,
		enabled:    newsletterConfig.EnableLogWorker,
	}
}

// Start does nothing unless the worker is enabled.
func (m *NewsletterLogManager) Start() {
	if !m.enabled {
		glog.V(1).Infof("Worker %q is disabled", m.WorkerType)
		return
	}
	m.StartWorker(m)
}

// Stop ...
func (m *NewsletterLogManager) Stop() {
	m.StopWorker()
}

// Reconcile ...
func (m *NewsletterLogManager) Reconcile(ctx context.Context) []error {
	entry, err := m.logService.Record(ctx, true)
	if err != nil {
		return []error{errors.Wrap(err, "failed to write newsletter log")}
	}
	glog.V(5).Infof("newsletter log %s written", entry.ID)
	return nil
}
