// Package workers runs periodic background jobs.
package workers

import (
	"context"
	"time"

	"github.com/golang/glog"

	"github.com/stackrox/newsletter-manager/pkg/logger"
	"github.com/stackrox/newsletter-manager/pkg/metrics"
)

// Reconciler drives a Worker on a ticker.
type Reconciler struct{}

// Run reconciles immediately and then on every repeat interval until ctx is done.
func (r Reconciler) Run(ctx context.Context, worker Worker) {
	ticker := time.NewTicker(worker.GetRepeatInterval())
	defer ticker.Stop()

	glog.V(1).Infof("Initial reconciliation loop for %s [%s]", worker.GetWorkerType(), worker.GetID())
	r.reconcile(ctx, worker)
	for {
		select {
		case <-ticker.C:
			r.reconcile(ctx, worker)
		case <-ctx.Done():
			glog.V(1).Infof("Stopping reconciliation loop for %s [%s]", worker.GetWorkerType(), worker.GetID())
			return
		}
	}
}

func (r Reconciler) reconcile(ctx context.Context, worker Worker) {
	workerType := worker.GetWorkerType()
	start := time.Now()
	errs := worker.Reconcile(ctx)
	if len(errs) == 0 {
		metrics.IncreaseReconcilerSuccessCount(workerType)
	} else {
		metrics.IncreaseReconcilerFailureCount(workerType)
		metrics.IncreaseReconcilerErrorsCount(workerType, len(errs))
	}
	metrics.UpdateReconcilerDurationMetric(workerType, time.Since(start))
	for _, err := range errs {
		logger.NewUHCLogger(ctx).Errorf("%s worker: %v", workerType, err)
	}
}
