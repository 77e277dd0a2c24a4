package workers

import (
	"context"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/stackrox/newsletter-manager/pkg/metrics"
)

// DefaultRepeatInterval is used by workers without a RepeatInterval. Tests may lower it.
var DefaultRepeatInterval = 30 * time.Second

// Worker ...
//
//go:generate moq -out worker_interface_moq.go . Worker
type Worker interface {
	GetID() string
	GetWorkerType() string
	GetRepeatInterval() time.Duration
	IsRunning() bool
	Start()
	Stop()
	// Reconcile runs one pass. ctx is cancelled when the worker stops.
	Reconcile(ctx context.Context) []error
}

// BaseWorker carries the bookkeeping shared by workers. Embed it and call StartWorker/StopWorker
// from Start/Stop.
type BaseWorker struct {
	ID             string
	WorkerType     string
	RepeatInterval time.Duration
	Reconciler     Reconciler

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// GetID ...
func (b *BaseWorker) GetID() string {
	return b.ID
}

// GetWorkerType ...
func (b *BaseWorker) GetWorkerType() string {
	return b.WorkerType
}

// GetRepeatInterval returns RepeatInterval, falling back to DefaultRepeatInterval when unset.
func (b *BaseWorker) GetRepeatInterval() time.Duration {
	if b.RepeatInterval > 0 {
		return b.RepeatInterval
	}
	return DefaultRepeatInterval
}

// IsRunning ...
func (b *BaseWorker) IsRunning() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cancel != nil
}

// StartWorker runs w in the background. Starting a running worker does nothing.
func (b *BaseWorker) StartWorker(w Worker) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cancel != nil {
		return
	}
	glog.Infof("Starting %s worker id = %s", b.WorkerType, b.ID)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	b.cancel, b.done = cancel, done
	metrics.SetWorkerRunningMetric(b.WorkerType, true)
	go func() {
		defer close(done)
		b.Reconciler.Run(ctx, w)
	}()
}

// StopWorker cancels the running pass and waits for it to return. Stopping an idle worker does nothing.
func (b *BaseWorker) StopWorker() {
	b.mu.Lock()
	cancel, done := b.cancel, b.done
	b.cancel, b.done = nil, nil
	b.mu.Unlock()
	if cancel == nil {
		return
	}
	glog.Infof("Stopping %s worker id = %s", b.WorkerType, b.ID)
	cancel()
	<-done
	metrics.SetWorkerRunningMetric(b.WorkerType, false)
}
