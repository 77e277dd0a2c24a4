package workers

import (
	"github.com/golang/glog"

	"github.com/stackrox/newsletter-manager/pkg/environments"
)

var _ environments.BootService = &Service{}

// Service starts every registered worker when the environment runs and stops them on shutdown.
type Service struct {
	workers []Worker
}

// NewService ...
func NewService(workers []Worker) *Service {
	return &Service{workers: workers}
}

// Start implements environments.BootService.
func (s *Service) Start() {
	for _, worker := range s.workers {
		if worker.IsRunning() {
			continue
		}
		glog.V(1).Infof("Starting worker %q with id %q", worker.GetWorkerType(), worker.GetID())
		worker.Start()
	}
}

// Stop implements environments.BootService.
func (s *Service) Stop() {
	for _, worker := range s.workers {
		if !worker.IsRunning() {
			continue
		}
		glog.V(1).Infof("Stopping worker %q with id %q", worker.GetWorkerType(), worker.GetID())
		worker.Stop()
	}
}
