package workers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestService_StartsIdleWorkersAndStopsRunningOnes(t *testing.T) {
	running := map[string]bool{"idle": false, "busy": true}
	started := map[string]int{}
	stopped := map[string]int{}

	newMock := func(id string) *WorkerMock {
		return &WorkerMock{
			GetIDFunc:         func() string { return id },
			GetWorkerTypeFunc: func() string { return "test" },
			IsRunningFunc:     func() bool { return running[id] },
			StartFunc: func() {
				started[id]++
				running[id] = true
			},
			StopFunc: func() {
				stopped[id]++
				running[id] = false
			},
		}
	}

	svc := NewService([]Worker{newMock("idle"), newMock("busy")})

	svc.Start()
	assert.Equal(t, map[string]int{"idle": 1}, started)

	svc.Stop()
	assert.Equal(t, map[string]int{"idle": 1, "busy": 1}, stopped)
}
