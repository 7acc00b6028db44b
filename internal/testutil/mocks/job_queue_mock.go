package mocks

import (
	"sync"

	"github.com/GayaStar/adaptiveChess/internal/worker"
)

// MockJobQueue records submitted jobs instead of running them.
type MockJobQueue struct {
	mu   sync.Mutex
	Jobs []worker.Job
}

func (m *MockJobQueue) Submit(job worker.Job) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Jobs = append(m.Jobs, job)
}

// Submitted returns a snapshot of the jobs seen so far.
func (m *MockJobQueue) Submitted() []worker.Job {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]worker.Job(nil), m.Jobs...)
}
