package queue

import (
	"context"
	"encoding/json"
	"sync"
)

// MockProducer records enqueued jobs for assertions in service tests.
type MockProducer struct {
	mu   sync.Mutex
	Jobs []Job

	EnqueueErr error
}

func NewMockProducer() *MockProducer {
	return &MockProducer{}
}

func (m *MockProducer) Enqueue(_ context.Context, jobType string, payload json.RawMessage, priority int) error {
	if m.EnqueueErr != nil {
		return m.EnqueueErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Jobs = append(m.Jobs, Job{Type: jobType, Payload: payload, Priority: priority})
	return nil
}

func (m *MockProducer) JobsOfType(jobType string) []Job {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Job
	for _, j := range m.Jobs {
		if j.Type == jobType {
			out = append(out, j)
		}
	}
	return out
}
