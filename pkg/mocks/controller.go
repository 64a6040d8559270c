package mocks

import (
	"context"
	"sync"

	"github.com/user/hairline/pkg/pipeline"
)

// Controller is a mock pipeline state controller recording every SetState
// call.
type Controller struct {
	SetStateFunc func(ctx context.Context, state pipeline.State) error

	mu     sync.Mutex
	States []pipeline.State
}

func (m *Controller) SetState(ctx context.Context, state pipeline.State) error {
	m.mu.Lock()
	m.States = append(m.States, state)
	m.mu.Unlock()
	if m.SetStateFunc != nil {
		return m.SetStateFunc(ctx, state)
	}
	return nil
}

// Calls returns a copy of the recorded states.
func (m *Controller) Calls() []pipeline.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]pipeline.State(nil), m.States...)
}
