package state

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory implementation of Store. It is intended for
// single-process deployments or testing.
type MemoryStore struct {
	mu    sync.RWMutex
	state *State
}

// NewMemoryStore creates a memory store holding the initial state
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{state: New()}
}

func (s *MemoryStore) Load(_ context.Context) (*State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone(), nil
}

func (s *MemoryStore) Save(_ context.Context, state *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state.Clone()
	return nil
}
