package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"giftwell/internal/campaign/designer"
	"giftwell/internal/campaign/store"
)

// MemoryStore keeps designer sessions in process. Suitable for tests and
// single-node deployments without Redis.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]designer.State
}

func NewMemory() *MemoryStore {
	return &MemoryStore{sessions: make(map[uuid.UUID]designer.State)}
}

func (s *MemoryStore) Save(_ context.Context, state designer.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[state.ID] = state
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (designer.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.sessions[id]
	if !ok {
		return designer.State{}, store.ErrNotFound
	}
	return state, nil
}

func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
