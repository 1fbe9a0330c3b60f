package events

import (
	"context"
	"sync"
)

// Store is an append-only sink for lifecycle events.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByCampaign(ctx context.Context, campaignID string) ([]Event, error)
}

// MemoryStore keeps events in process. Suitable for tests and single-node
// deployments without Kafka.
type MemoryStore struct {
	mu     sync.RWMutex
	events []Event
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *MemoryStore) ListByCampaign(_ context.Context, campaignID string) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Event
	for _, e := range s.events {
		if e.CampaignID == campaignID {
			out = append(out, e)
		}
	}
	return out, nil
}
