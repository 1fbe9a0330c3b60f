package draft

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"giftwell/internal/campaign/models"
	"giftwell/internal/campaign/store"
)

// MemoryStore keeps campaign drafts in process.
type MemoryStore struct {
	mu     sync.RWMutex
	drafts map[uuid.UUID]models.CampaignDraft
}

func NewMemory() *MemoryStore {
	return &MemoryStore{drafts: make(map[uuid.UUID]models.CampaignDraft)}
}

func (s *MemoryStore) Save(_ context.Context, draft models.CampaignDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[draft.ID] = draft
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (models.CampaignDraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	draft, ok := s.drafts[id]
	if !ok {
		return models.CampaignDraft{}, store.ErrNotFound
	}
	return draft, nil
}

func (s *MemoryStore) List(_ context.Context) ([]models.CampaignDraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CampaignDraft, 0, len(s.drafts))
	for _, d := range s.drafts {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}
