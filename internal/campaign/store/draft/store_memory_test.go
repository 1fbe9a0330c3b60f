package draft

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"giftwell/internal/campaign/models"
	"giftwell/internal/campaign/store"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	d := models.CampaignDraft{
		ID:        uuid.New(),
		Name:      "Onboarding Welcome",
		Status:    models.StatusDraft,
		UpdatedAt: time.Now(),
	}
	require.NoError(t, s.Save(ctx, d))

	got, err := s.Get(ctx, d.ID)
	require.NoError(t, err)
	require.Equal(t, d.Name, got.Name)

	_, err = s.Get(ctx, uuid.New())
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	base := time.Now()
	older := models.CampaignDraft{ID: uuid.New(), Name: "older", UpdatedAt: base.Add(-time.Hour)}
	newer := models.CampaignDraft{ID: uuid.New(), Name: "newer", UpdatedAt: base}
	require.NoError(t, s.Save(ctx, older))
	require.NoError(t, s.Save(ctx, newer))

	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "newer", got[0].Name)
	require.Equal(t, "older", got[1].Name)
}

func TestMemoryStoreSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	d := models.CampaignDraft{ID: uuid.New(), Name: "v1"}
	require.NoError(t, s.Save(ctx, d))
	d.Name = "v2"
	require.NoError(t, s.Save(ctx, d))

	got, err := s.Get(ctx, d.ID)
	require.NoError(t, err)
	require.Equal(t, "v2", got.Name)
}
