package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPublisherAndWorkerRoundTrip(t *testing.T) {
	inbox := make(chan Event, 8)
	store := NewMemoryStore()
	worker := NewWorker(store, inbox)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = worker.Run(ctx)
	}()

	pub := NewChannelPublisher(inbox)
	require.NoError(t, pub.Emit(ctx, Event{Type: TypeCampaignCreated, CampaignID: "c1", Name: "Q3 Thanks"}))
	require.NoError(t, pub.Emit(ctx, Event{Type: TypeCampaignLaunched, CampaignID: "c1"}))
	require.NoError(t, pub.Emit(ctx, Event{Type: TypeDraftSaved, CampaignID: "c2"}))

	require.Eventually(t, func() bool {
		got, err := store.ListByCampaign(context.Background(), "c1")
		return err == nil && len(got) == 2
	}, time.Second, 5*time.Millisecond)

	got, err := store.ListByCampaign(context.Background(), "c1")
	require.NoError(t, err)
	require.Equal(t, TypeCampaignCreated, got[0].Type)
	require.Equal(t, TypeCampaignLaunched, got[1].Type)
	require.False(t, got[0].Timestamp.IsZero(), "publisher stamps events")

	cancel()
	<-done
}

func TestEmitRespectsContext(t *testing.T) {
	inbox := make(chan Event) // unbuffered, nobody reading
	pub := NewChannelPublisher(inbox)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pub.Emit(ctx, Event{Type: TypeDraftSaved, CampaignID: "c1"})
	require.ErrorIs(t, err, context.Canceled)
}
