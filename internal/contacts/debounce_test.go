package contacts

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"giftwell/internal/campaign/models"
)

const testQuiet = 20 * time.Millisecond

// recordingSearcher captures dispatched queries and answers with a contact
// named after the query.
type recordingSearcher struct {
	mu      sync.Mutex
	queries []string
	block   map[string]chan struct{}
}

func newRecordingSearcher() *recordingSearcher {
	return &recordingSearcher{block: make(map[string]chan struct{})}
}

func (s *recordingSearcher) blockOn(query string) chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan struct{})
	s.block[query] = ch
	return ch
}

func (s *recordingSearcher) Search(_ context.Context, query string) ([]models.Contact, error) {
	s.mu.Lock()
	s.queries = append(s.queries, query)
	gate := s.block[query]
	s.mu.Unlock()

	if gate != nil {
		<-gate
	}
	return []models.Contact{{ID: query, Name: query}}, nil
}

func (s *recordingSearcher) dispatched() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}

func waitForResults(t *testing.T, d *Debouncer) []models.Contact {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		results, err := d.Results()
		require.NoError(t, err)
		if len(results) > 0 {
			return results
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("timed out waiting for debounced results")
	return nil
}

func TestDebounceLastWriteWins(t *testing.T) {
	searcher := newRecordingSearcher()
	d := NewDebouncer(searcher, WithQuietPeriod(testQuiet))
	defer d.Stop()

	// Three keystrokes inside the quiet window: only the last dispatches.
	d.Query("ab")
	d.Query("abc")
	d.Query("abcd")

	results := waitForResults(t, d)
	require.Equal(t, "abcd", results[0].Name)
	require.Equal(t, []string{"abcd"}, searcher.dispatched())
}

func TestDebounceBelowThresholdClearsImmediately(t *testing.T) {
	searcher := newRecordingSearcher()
	d := NewDebouncer(searcher, WithQuietPeriod(testQuiet))
	defer d.Stop()

	d.Query("lovelace")
	waitForResults(t, d)

	d.Query("ab")
	results, err := d.Results()
	require.NoError(t, err)
	require.Empty(t, results, "short queries clear results instead of leaving them stale")
	require.Equal(t, []string{"lovelace"}, searcher.dispatched(), "short query never dispatches")
}

func TestDebounceDiscardsSupersededInFlightResult(t *testing.T) {
	searcher := newRecordingSearcher()
	gate := searcher.blockOn("slow")

	applied := make(chan string, 4)
	d := NewDebouncer(searcher,
		WithQuietPeriod(testQuiet),
		WithApplyHook(func(query string, _ []models.Contact, _ error) {
			applied <- query
		}),
	)
	defer d.Stop()

	d.Query("slow")
	// Wait until the slow lookup is actually in flight.
	require.Eventually(t, func() bool {
		return len(searcher.dispatched()) == 1
	}, 2*time.Second, 2*time.Millisecond)

	// A newer query supersedes it while it hangs.
	d.Query("fast")
	require.Equal(t, "fast", <-applied)

	// Releasing the stale lookup must not overwrite the newer result.
	close(gate)
	time.Sleep(5 * testQuiet)
	results, err := d.Results()
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "fast", results[0].Name)
}

func TestDebounceStopCancelsPendingDispatch(t *testing.T) {
	searcher := newRecordingSearcher()
	d := NewDebouncer(searcher, WithQuietPeriod(testQuiet))

	d.Query("abcdef")
	d.Stop()
	time.Sleep(5 * testQuiet)
	require.Empty(t, searcher.dispatched())
}

func TestStaticDirectorySearch(t *testing.T) {
	dir := NewStaticDirectory(
		models.Contact{ID: "1", Name: "Ada Lovelace", Company: "Initech", Email: "ada@initech.com"},
		models.Contact{ID: "2", Name: "Grace Hopper", Company: "Globex", Email: "grace@globex.com"},
	)
	got, err := dir.Search(context.Background(), "globex")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Grace Hopper", got[0].Name)
}
