package contacts

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"giftwell/internal/campaign/models"
)

const (
	// DefaultQuietPeriod is how long the query text must be stable before a
	// lookup is dispatched.
	DefaultQuietPeriod = 500 * time.Millisecond

	// DefaultMinQueryLength is the shortest query worth dispatching. Below
	// it, results clear immediately instead of going stale.
	DefaultMinQueryLength = 3
)

// Debouncer coalesces keystrokes into at most one in-flight contact lookup.
// Each new query bumps a generation counter; a lookup result is applied only
// if its generation still matches the latest issued one, so superseded
// results are discarded silently regardless of arrival order. In-flight
// lookups are not aborted, only ignored.
type Debouncer struct {
	searcher Searcher
	quiet    time.Duration
	minQuery int
	logger   *slog.Logger
	onApply  func(query string, results []models.Contact, err error)

	mu      sync.Mutex
	gen     uint64
	timer   *time.Timer
	results []models.Contact
	err     error
}

type DebounceOption func(*Debouncer)

// WithQuietPeriod overrides the 500ms stability window.
func WithQuietPeriod(d time.Duration) DebounceOption {
	return func(db *Debouncer) {
		db.quiet = d
	}
}

// WithMinQueryLength overrides the 3-character dispatch threshold.
func WithMinQueryLength(n int) DebounceOption {
	return func(db *Debouncer) {
		db.minQuery = n
	}
}

// WithLogger attaches a logger for discarded-result diagnostics.
func WithLogger(logger *slog.Logger) DebounceOption {
	return func(db *Debouncer) {
		db.logger = logger
	}
}

// WithApplyHook registers a callback invoked after a lookup result is
// applied. Used by callers that push results somewhere else.
func WithApplyHook(hook func(query string, results []models.Contact, err error)) DebounceOption {
	return func(db *Debouncer) {
		db.onApply = hook
	}
}

// NewDebouncer builds a debouncer around a searcher.
func NewDebouncer(searcher Searcher, opts ...DebounceOption) *Debouncer {
	d := &Debouncer{
		searcher: searcher,
		quiet:    DefaultQuietPeriod,
		minQuery: DefaultMinQueryLength,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Query feeds one keystroke's worth of text. Queries below the length
// threshold clear the current results immediately; anything longer arms the
// quiet-period timer, invalidating whatever was pending.
func (d *Debouncer) Query(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	if len(query) < d.minQuery {
		d.results = nil
		d.err = nil
		return
	}

	gen := d.gen
	d.timer = time.AfterFunc(d.quiet, func() {
		d.dispatch(gen, query)
	})
}

// Results returns the last applied lookup outcome.
func (d *Debouncer) Results() ([]models.Contact, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]models.Contact(nil), d.results...), d.err
}

// Stop cancels any pending dispatch. Results already in flight are still
// discarded by the generation check.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// dispatch runs the lookup once the quiet period elapsed. The search uses a
// background context: the issuing HTTP request has long since returned.
func (d *Debouncer) dispatch(gen uint64, query string) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.mu.Unlock()

	results, err := d.searcher.Search(context.Background(), query)

	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		if d.logger != nil {
			d.logger.Debug("discarding superseded contact lookup", "query", query)
		}
		return
	}
	d.results = results
	d.err = err
	hook := d.onApply
	d.mu.Unlock()

	if hook != nil {
		hook(query, results, err)
	}
}
