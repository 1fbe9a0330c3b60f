package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"giftwell/internal/campaign/designer"
	"giftwell/internal/campaign/models"
	"giftwell/internal/campaign/selection"
	"giftwell/internal/campaign/store"
	"giftwell/internal/contacts"
	"giftwell/internal/events"
	"giftwell/internal/platform/metrics"
	dErrors "giftwell/pkg/domain-errors"
)

// SessionStore persists in-progress designer sessions.
type SessionStore interface {
	Save(ctx context.Context, state designer.State) error
	Get(ctx context.Context, id uuid.UUID) (designer.State, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DraftStore persists campaign draft snapshots.
type DraftStore interface {
	Save(ctx context.Context, draft models.CampaignDraft) error
	Get(ctx context.Context, id uuid.UUID) (models.CampaignDraft, error)
	List(ctx context.Context) ([]models.CampaignDraft, error)
}

// Catalog resolves gift bundles from the inventory source.
type Catalog interface {
	Bundles(ctx context.Context) ([]models.Bundle, error)
	Bundle(ctx context.Context, bundleID string) (models.Bundle, error)
}

// Service orchestrates designer sessions: it loads state, applies events
// through the reducer, persists the result, and emits lifecycle events.
type Service struct {
	sessions  SessionStore
	drafts    DraftStore
	catalog   Catalog
	searcher  contacts.Searcher
	lists     contacts.ListSource
	publisher events.Publisher
	logger    *slog.Logger
	metrics   *metrics.Metrics
	now       func() time.Time

	quiet    time.Duration
	minQuery int

	mu         sync.Mutex
	debouncers map[uuid.UUID]*contacts.Debouncer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithPublisher(p events.Publisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

func WithListSource(l contacts.ListSource) Option {
	return func(s *Service) {
		s.lists = l
	}
}

// WithSearchTuning overrides the debounce quiet period and minimum query
// length used for contact lookups.
func WithSearchTuning(quiet time.Duration, minQuery int) Option {
	return func(s *Service) {
		if quiet > 0 {
			s.quiet = quiet
		}
		if minQuery > 0 {
			s.minQuery = minQuery
		}
	}
}

// WithClock overrides the time source for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(sessions SessionStore, drafts DraftStore, catalog Catalog, searcher contacts.Searcher, opts ...Option) *Service {
	s := &Service{
		sessions:   sessions,
		drafts:     drafts,
		catalog:    catalog,
		searcher:   searcher,
		logger:     slog.Default(),
		now:        time.Now,
		quiet:      contacts.DefaultQuietPeriod,
		minQuery:   contacts.DefaultMinQueryLength,
		debouncers: make(map[uuid.UUID]*contacts.Debouncer),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Create starts a new designer session.
func (s *Service) Create(ctx context.Context, name string) (designer.State, error) {
	state := designer.New(uuid.New(), name, s.now())
	if err := s.sessions.Save(ctx, state); err != nil {
		return designer.State{}, dErrors.Wrap(err, dErrors.CodeInternal, "create campaign failed")
	}

	if s.metrics != nil {
		s.metrics.CampaignsCreated.Inc()
	}
	s.emit(ctx, events.Event{Type: events.TypeCampaignCreated, CampaignID: state.ID.String(), Name: state.Name})
	s.logger.InfoContext(ctx, "campaign created", "campaign_id", state.ID, "name", state.Name)
	return state, nil
}

// Get returns the current session state.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (designer.State, error) {
	state, err := s.sessions.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return designer.State{}, dErrors.New(dErrors.CodeNotFound, "campaign not found")
	}
	if err != nil {
		return designer.State{}, dErrors.Wrap(err, dErrors.CodeInternal, "load campaign failed")
	}
	return state, nil
}

// Apply runs one designer event through the reducer and persists the result.
func (s *Service) Apply(ctx context.Context, id uuid.UUID, event designer.Event) (designer.State, error) {
	state, err := s.Get(ctx, id)
	if err != nil {
		return designer.State{}, err
	}

	start := time.Now()
	next, err := designer.Apply(state, event, s.now())
	if err != nil {
		return designer.State{}, err
	}
	if s.metrics != nil {
		s.metrics.RecomputeSeconds.Observe(time.Since(start).Seconds())
		s.metrics.EventsApplied.WithLabelValues(event.Kind()).Inc()
	}

	if err := s.sessions.Save(ctx, next); err != nil {
		return designer.State{}, dErrors.Wrap(err, dErrors.CodeInternal, "save campaign failed")
	}
	return next, nil
}

// SelectBundle resolves a bundle by id through the catalog and applies it.
func (s *Service) SelectBundle(ctx context.Context, id uuid.UUID, bundleID string) (designer.State, error) {
	bundle, err := s.catalog.Bundle(ctx, bundleID)
	if err != nil {
		return designer.State{}, err
	}
	return s.Apply(ctx, id, designer.SelectBundle{Bundle: bundle})
}

// InstallRecipientList fetches a saved contact list and installs it as the
// session's recipient list.
func (s *Service) InstallRecipientList(ctx context.Context, id uuid.UUID, listID string) (designer.State, error) {
	if s.lists == nil {
		return designer.State{}, dErrors.New(dErrors.CodeUnavailable, "no contact list source configured")
	}
	list, err := s.lists.FetchList(ctx, listID)
	if err != nil {
		return designer.State{}, dErrors.Wrap(err, dErrors.CodeUnavailable, "fetch contact list failed")
	}
	return s.Apply(ctx, id, designer.SetRecipientList{Contacts: list})
}

// Bundles lists the gift catalog.
func (s *Service) Bundles(ctx context.Context) ([]models.Bundle, error) {
	return s.catalog.Bundles(ctx)
}

// SaveDraft snapshots the session into the draft store.
func (s *Service) SaveDraft(ctx context.Context, id uuid.UUID) (models.CampaignDraft, error) {
	state, err := s.Get(ctx, id)
	if err != nil {
		return models.CampaignDraft{}, err
	}

	draft := state.Snapshot()
	if err := s.drafts.Save(ctx, draft); err != nil {
		return models.CampaignDraft{}, dErrors.Wrap(err, dErrors.CodeInternal, "save draft failed")
	}

	if s.metrics != nil {
		s.metrics.DraftsSaved.Inc()
	}
	s.emit(ctx, events.Event{Type: events.TypeDraftSaved, CampaignID: draft.ID.String(), Name: draft.Name})
	return draft, nil
}

// Launch validates the session, marks it launched, and persists the final
// snapshot. Launched campaigns reject further edits.
func (s *Service) Launch(ctx context.Context, id uuid.UUID) (models.CampaignDraft, error) {
	state, err := s.Get(ctx, id)
	if err != nil {
		return models.CampaignDraft{}, err
	}

	if err := validateForLaunch(state); err != nil {
		return models.CampaignDraft{}, err
	}

	state.Status = models.StatusLaunched
	state.UpdatedAt = s.now()

	draft := state.Snapshot()
	if err := s.drafts.Save(ctx, draft); err != nil {
		return models.CampaignDraft{}, dErrors.Wrap(err, dErrors.CodeInternal, "save launched campaign failed")
	}
	if err := s.sessions.Save(ctx, state); err != nil {
		return models.CampaignDraft{}, dErrors.Wrap(err, dErrors.CodeInternal, "save launched campaign failed")
	}

	if s.metrics != nil {
		s.metrics.CampaignsLaunched.Inc()
	}
	s.emit(ctx, events.Event{Type: events.TypeCampaignLaunched, CampaignID: draft.ID.String(), Name: draft.Name})
	s.logger.InfoContext(ctx, "campaign launched",
		"campaign_id", draft.ID,
		"recipients", draft.RecipientCount,
		"total_cost", draft.Budget.Total(),
	)
	return draft, nil
}

// Drafts lists persisted draft snapshots, newest first.
func (s *Service) Drafts(ctx context.Context) ([]models.CampaignDraft, error) {
	drafts, err := s.drafts.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "list drafts failed")
	}
	return drafts, nil
}

// QueryContacts feeds one keystroke to the session's debounced searcher.
func (s *Service) QueryContacts(ctx context.Context, id uuid.UUID, query string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	s.debouncerFor(id).Query(query)
	return nil
}

// ContactResults returns the latest debounced search outcome for a session.
func (s *Service) ContactResults(ctx context.Context, id uuid.UUID) ([]models.Contact, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	results, err := s.debouncerFor(id).Results()
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "contact lookup failed")
	}
	return results, nil
}

// Close stops all per-session debouncers.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.debouncers {
		d.Stop()
	}
	s.debouncers = make(map[uuid.UUID]*contacts.Debouncer)
}

func (s *Service) debouncerFor(id uuid.UUID) *contacts.Debouncer {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.debouncers[id]
	if !ok {
		d = contacts.NewDebouncer(s.searcher,
			contacts.WithQuietPeriod(s.quiet),
			contacts.WithMinQueryLength(s.minQuery),
			contacts.WithLogger(s.logger),
			contacts.WithApplyHook(func(string, []models.Contact, error) {
				if s.metrics != nil {
					s.metrics.ContactLookups.Inc()
				}
			}),
		)
		s.debouncers[id] = d
	}
	return d
}

// emit publishes a lifecycle event. Delivery failures are logged, not
// propagated: the state change has already been persisted.
func (s *Service) emit(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "lifecycle event delivery failed",
			"type", event.Type,
			"campaign_id", event.CampaignID,
			"error", err,
		)
	}
}

func validateForLaunch(state designer.State) error {
	if state.Status == models.StatusLaunched {
		return dErrors.New(dErrors.CodeConflict, "campaign is already launched")
	}
	if state.Bundle == nil {
		return dErrors.New(dErrors.CodeValidation, "a gift bundle must be selected before launch")
	}
	switch state.GiftMode {
	case models.GiftModeOneGift:
		if state.Selection.SelectedGiftID == "" {
			return dErrors.New(dErrors.CodeValidation, "no gift falls inside the budget window")
		}
	case models.GiftModeRecipientChoice:
		if len(state.Selection.RecipientGiftIDs) < selection.MinRecipientChoice {
			return dErrors.Newf(dErrors.CodeValidation, "recipient choice needs at least %d gifts in the window", selection.MinRecipientChoice)
		}
	}
	if state.RecipientCount <= 0 {
		return dErrors.New(dErrors.CodeValidation, "campaign needs at least one recipient")
	}
	return nil
}
