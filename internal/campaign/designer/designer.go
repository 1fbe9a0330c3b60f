package designer

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"giftwell/internal/campaign/budget"
	"giftwell/internal/campaign/mode"
	"giftwell/internal/campaign/models"
	"giftwell/internal/campaign/selection"
	dErrors "giftwell/pkg/domain-errors"
	"giftwell/pkg/email"
)

// Default price filter window for a fresh session.
const (
	DefaultWindowMin = 25
	DefaultWindowMax = 100
)

// State is the complete campaign designer session. Everything below the
// input fields is derived: RecipientMode, Selection, Budget, and
// RecipientCount are recomputed in full after every applied event, so the
// displayed summary is never stale.
type State struct {
	ID     uuid.UUID             `json:"id"`
	Name   string                `json:"name"`
	Status models.CampaignStatus `json:"status"`

	// Inputs.
	Goal            models.Goal         `json:"goal"`
	Motion          models.Motion       `json:"motion"`
	GiftMode        models.GiftMode     `json:"gift_mode"`
	Window          models.BudgetWindow `json:"window"`
	FixedCount      int                 `json:"fixed_count"`
	ClaimAllocation int                 `json:"claim_allocation"`
	NFCEnabled      bool                `json:"nfc_enabled"`
	Bundle          *models.Bundle      `json:"bundle,omitempty"`
	Contacts        []models.Contact    `json:"contacts,omitempty"`
	Recipients      []models.Contact    `json:"recipients,omitempty"`
	RecipientFilter string              `json:"recipient_filter,omitempty"`

	// Derived.
	RecipientMode  models.RecipientMode `json:"recipient_mode"`
	RecipientCount int                  `json:"recipient_count"`
	Selection      models.GiftSelection `json:"selection"`
	Budget         models.BudgetConfig  `json:"budget"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New starts a session with the default gift mode and price window.
func New(id uuid.UUID, name string, now time.Time) State {
	s := State{
		ID:        id,
		Name:      name,
		Status:    models.StatusDraft,
		GiftMode:  models.GiftModeOneGift,
		Window:    models.BudgetWindow{Min: DefaultWindowMin, Max: DefaultWindowMax},
		CreatedAt: now,
		UpdatedAt: now,
	}
	rederive(&s)
	return s
}

// Apply validates an event against the current state and returns the next
// state. Rejected events leave the input state untouched and surface a
// validation error. Every accepted event triggers a full re-derivation
// (mode, then selection, then budget) rather than an incremental update.
func Apply(s State, e Event, now time.Time) (State, error) {
	if s.Status == models.StatusLaunched {
		return s, dErrors.New(dErrors.CodeConflict, "campaign is already launched")
	}

	next := s
	switch ev := e.(type) {
	case SetName:
		name := strings.TrimSpace(ev.Name)
		if name == "" {
			return s, dErrors.New(dErrors.CodeValidation, "campaign name cannot be empty")
		}
		next.Name = name

	case SetGoalMotion:
		next.Goal = ev.Goal
		next.Motion = ev.Motion

	case SetGiftMode:
		switch ev.Mode {
		case models.GiftModeOneGift, models.GiftModeRecipientChoice, models.GiftModeSmartMatch:
			next.GiftMode = ev.Mode
		default:
			return s, dErrors.Newf(dErrors.CodeValidation, "unknown gift mode %q", ev.Mode)
		}

	case SetBudgetWindow:
		if ev.Min < 0 || ev.Max < ev.Min {
			return s, dErrors.New(dErrors.CodeValidation, "budget window requires 0 <= min <= max")
		}
		next.Window = models.BudgetWindow{Min: ev.Min, Max: ev.Max}

	case SetAvailableCredits:
		if ev.Credits < 0 {
			return s, dErrors.New(dErrors.CodeValidation, "available credits cannot be negative")
		}
		next.Budget.AvailableCredits = ev.Credits

	case SelectBundle:
		bundle := ev.Bundle
		next.Bundle = &bundle
		next.Selection = selection.ReplaceForBundle(next.GiftMode, bundle.Gifts, next.Window)

	case PickGift:
		sel, err := selection.Pick(s.Selection, inventoryOf(s), s.Window, ev.GiftID)
		if err != nil {
			return s, err
		}
		next.Selection = sel

	case ToggleRecipientGift:
		sel, err := selection.Toggle(s.Selection, inventoryOf(s), s.Window, ev.GiftID)
		if err != nil {
			return s, err
		}
		next.Selection = sel

	case AddContact:
		contact := ev.Contact
		if contact.ID == "" {
			contact.ID = uuid.NewString()
		}
		if hasContactEmail(s.Contacts, contact.Email) {
			return s, dErrors.New(dErrors.CodeValidation, "contact is already selected")
		}
		next.Contacts = append(slices.Clone(s.Contacts), contact)

	case QuickAddContact:
		addr := strings.TrimSpace(ev.Email)
		if !email.Valid(addr) {
			return s, dErrors.New(dErrors.CodeValidation, "a valid email address is required")
		}
		if hasContactEmail(s.Contacts, addr) {
			return s, dErrors.New(dErrors.CodeValidation, "contact is already selected")
		}
		name := strings.TrimSpace(ev.Name)
		if name == "" {
			name = email.DeriveName(addr)
		}
		next.Contacts = append(slices.Clone(s.Contacts), models.Contact{
			ID:      uuid.NewString(),
			Name:    name,
			Email:   addr,
			Company: strings.TrimSpace(ev.Company),
		})

	case RemoveContact:
		// Removing an unknown id is an idempotent no-op.
		next.Contacts = slices.DeleteFunc(slices.Clone(s.Contacts), func(c models.Contact) bool {
			return c.ID == ev.ContactID
		})

	case SetFixedCount:
		if ev.Count < 0 {
			return s, dErrors.New(dErrors.CodeValidation, "recipient count cannot be negative")
		}
		next.FixedCount = ev.Count

	case SetClaimAllocation:
		if ev.Count < 0 {
			return s, dErrors.New(dErrors.CodeValidation, "claim allocation cannot be negative")
		}
		next.ClaimAllocation = ev.Count

	case SetRecipientList:
		next.Recipients = slices.Clone(ev.Contacts)
		next.RecipientFilter = ""

	case FilterRecipients:
		next.RecipientFilter = strings.TrimSpace(ev.Query)

	case SetNFC:
		next.NFCEnabled = ev.Enabled

	default:
		return s, dErrors.Newf(dErrors.CodeBadRequest, "unsupported event %T", e)
	}

	rederive(&next)
	next.UpdatedAt = now
	return next, nil
}

// Snapshot produces the serializable draft persisted on save or launch.
func (s State) Snapshot() models.CampaignDraft {
	return models.CampaignDraft{
		ID:             s.ID,
		Name:           s.Name,
		Goal:           s.Goal,
		Motion:         s.Motion,
		RecipientMode:  s.RecipientMode,
		GiftMode:       s.GiftMode,
		BundleID:       s.bundleID(),
		Contacts:       slices.Clone(s.Contacts),
		RecipientCount: s.RecipientCount,
		Selection:      s.Selection,
		Budget:         s.Budget,
		NFCEnabled:     s.NFCEnabled,
		Status:         s.Status,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// rederive recomputes every derived field from the inputs. Derivation flows
// one way: mode resolution, then gift selection, then budget.
func rederive(s *State) {
	s.RecipientMode = mode.Resolve(s.Goal, s.Motion)

	inventory := inventoryOf(*s)
	s.Selection = selection.Derive(s.GiftMode, inventory, s.Window, s.Selection)

	filtered := filterRecipients(s.Recipients, s.RecipientFilter)
	s.RecipientCount = budget.RecipientCount(s.RecipientMode, budget.CountInputs{
		FixedCount:         s.FixedCount,
		ClaimAllocation:    s.ClaimAllocation,
		SelectedContacts:   len(s.Contacts),
		FilteredRecipients: filtered,
		ListLength:         len(s.Recipients),
	})

	costs := budget.Compute(s.GiftMode, s.RecipientCount, s.Selection, inventory, s.NFCEnabled)
	s.Budget = budget.Apply(models.BudgetConfig{
		Min:              s.Window.Min,
		Max:              s.Window.Max,
		AvailableCredits: s.Budget.AvailableCredits,
	}, costs)
}

func inventoryOf(s State) []models.GiftItem {
	if s.Bundle == nil {
		return nil
	}
	return s.Bundle.Gifts
}

func (s State) bundleID() string {
	if s.Bundle == nil {
		return ""
	}
	return s.Bundle.BundleID
}

// filterRecipients counts list entries matching the free-text query against
// name, company, or email. An empty query means no filter is active.
func filterRecipients(recipients []models.Contact, query string) int {
	if query == "" {
		return 0
	}
	q := strings.ToLower(query)
	count := 0
	for _, c := range recipients {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Company), q) ||
			strings.Contains(strings.ToLower(c.Email), q) {
			count++
		}
	}
	return count
}

func hasContactEmail(contacts []models.Contact, address string) bool {
	return slices.ContainsFunc(contacts, func(c models.Contact) bool {
		return strings.EqualFold(c.Email, address)
	})
}
