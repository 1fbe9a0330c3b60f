package designer

import "giftwell/internal/campaign/models"

// Event is one user input to the campaign designer. Events carry only the
// changed field; everything derived (mode, selection, budget) is recomputed
// in full after each apply.
type Event interface {
	// Kind labels the event for logs and metrics.
	Kind() string
}

// SetName renames the campaign draft.
type SetName struct {
	Name string
}

// SetGoalMotion picks the campaign-purpose taxonomy pair.
type SetGoalMotion struct {
	Goal   models.Goal
	Motion models.Motion
}

// SetGiftMode switches how gifts are chosen for recipients.
type SetGiftMode struct {
	Mode models.GiftMode
}

// SetBudgetWindow moves the price filter window.
type SetBudgetWindow struct {
	Min float64
	Max float64
}

// SetAvailableCredits syncs the prepaid wallet balance into the summary.
type SetAvailableCredits struct {
	Credits int
}

// SelectBundle swaps the active gift bundle, replacing the selection.
type SelectBundle struct {
	Bundle models.Bundle
}

// PickGift is the manual one-gift choice.
type PickGift struct {
	GiftID string
}

// ToggleRecipientGift adds or removes a recipient-choice gift.
type ToggleRecipientGift struct {
	GiftID string
}

// AddContact appends a search-result contact to the recipient set.
type AddContact struct {
	Contact models.Contact
}

// QuickAddContact creates a contact locally from manual entry; no backend
// round-trip happens until submission.
type QuickAddContact struct {
	Name    string
	Email   string
	Company string
}

// RemoveContact drops a contact from the recipient set.
type RemoveContact struct {
	ContactID string
}

// SetFixedCount sets the manual headcount for fixed-count mode.
type SetFixedCount struct {
	Count int
}

// SetClaimAllocation sets the claim-link redemption allocation.
type SetClaimAllocation struct {
	Count int
}

// SetRecipientList installs an externally fetched contact list.
type SetRecipientList struct {
	Contacts []models.Contact
}

// FilterRecipients narrows the installed list by a free-text query.
type FilterRecipients struct {
	Query string
}

// SetNFC toggles the per-recipient NFC card add-on.
type SetNFC struct {
	Enabled bool
}

func (SetName) Kind() string             { return "set_name" }
func (SetGoalMotion) Kind() string       { return "set_goal_motion" }
func (SetGiftMode) Kind() string         { return "set_gift_mode" }
func (SetBudgetWindow) Kind() string     { return "set_budget_window" }
func (SetAvailableCredits) Kind() string { return "set_available_credits" }
func (SelectBundle) Kind() string        { return "select_bundle" }
func (PickGift) Kind() string            { return "pick_gift" }
func (ToggleRecipientGift) Kind() string { return "toggle_recipient_gift" }
func (AddContact) Kind() string          { return "add_contact" }
func (QuickAddContact) Kind() string     { return "quick_add_contact" }
func (RemoveContact) Kind() string       { return "remove_contact" }
func (SetFixedCount) Kind() string       { return "set_fixed_count" }
func (SetClaimAllocation) Kind() string  { return "set_claim_allocation" }
func (SetRecipientList) Kind() string    { return "set_recipient_list" }
func (FilterRecipients) Kind() string    { return "filter_recipients" }
func (SetNFC) Kind() string              { return "set_nfc" }
