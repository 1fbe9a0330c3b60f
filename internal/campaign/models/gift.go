package models

// GiftItem is a catalog entry. Items are immutable once fetched; the
// designer only filters and sorts them. Shipping or handling at or below
// zero means the catalog did not price it and per-item defaults apply.
type GiftItem struct {
	GiftID       string  `json:"gift_id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	ShippingCost float64 `json:"shipping_cost"`
	HandlingCost float64 `json:"handling_cost"`
	Category     string  `json:"category"`
	ImageURL     string  `json:"image_url,omitempty"`
}

// Bundle is a named, curated collection of gift items fetched from the
// backend catalog. One bundle is selected at a time.
type Bundle struct {
	BundleID   string     `json:"bundle_id"`
	BundleName string     `json:"bundle_name"`
	Gifts      []GiftItem `json:"gifts"`
}

// Gift returns the item with the given id, if present.
func (b Bundle) Gift(giftID string) (GiftItem, bool) {
	for _, g := range b.Gifts {
		if g.GiftID == giftID {
			return g, true
		}
	}
	return GiftItem{}, false
}

// BudgetWindow is the user-set price filter window.
type BudgetWindow struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether a price falls inside the window, inclusive.
func (w BudgetWindow) Contains(price float64) bool {
	return price >= w.Min && price <= w.Max
}

// GiftSelection is the derived gift state for the active gift mode.
//
// Invariants:
//   - one-gift: SelectedGiftID is a member of the window-filtered inventory
//     whenever that set is non-empty; DisplayedOptions holds at most 11 ids
//     in most-recently-used order.
//   - recipient-choice: 3 <= len(RecipientGiftIDs) <= 11 whenever the
//     filtered inventory allows it, and every id prices inside the window.
//   - smart-match: both lists are empty.
type GiftSelection struct {
	Mode             GiftMode `json:"mode"`
	SelectedGiftID   string   `json:"selected_gift_id,omitempty"`
	DisplayedOptions []string `json:"displayed_options,omitempty"`
	RecipientGiftIDs []string `json:"recipient_gift_ids,omitempty"`
}

// BudgetConfig is the derived budget breakdown. The cost fields are
// recomputed in full on every input change so they are never stale.
type BudgetConfig struct {
	Min              float64 `json:"min"`
	Max              float64 `json:"max"`
	GiftCost         float64 `json:"gift_cost"`
	ShippingCost     float64 `json:"shipping_cost"`
	HandlingCost     float64 `json:"handling_cost"`
	NFCCardCost      float64 `json:"nfc_card_cost"`
	AvailableCredits int     `json:"available_credits"`
	RequiredCredits  int     `json:"required_credits"`
}

// Total sums the derived cost fields.
func (b BudgetConfig) Total() float64 {
	return b.GiftCost + b.ShippingCost + b.HandlingCost + b.NFCCardCost
}
