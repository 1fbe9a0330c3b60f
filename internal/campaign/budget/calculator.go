package budget

import (
	"math"

	"giftwell/internal/campaign/models"
	"giftwell/internal/campaign/selection"
)

const (
	// Per-item defaults applied when the catalog did not price shipping or
	// handling for a gift.
	DefaultShippingCost = 10
	DefaultHandlingCost = 5

	// Smart-match costing uses a fixed per-recipient estimate instead of an
	// inventory lookup.
	SmartMatchGiftEstimate     = 50
	SmartMatchShippingEstimate = 10
	SmartMatchHandlingEstimate = 5

	// NFCCardPrice is charged per recipient when the add-on card is enabled.
	NFCCardPrice = 9

	// MaxManualRecipients clamps user-entered headcounts and claim-link
	// allocations.
	MaxManualRecipients = 1000
)

// CountInputs carries everything recipient-count resolution can draw from.
type CountInputs struct {
	FixedCount         int
	ClaimAllocation    int
	SelectedContacts   int
	FilteredRecipients int
	ListLength         int
}

// RecipientCount resolves the effective headcount for the active mode.
// Manual counts clamp to [1, 1000]; list-based falls back to the supplied
// list length and finally to zero.
func RecipientCount(mode models.RecipientMode, in CountInputs) int {
	switch mode {
	case models.ModeFixedCount:
		return clampManual(in.FixedCount)
	case models.ModeExpressSend:
		return max(in.SelectedContacts, 0)
	case models.ModeClaimLink:
		return clampManual(in.ClaimAllocation)
	default:
		if in.FilteredRecipients > 0 {
			return in.FilteredRecipients
		}
		return max(in.ListLength, 0)
	}
}

// Costs is the derived cost breakdown for one recompute.
type Costs struct {
	GiftCost        float64
	ShippingCost    float64
	HandlingCost    float64
	NFCCardCost     float64
	RequiredCredits int
}

// Compute derives the full cost breakdown for the current inputs. It is a
// pure function: identical inputs always produce identical output. Zero
// recipients short-circuits to an all-zero result without any selection
// lookups, and an empty selection costs nothing rather than erroring.
func Compute(giftMode models.GiftMode, recipientCount int, sel models.GiftSelection, inventory []models.GiftItem, nfcEnabled bool) Costs {
	if recipientCount <= 0 {
		return Costs{}
	}

	var c Costs
	count := float64(recipientCount)

	switch giftMode {
	case models.GiftModeOneGift:
		if item, ok := lookupGift(inventory, sel.SelectedGiftID); ok {
			c.GiftCost = round2(count * item.Price)
			c.ShippingCost = round2(count * shippingFor(item))
			c.HandlingCost = round2(count * handlingFor(item))
		}
	case models.GiftModeRecipientChoice:
		// Worst-case costing: every recipient is budgeted at the single
		// most expensive selected gift, even though each picks only one.
		if item, ok := selection.HighestPriced(inventory, sel.RecipientGiftIDs); ok {
			c.GiftCost = round2(count * item.Price)
			c.ShippingCost = round2(count * shippingFor(item))
			c.HandlingCost = round2(count * handlingFor(item))
		}
		c.RequiredCredits = recipientCount
	case models.GiftModeSmartMatch:
		c.GiftCost = round2(count * SmartMatchGiftEstimate)
		c.ShippingCost = round2(count * SmartMatchShippingEstimate)
		c.HandlingCost = round2(count * SmartMatchHandlingEstimate)
		c.RequiredCredits = recipientCount
	}

	if nfcEnabled {
		c.NFCCardCost = round2(count * NFCCardPrice)
	}
	return c
}

// Apply merges a cost breakdown into a budget config, leaving the
// pass-through fields (window bounds, available credits) untouched.
func Apply(cfg models.BudgetConfig, c Costs) models.BudgetConfig {
	cfg.GiftCost = c.GiftCost
	cfg.ShippingCost = c.ShippingCost
	cfg.HandlingCost = c.HandlingCost
	cfg.NFCCardCost = c.NFCCardCost
	cfg.RequiredCredits = c.RequiredCredits
	return cfg
}

func shippingFor(item models.GiftItem) float64 {
	if item.ShippingCost > 0 {
		return item.ShippingCost
	}
	return DefaultShippingCost
}

func handlingFor(item models.GiftItem) float64 {
	if item.HandlingCost > 0 {
		return item.HandlingCost
	}
	return DefaultHandlingCost
}

func lookupGift(inventory []models.GiftItem, giftID string) (models.GiftItem, bool) {
	if giftID == "" {
		return models.GiftItem{}, false
	}
	for _, item := range inventory {
		if item.GiftID == giftID {
			return item, true
		}
	}
	return models.GiftItem{}, false
}

func clampManual(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxManualRecipients {
		return MaxManualRecipients
	}
	return n
}

// round2 rounds to cent precision; all amounts are implied USD.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
