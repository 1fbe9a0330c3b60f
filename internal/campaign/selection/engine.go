package selection

import (
	"cmp"
	"slices"

	"giftwell/internal/campaign/models"
	dErrors "giftwell/pkg/domain-errors"
)

const (
	// MinRecipientChoice and MaxRecipientChoice bound the recipient-choice
	// selection set whenever the filtered inventory allows it.
	MinRecipientChoice = 3
	MaxRecipientChoice = 11

	// DefaultDisplayCount is how many options are shown when no prior
	// selection exists in one-gift mode.
	DefaultDisplayCount = 4

	// MaxDisplayedOptions caps the one-gift MRU queue.
	MaxDisplayedOptions = 11
)

// FilterByWindow returns the inventory items priced inside the window,
// sorted by price descending. Ties break on gift id so derivation stays
// deterministic across recomputes.
func FilterByWindow(inventory []models.GiftItem, window models.BudgetWindow) []models.GiftItem {
	var eligible []models.GiftItem
	for _, item := range inventory {
		if window.Contains(item.Price) {
			eligible = append(eligible, item)
		}
	}
	slices.SortFunc(eligible, func(a, b models.GiftItem) int {
		if c := cmp.Compare(b.Price, a.Price); c != 0 {
			return c
		}
		return cmp.Compare(a.GiftID, b.GiftID)
	})
	return eligible
}

// Derive recomputes the gift selection after any input change other than a
// manual pick or toggle. It preserves whatever remains valid from the
// current selection and self-heals the rest. An empty filtered set is
// legitimate: nothing is auto-selected and the budget treats gifts as free.
func Derive(giftMode models.GiftMode, inventory []models.GiftItem, window models.BudgetWindow, current models.GiftSelection) models.GiftSelection {
	eligible := FilterByWindow(inventory, window)
	switch giftMode {
	case models.GiftModeOneGift:
		return deriveOneGift(eligible, current)
	case models.GiftModeRecipientChoice:
		return deriveRecipientChoice(eligible, current.RecipientGiftIDs)
	default:
		// Smart match carries no explicit selection.
		return models.GiftSelection{Mode: models.GiftModeSmartMatch}
	}
}

// ReplaceForBundle rebuilds the selection from scratch when the selected
// bundle changes: prior picks belong to the old inventory.
func ReplaceForBundle(giftMode models.GiftMode, inventory []models.GiftItem, window models.BudgetWindow) models.GiftSelection {
	eligible := FilterByWindow(inventory, window)
	switch giftMode {
	case models.GiftModeOneGift:
		return deriveOneGift(eligible, models.GiftSelection{Mode: models.GiftModeOneGift})
	case models.GiftModeRecipientChoice:
		sel := models.GiftSelection{Mode: models.GiftModeRecipientChoice}
		for i, item := range eligible {
			if i == MaxRecipientChoice {
				break
			}
			sel.RecipientGiftIDs = append(sel.RecipientGiftIDs, item.GiftID)
		}
		return sel
	default:
		return models.GiftSelection{Mode: models.GiftModeSmartMatch}
	}
}

// Pick applies a manual one-gift choice. The picked gift must sit inside
// the current budget window; re-picking a displayed option moves it to the
// front of the queue.
func Pick(current models.GiftSelection, inventory []models.GiftItem, window models.BudgetWindow, giftID string) (models.GiftSelection, error) {
	if current.Mode != models.GiftModeOneGift {
		return current, dErrors.New(dErrors.CodeValidation, "picking a single gift requires one-gift mode")
	}
	eligible := FilterByWindow(inventory, window)
	if !containsGift(eligible, giftID) {
		return current, dErrors.New(dErrors.CodeValidation, "gift is not available within the budget window")
	}

	queue := NewMRUQueue(MaxDisplayedOptions, current.DisplayedOptions...)
	queue.Touch(giftID)

	next := current
	next.SelectedGiftID = giftID
	next.DisplayedOptions = queue.Items()
	return next, nil
}

// Toggle adds or removes a recipient-choice gift. Moves that would break
// the 3..11 bound are rejected and leave the selection unchanged.
func Toggle(current models.GiftSelection, inventory []models.GiftItem, window models.BudgetWindow, giftID string) (models.GiftSelection, error) {
	if current.Mode != models.GiftModeRecipientChoice {
		return current, dErrors.New(dErrors.CodeValidation, "toggling gift choices requires recipient-choice mode")
	}

	next := current
	if i := slices.Index(current.RecipientGiftIDs, giftID); i >= 0 {
		if len(current.RecipientGiftIDs) <= MinRecipientChoice {
			return current, dErrors.Newf(dErrors.CodeValidation, "keep at least %d gift choices selected", MinRecipientChoice)
		}
		next.RecipientGiftIDs = slices.Delete(slices.Clone(current.RecipientGiftIDs), i, i+1)
		return next, nil
	}

	if len(current.RecipientGiftIDs) >= MaxRecipientChoice {
		return current, dErrors.Newf(dErrors.CodeValidation, "select at most %d gift choices", MaxRecipientChoice)
	}
	eligible := FilterByWindow(inventory, window)
	if !containsGift(eligible, giftID) {
		return current, dErrors.New(dErrors.CodeValidation, "gift is not available within the budget window")
	}
	next.RecipientGiftIDs = append(slices.Clone(current.RecipientGiftIDs), giftID)
	return next, nil
}

// HighestPriced returns the most expensive item among the selected ids.
func HighestPriced(inventory []models.GiftItem, ids []string) (models.GiftItem, bool) {
	var best models.GiftItem
	found := false
	for _, item := range inventory {
		if !slices.Contains(ids, item.GiftID) {
			continue
		}
		if !found || item.Price > best.Price {
			best = item
			found = true
		}
	}
	return best, found
}

func deriveOneGift(eligible []models.GiftItem, current models.GiftSelection) models.GiftSelection {
	sel := models.GiftSelection{Mode: models.GiftModeOneGift}
	if len(eligible) == 0 {
		return sel
	}

	// Drop displayed options that fell outside the window, keeping order.
	for _, id := range current.DisplayedOptions {
		if containsGift(eligible, id) {
			sel.DisplayedOptions = append(sel.DisplayedOptions, id)
		}
	}
	if len(sel.DisplayedOptions) == 0 {
		for i, item := range eligible {
			if i == DefaultDisplayCount {
				break
			}
			sel.DisplayedOptions = append(sel.DisplayedOptions, item.GiftID)
		}
	}

	// The previous pick survives only if it still prices inside the window;
	// otherwise the highest-priced filtered item becomes the new default.
	if current.SelectedGiftID != "" && containsGift(eligible, current.SelectedGiftID) {
		sel.SelectedGiftID = current.SelectedGiftID
	} else {
		sel.SelectedGiftID = eligible[0].GiftID
	}
	if !slices.Contains(sel.DisplayedOptions, sel.SelectedGiftID) {
		queue := NewMRUQueue(MaxDisplayedOptions, sel.DisplayedOptions...)
		queue.Touch(sel.SelectedGiftID)
		sel.DisplayedOptions = queue.Items()
	}
	return sel
}

func deriveRecipientChoice(eligible []models.GiftItem, currentIDs []string) models.GiftSelection {
	sel := models.GiftSelection{Mode: models.GiftModeRecipientChoice}

	// Preserve valid prior picks, then top up from the highest-priced
	// remaining items until the minimum is met.
	for _, id := range currentIDs {
		if containsGift(eligible, id) {
			sel.RecipientGiftIDs = append(sel.RecipientGiftIDs, id)
		}
	}
	for _, item := range eligible {
		if len(sel.RecipientGiftIDs) >= MinRecipientChoice {
			break
		}
		if !slices.Contains(sel.RecipientGiftIDs, item.GiftID) {
			sel.RecipientGiftIDs = append(sel.RecipientGiftIDs, item.GiftID)
		}
	}
	if len(sel.RecipientGiftIDs) > MaxRecipientChoice {
		sel.RecipientGiftIDs = sel.RecipientGiftIDs[:MaxRecipientChoice]
	}
	return sel
}

func containsGift(items []models.GiftItem, giftID string) bool {
	return slices.ContainsFunc(items, func(g models.GiftItem) bool {
		return g.GiftID == giftID
	})
}
