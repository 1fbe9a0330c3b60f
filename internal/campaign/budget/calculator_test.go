package budget

import (
	"testing"

	"github.com/stretchr/testify/require"

	"giftwell/internal/campaign/models"
)

func TestRecipientCount(t *testing.T) {
	cases := []struct {
		name string
		mode models.RecipientMode
		in   CountInputs
		want int
	}{
		{"fixed count", models.ModeFixedCount, CountInputs{FixedCount: 40}, 40},
		{"fixed count clamps low", models.ModeFixedCount, CountInputs{FixedCount: 0}, 1},
		{"fixed count clamps high", models.ModeFixedCount, CountInputs{FixedCount: 5000}, MaxManualRecipients},
		{"express send uses contacts", models.ModeExpressSend, CountInputs{SelectedContacts: 7}, 7},
		{"express send empty", models.ModeExpressSend, CountInputs{}, 0},
		{"claim link allocation", models.ModeClaimLink, CountInputs{ClaimAllocation: 250}, 250},
		{"claim link clamps", models.ModeClaimLink, CountInputs{ClaimAllocation: 9999}, MaxManualRecipients},
		{"list based filtered", models.ModeListBased, CountInputs{FilteredRecipients: 12, ListLength: 80}, 12},
		{"list based falls back to list", models.ModeListBased, CountInputs{ListLength: 80}, 80},
		{"list based empty", models.ModeListBased, CountInputs{}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, RecipientCount(tc.mode, tc.in))
		})
	}
}

func TestComputeOneGift(t *testing.T) {
	inventory := []models.GiftItem{{GiftID: "g1", Price: 50, ShippingCost: 8, HandlingCost: 3}}
	sel := models.GiftSelection{Mode: models.GiftModeOneGift, SelectedGiftID: "g1"}

	c := Compute(models.GiftModeOneGift, 10, sel, inventory, false)
	require.Equal(t, 500.0, c.GiftCost)
	require.Equal(t, 80.0, c.ShippingCost)
	require.Equal(t, 30.0, c.HandlingCost)
	require.Equal(t, 0, c.RequiredCredits, "one-gift needs no prepaid credits")
}

func TestComputeOneGiftDefaults(t *testing.T) {
	inventory := []models.GiftItem{{GiftID: "g1", Price: 20}}
	sel := models.GiftSelection{Mode: models.GiftModeOneGift, SelectedGiftID: "g1"}

	c := Compute(models.GiftModeOneGift, 3, sel, inventory, false)
	require.Equal(t, 60.0, c.GiftCost)
	require.Equal(t, 30.0, c.ShippingCost, "unset shipping defaults to 10")
	require.Equal(t, 15.0, c.HandlingCost, "unset handling defaults to 5")
}

func TestComputeRecipientChoiceWorstCase(t *testing.T) {
	inventory := []models.GiftItem{
		{GiftID: "a", Price: 20},
		{GiftID: "b", Price: 45},
		{GiftID: "c", Price: 30},
	}
	sel := models.GiftSelection{Mode: models.GiftModeRecipientChoice, RecipientGiftIDs: []string{"a", "b", "c"}}

	c := Compute(models.GiftModeRecipientChoice, 5, sel, inventory, false)
	require.Equal(t, 225.0, c.GiftCost, "every recipient costed at the $45 item")
	require.Equal(t, 5, c.RequiredCredits)
}

func TestComputeSmartMatch(t *testing.T) {
	c := Compute(models.GiftModeSmartMatch, 4, models.GiftSelection{Mode: models.GiftModeSmartMatch}, nil, false)
	require.Equal(t, 200.0, c.GiftCost)
	require.Equal(t, 40.0, c.ShippingCost)
	require.Equal(t, 20.0, c.HandlingCost)
	require.Equal(t, 4, c.RequiredCredits)
}

func TestComputeNFCIndependentOfGiftMode(t *testing.T) {
	for _, mode := range []models.GiftMode{models.GiftModeOneGift, models.GiftModeRecipientChoice, models.GiftModeSmartMatch} {
		c := Compute(mode, 7, models.GiftSelection{Mode: mode}, nil, true)
		require.Equal(t, 63.0, c.NFCCardCost, "mode %s", mode)
	}
}

func TestComputeZeroRecipients(t *testing.T) {
	inventory := []models.GiftItem{{GiftID: "g1", Price: 50}}
	sel := models.GiftSelection{Mode: models.GiftModeOneGift, SelectedGiftID: "g1"}

	c := Compute(models.GiftModeOneGift, 0, sel, inventory, true)
	require.Zero(t, c.GiftCost)
	require.Zero(t, c.ShippingCost)
	require.Zero(t, c.HandlingCost)
	require.Zero(t, c.NFCCardCost)
	require.Zero(t, c.RequiredCredits)
}

func TestComputeEmptySelection(t *testing.T) {
	// Budget window excluded all inventory: gifts cost nothing, no error.
	c := Compute(models.GiftModeOneGift, 10, models.GiftSelection{Mode: models.GiftModeOneGift}, nil, false)
	require.Zero(t, c.GiftCost)

	c = Compute(models.GiftModeRecipientChoice, 10, models.GiftSelection{Mode: models.GiftModeRecipientChoice}, nil, false)
	require.Zero(t, c.GiftCost)
	require.Equal(t, 10, c.RequiredCredits)
}

func TestComputeDeterministic(t *testing.T) {
	inventory := []models.GiftItem{
		{GiftID: "a", Price: 19.99, ShippingCost: 4.49},
		{GiftID: "b", Price: 33.33},
	}
	sel := models.GiftSelection{Mode: models.GiftModeRecipientChoice, RecipientGiftIDs: []string{"a", "b"}}

	first := Compute(models.GiftModeRecipientChoice, 9, sel, inventory, true)
	for n := 0; n < 10; n++ {
		require.Equal(t, first, Compute(models.GiftModeRecipientChoice, 9, sel, inventory, true))
	}
}

func TestComputeRoundsToCents(t *testing.T) {
	inventory := []models.GiftItem{{GiftID: "a", Price: 33.333, ShippingCost: 1.111, HandlingCost: 2.222}}
	sel := models.GiftSelection{Mode: models.GiftModeOneGift, SelectedGiftID: "a"}

	c := Compute(models.GiftModeOneGift, 3, sel, inventory, false)
	require.Equal(t, 100.0, c.GiftCost)
	require.Equal(t, 3.33, c.ShippingCost)
	require.Equal(t, 6.67, c.HandlingCost)
}

func TestApplyPreservesPassThrough(t *testing.T) {
	cfg := models.BudgetConfig{Min: 25, Max: 150, AvailableCredits: 40}
	got := Apply(cfg, Costs{GiftCost: 100, RequiredCredits: 10})
	require.Equal(t, 25.0, got.Min)
	require.Equal(t, 150.0, got.Max)
	require.Equal(t, 40, got.AvailableCredits)
	require.Equal(t, 100.0, got.GiftCost)
	require.Equal(t, 10, got.RequiredCredits)
}
