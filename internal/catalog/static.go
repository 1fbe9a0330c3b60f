package catalog

import "giftwell/internal/campaign/models"

// DefaultBundles is the static fallback catalog served when the inventory
// source is unreachable and nothing is cached.
func DefaultBundles() []models.Bundle {
	return []models.Bundle{
		{
			BundleID:   "classic-office",
			BundleName: "Classic Office",
			Gifts: []models.GiftItem{
				{GiftID: "ceramic-mug", Name: "Ceramic Mug", Price: 18, Category: "drinkware"},
				{GiftID: "linen-notebook", Name: "Linen Notebook", Price: 24, Category: "stationery"},
				{GiftID: "desk-plant", Name: "Desk Plant", Price: 29, ShippingCost: 7, Category: "decor"},
				{GiftID: "insulated-bottle", Name: "Insulated Bottle", Price: 34, Category: "drinkware"},
				{GiftID: "wireless-charger", Name: "Wireless Charger", Price: 45, Category: "tech"},
				{GiftID: "desk-speaker", Name: "Desk Speaker", Price: 78, ShippingCost: 9, HandlingCost: 4, Category: "tech"},
			},
		},
		{
			BundleID:   "gourmet-thanks",
			BundleName: "Gourmet Thanks",
			Gifts: []models.GiftItem{
				{GiftID: "coffee-sampler", Name: "Coffee Sampler", Price: 28, Category: "food"},
				{GiftID: "chocolate-box", Name: "Chocolate Box", Price: 36, Category: "food"},
				{GiftID: "olive-oil-set", Name: "Olive Oil Set", Price: 52, ShippingCost: 11, Category: "food"},
				{GiftID: "cheese-board", Name: "Cheese Board", Price: 64, ShippingCost: 12, HandlingCost: 6, Category: "food"},
				{GiftID: "wine-duo", Name: "Wine Duo", Price: 89, ShippingCost: 14, HandlingCost: 8, Category: "food"},
			},
		},
		{
			BundleID:   "wellness-break",
			BundleName: "Wellness Break",
			Gifts: []models.GiftItem{
				{GiftID: "herbal-tea", Name: "Herbal Tea Set", Price: 22, Category: "wellness"},
				{GiftID: "soy-candle", Name: "Soy Candle", Price: 26, Category: "wellness"},
				{GiftID: "aroma-diffuser", Name: "Aroma Diffuser", Price: 48, Category: "wellness"},
				{GiftID: "yoga-mat", Name: "Yoga Mat", Price: 58, ShippingCost: 10, Category: "wellness"},
				{GiftID: "massage-gun", Name: "Massage Gun", Price: 110, ShippingCost: 12, HandlingCost: 5, Category: "wellness"},
			},
		},
	}
}
