package catalog

import "github.com/shopspring/decimal"

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DemoProducts is a small seeded menu for running the API without a
// database (CATALOG_SOURCE=memory).
func DemoProducts() []Product {
	return []Product{
		{
			ID:            "margherita",
			Name:          "Margherita Pizza",
			PriceTakeout:  price("45.00"),
			PriceDelivery: price("49.00"),
		},
		{
			ID:            "fries",
			Name:          "French Fries",
			PriceTakeout:  price("12.50"),
			PriceDelivery: price("14.00"),
		},
		{
			ID:            "burger-menu",
			Name:          "Burger Menu",
			PriceTakeout:  price("50.00"),
			PriceDelivery: price("55.00"),
			IsCombo:       true,
			ComboGroups: []ComboGroup{
				{
					Name:           "Drink",
					Kind:           KindForced,
					ForcedQuantity: 1,
					Items: []ComboItem{
						{ID: "cola", Label: "Cola", DefaultSelected: true, DefaultQuantity: 1},
						{ID: "ayran", Label: "Ayran"},
						{ID: "lemonade", Label: "Lemonade", ExtraTakeout: price("3.00"), ExtraDelivery: price("3.50"), Badges: []string{"fresh"}},
					},
				},
				{
					Name:        "Extras",
					Kind:        KindBounded,
					MaxQuantity: 2,
					Items: []ComboItem{
						{ID: "cheese", Label: "Extra Cheese", ExtraTakeout: price("5.00"), ExtraDelivery: price("5.00")},
						{ID: "bacon", Label: "Bacon", ExtraTakeout: price("7.50"), ExtraDelivery: price("8.00")},
					},
				},
				{
					Name: "Sauces",
					Kind: KindUnconstrained,
					Items: []ComboItem{
						{ID: "ketchup", Label: "Ketchup"},
						{ID: "mayo", Label: "Mayonnaise"},
					},
				},
			},
		},
	}
}
