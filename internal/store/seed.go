package store

import "packlist/internal/model"

// DefaultSeed returns the demo list shown on first launch.
func DefaultSeed() []model.Item {
	return []model.Item{
		{ID: NewItemID(), Quantity: 4, Description: "socks"},
		{ID: NewItemID(), Quantity: 6, Description: "passport"},
		{ID: NewItemID(), Quantity: 2, Description: "bags"},
	}
}
