package shipping

import (
	shippingsvc "github.com/bleeshop/bleeshop-backend/internal/shipping"
)

// QuoteRequest is the storefront payload for a shipping quote. Items may be
// empty; the resolver substitutes a default package.
type QuoteRequest struct {
	PostalCode string      `json:"postal_code" validate:"required"`
	Items      []QuoteItem `json:"items" validate:"dive"`
}

// QuoteItem mirrors one cart line. Magnitude validation happens here; the
// resolver trusts these numbers.
type QuoteItem struct {
	ID            string  `json:"id"`
	WidthCm       float64 `json:"width_cm" validate:"gt=0"`
	HeightCm      float64 `json:"height_cm" validate:"gt=0"`
	LengthCm      float64 `json:"length_cm" validate:"gt=0"`
	WeightKg      float64 `json:"weight_kg" validate:"gt=0"`
	DeclaredValue float64 `json:"declared_value" validate:"gte=0"`
	Quantity      int     `json:"quantity" validate:"gt=0"`
}

func (q QuoteRequest) toItems() []shippingsvc.Item {
	items := make([]shippingsvc.Item, 0, len(q.Items))
	for _, item := range q.Items {
		items = append(items, shippingsvc.Item{
			ID:            item.ID,
			WidthCm:       item.WidthCm,
			HeightCm:      item.HeightCm,
			LengthCm:      item.LengthCm,
			WeightKg:      item.WeightKg,
			DeclaredValue: item.DeclaredValue,
			Quantity:      item.Quantity,
		})
	}
	return items
}
