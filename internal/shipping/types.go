package shipping

// Item is one shippable cart line. Dimensions are centimeters, weight is
// kilograms, declared value is carried through for insurance only.
type Item struct {
	ID            string
	WidthCm       float64
	HeightCm      float64
	LengthCm      float64
	WeightKg      float64
	DeclaredValue float64
	Quantity      int
}

// DefaultItem is the placeholder package substituted when a quote is
// requested before any cart metadata exists.
func DefaultItem() Item {
	return Item{
		ID:            "default",
		WidthCm:       15,
		HeightCm:      15,
		LengthCm:      15,
		WeightKg:      0.3,
		DeclaredValue: 30.00,
		Quantity:      1,
	}
}

// Quote is one shipping offer, live or synthesized.
type Quote struct {
	ID            string  `json:"id"`
	ServiceName   string  `json:"service_name"`
	CarrierName   string  `json:"carrier_name"`
	Price         float64 `json:"price"`
	EstimatedDays int     `json:"estimated_days"`
}
