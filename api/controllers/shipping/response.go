package shipping

import (
	"github.com/shopspring/decimal"

	shippingsvc "github.com/bleeshop/bleeshop-backend/internal/shipping"
)

// QuoteOption is one rate offer with the price rounded to cents for display.
type QuoteOption struct {
	ID            string  `json:"id"`
	ServiceName   string  `json:"service_name"`
	CarrierName   string  `json:"carrier_name"`
	Price         float64 `json:"price"`
	EstimatedDays int     `json:"estimated_days"`
}

// QuoteResponse carries the resolved options for the requested destination.
type QuoteResponse struct {
	PostalCode string        `json:"postal_code"`
	Options    []QuoteOption `json:"options"`
}

func toQuoteResponse(postalCode string, quotes []shippingsvc.Quote) QuoteResponse {
	options := make([]QuoteOption, 0, len(quotes))
	for _, quote := range quotes {
		options = append(options, QuoteOption{
			ID:            quote.ID,
			ServiceName:   quote.ServiceName,
			CarrierName:   quote.CarrierName,
			Price:         decimal.NewFromFloat(quote.Price).Round(2).InexactFloat64(),
			EstimatedDays: quote.EstimatedDays,
		})
	}
	return QuoteResponse{
		PostalCode: postalCode,
		Options:    options,
	}
}
