package shipping

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bleeshop/bleeshop-backend/pkg/config"
	pkgerrors "github.com/bleeshop/bleeshop-backend/pkg/errors"
	"github.com/bleeshop/bleeshop-backend/pkg/logger"
	"github.com/bleeshop/bleeshop-backend/pkg/melhorenvio"
	"github.com/bleeshop/bleeshop-backend/pkg/metrics"
)

const minPostalCodeDigits = 8

// Service resolves shipping rate quotes for a destination postal code.
type Service interface {
	Calculate(ctx context.Context, postalCode string, items []Item) ([]Quote, error)
}

// RateClient is the outbound surface of the carrier aggregator client.
type RateClient interface {
	Calculate(ctx context.Context, req melhorenvio.CalculateRequest) ([]melhorenvio.Offer, error)
}

// Resolver obtains live carrier quotes and degrades to the local pricing
// model whenever the remote call cannot produce a usable offer list. The
// only error it ever returns is an invalid destination postal code.
type Resolver struct {
	client  RateClient
	origin  string
	logg    *logger.Logger
	metrics *metrics.ShippingMetrics
}

func NewResolver(client RateClient, cfg config.ShippingConfig, logg *logger.Logger, shippingMetrics *metrics.ShippingMetrics) *Resolver {
	return &Resolver{
		client:  client,
		origin:  cfg.OriginPostalCode,
		logg:    logg,
		metrics: shippingMetrics,
	}
}

var errNoValidOffers = errors.New("carrier returned no valid offers")

// Calculate returns at least one quote for any postal code holding 8 or
// more digits. A single remote attempt is made; any failure switches to the
// fallback model without retrying.
func (r *Resolver) Calculate(ctx context.Context, postalCode string, items []Item) ([]Quote, error) {
	dest := normalizePostalCode(postalCode)
	if len(dest) < minPostalCodeDigits {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidAddress, "postal code must hold at least 8 digits").
			WithDetails(map[string]any{"postal_code": postalCode})
	}

	if len(items) == 0 {
		items = []Item{DefaultItem()}
	}

	quotes, err := r.remote(ctx, dest, items)
	if err == nil {
		return quotes, nil
	}

	reason := fallbackReason(err)
	if r.logg != nil {
		logCtx := r.logg.WithFields(ctx, map[string]any{
			"postal_code": dest,
			"reason":      reason,
			"cause":       err.Error(),
		})
		r.logg.Warn(logCtx, "shipping.rate_fallback")
	}
	r.metrics.IncFallback(reason)

	return fallbackQuotes(dest), nil
}

// remote performs the single carrier call and maps valid offers in API
// order. Every unusable outcome comes back as an error for the caller to
// absorb.
func (r *Resolver) remote(ctx context.Context, dest string, items []Item) ([]Quote, error) {
	if r.client == nil {
		return nil, errors.New("rate client not configured")
	}

	products := make([]melhorenvio.Product, 0, len(items))
	for _, item := range items {
		products = append(products, melhorenvio.Product{
			ID:             item.ID,
			Width:          item.WidthCm,
			Height:         item.HeightCm,
			Length:         item.LengthCm,
			Weight:         item.WeightKg,
			InsuranceValue: item.DeclaredValue,
			Quantity:       item.Quantity,
		})
	}

	start := time.Now()
	offers, err := r.client.Calculate(ctx, melhorenvio.CalculateRequest{
		From:     melhorenvio.Endpoint{PostalCode: r.origin},
		To:       melhorenvio.Endpoint{PostalCode: dest},
		Products: products,
	})
	if err != nil {
		r.metrics.ObserveRemoteDuration("failure", time.Since(start))
		r.metrics.IncRemoteFailure("remote_error")
		return nil, err
	}
	r.metrics.ObserveRemoteDuration("success", time.Since(start))

	quotes := make([]Quote, 0, len(offers))
	for _, offer := range offers {
		if offer.Error != "" {
			continue
		}
		price, ok := offer.Price.Float64()
		if !ok {
			continue
		}
		quotes = append(quotes, Quote{
			ID:            offer.ID.String(),
			ServiceName:   offer.Name,
			CarrierName:   offer.Company.Name,
			Price:         price,
			EstimatedDays: offer.DeliveryTime,
		})
	}
	if len(quotes) == 0 {
		r.metrics.IncRemoteFailure("no_valid_offers")
		return nil, errNoValidOffers
	}
	return quotes, nil
}

func fallbackReason(err error) string {
	if errors.Is(err, errNoValidOffers) {
		return "no_valid_offers"
	}
	return "remote_error"
}

func normalizePostalCode(postalCode string) string {
	var digits strings.Builder
	for _, r := range postalCode {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return digits.String()
}
