package shipping

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	shippingsvc "github.com/bleeshop/bleeshop-backend/internal/shipping"
	pkgerrors "github.com/bleeshop/bleeshop-backend/pkg/errors"
)

type stubQuoteService struct {
	quotes    []shippingsvc.Quote
	err       error
	lastCode  string
	lastItems []shippingsvc.Item
}

func (s *stubQuoteService) Calculate(ctx context.Context, postalCode string, items []shippingsvc.Item) ([]shippingsvc.Quote, error) {
	s.lastCode = postalCode
	s.lastItems = items
	return s.quotes, s.err
}

func TestQuoteSuccess(t *testing.T) {
	service := &stubQuoteService{quotes: []shippingsvc.Quote{
		{ID: "1", ServiceName: "SEDEX", CarrierName: "Correios", Price: 41.90, EstimatedDays: 3},
	}}
	handler := Quote(service, nil)

	body := `{
		"postal_code": "01001-000",
		"items": [{
			"id": "sku-1",
			"width_cm": 20,
			"height_cm": 10,
			"length_cm": 30,
			"weight_kg": 1.2,
			"declared_value": 99.90,
			"quantity": 2
		}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shipping/quote", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if service.lastCode != "01001-000" {
		t.Fatalf("unexpected postal code %q", service.lastCode)
	}
	if len(service.lastItems) != 1 || service.lastItems[0].Quantity != 2 {
		t.Fatalf("unexpected items %+v", service.lastItems)
	}

	var envelope struct {
		Data QuoteResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.PostalCode != "01001-000" {
		t.Fatalf("unexpected postal code %q", envelope.Data.PostalCode)
	}
	if len(envelope.Data.Options) != 1 || envelope.Data.Options[0].Price != 41.90 {
		t.Fatalf("unexpected options %+v", envelope.Data.Options)
	}
}

func TestQuoteRoundsDisplayPriceToCents(t *testing.T) {
	service := &stubQuoteService{quotes: []shippingsvc.Quote{
		{ID: "fallback_sedex", ServiceName: "SEDEX Express", CarrierName: "Correios", Price: 22.90 * 1.4, EstimatedDays: 5},
	}}
	handler := Quote(service, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/shipping/quote", strings.NewReader(`{"postal_code":"20000000"}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data QuoteResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Options[0].Price != 32.06 {
		t.Fatalf("expected price rounded to 32.06, got %v", envelope.Data.Options[0].Price)
	}
}

func TestQuoteEmptyItemsAllowed(t *testing.T) {
	service := &stubQuoteService{quotes: []shippingsvc.Quote{
		{ID: "fallback_sedex", ServiceName: "SEDEX Express", CarrierName: "Correios", Price: 22.90, EstimatedDays: 2},
	}}
	handler := Quote(service, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/shipping/quote", strings.NewReader(`{"postal_code":"01001000","items":[]}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if len(service.lastItems) != 0 {
		t.Fatalf("expected empty item list forwarded, got %+v", service.lastItems)
	}
}

func TestQuoteMissingPostalCode(t *testing.T) {
	handler := Quote(&stubQuoteService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/shipping/quote", strings.NewReader(`{"items":[]}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestQuoteRejectsNonPositiveDimensions(t *testing.T) {
	handler := Quote(&stubQuoteService{}, nil)

	body := `{
		"postal_code": "01001000",
		"items": [{
			"id": "sku-1",
			"width_cm": 0,
			"height_cm": 10,
			"length_cm": 30,
			"weight_kg": 1.2,
			"declared_value": 10,
			"quantity": 1
		}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shipping/quote", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestQuoteInvalidAddressFromService(t *testing.T) {
	service := &stubQuoteService{err: pkgerrors.New(pkgerrors.CodeInvalidAddress, "postal code must hold at least 8 digits")}
	handler := Quote(service, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/shipping/quote", strings.NewReader(`{"postal_code":"123"}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", resp.Code)
	}

	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Code != string(pkgerrors.CodeInvalidAddress) {
		t.Fatalf("unexpected error code %q", envelope.Error.Code)
	}
}

func TestQuoteServiceUnavailable(t *testing.T) {
	handler := Quote(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/shipping/quote", strings.NewReader(`{"postal_code":"01001000"}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
}
