package shipping

import (
	"reflect"
	"testing"
)

func TestZoneMultiplierBoundaries(t *testing.T) {
	cases := []struct {
		name       string
		postalCode string
		want       float64
	}{
		{"near zone lower edge", "01001000", nearZoneMultiplier},
		{"near zone upper edge", "19999999", nearZoneMultiplier},
		{"far zone lower edge", "20000000", farZoneMultiplier},
		{"far zone", "90619900", farZoneMultiplier},
		{"zero prefix defaults near", "00001000", nearZoneMultiplier},
		{"short input defaults near", "7", nearZoneMultiplier},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := zoneMultiplier(tc.postalCode); got != tc.want {
				t.Fatalf("zoneMultiplier(%q) = %v, want %v", tc.postalCode, got, tc.want)
			}
		})
	}
}

func TestFallbackQuotesNearZone(t *testing.T) {
	quotes := fallbackQuotes("19999999")
	if len(quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(quotes))
	}

	express := quotes[0]
	if express.ID != fallbackExpressID || express.CarrierName != "Correios" {
		t.Fatalf("unexpected express quote %+v", express)
	}
	if express.Price != expressBasePrice {
		t.Fatalf("expected express price %v, got %v", expressBasePrice, express.Price)
	}
	if express.EstimatedDays != 2 {
		t.Fatalf("expected express days 2, got %d", express.EstimatedDays)
	}

	economy := quotes[1]
	if economy.ID != fallbackEconomyID || economy.CarrierName != "Jadlog" {
		t.Fatalf("unexpected economy quote %+v", economy)
	}
	if economy.Price != economyBasePrice {
		t.Fatalf("expected economy price %v, got %v", economyBasePrice, economy.Price)
	}
	if economy.EstimatedDays != 4 {
		t.Fatalf("expected economy days 4, got %d", economy.EstimatedDays)
	}
}

func TestFallbackQuotesFarZone(t *testing.T) {
	quotes := fallbackQuotes("20000000")
	if len(quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(quotes))
	}

	wantExpress := expressBasePrice * zoneMultiplier("20000000")
	if quotes[0].Price != wantExpress {
		t.Fatalf("expected express price %v, got %v", wantExpress, quotes[0].Price)
	}
	if quotes[0].EstimatedDays != 5 {
		t.Fatalf("expected express days 5, got %d", quotes[0].EstimatedDays)
	}

	wantEconomy := economyBasePrice * zoneMultiplier("20000000")
	if quotes[1].Price != wantEconomy {
		t.Fatalf("expected economy price %v, got %v", wantEconomy, quotes[1].Price)
	}
	if quotes[1].EstimatedDays != 8 {
		t.Fatalf("expected economy days 8, got %d", quotes[1].EstimatedDays)
	}
}

func TestFallbackQuotesDeterministic(t *testing.T) {
	first := fallbackQuotes("88000000")
	second := fallbackQuotes("88000000")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("fallback quotes should be identical across calls: %+v vs %+v", first, second)
	}
}
