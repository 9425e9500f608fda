package shipping

import "strconv"

const (
	fallbackExpressID = "fallback_sedex"
	fallbackEconomyID = "fallback_jadlog"

	expressBasePrice = 22.90
	economyBasePrice = 16.50

	nearZoneMultiplier = 1.0
	farZoneMultiplier  = 1.4
	slowDeliveryCutoff = 1.2

	defaultZonePrefix = 10
)

// zoneMultiplier derives the coarse distance tier from the first two digits
// of a normalized postal code. Prefixes 1 through 19 are the store's own
// region; everything else pays the flat long-distance surcharge. A prefix
// that does not parse, or parses to zero, counts as the near zone.
func zoneMultiplier(postalCode string) float64 {
	prefix := defaultZonePrefix
	if len(postalCode) >= 2 {
		if parsed, err := strconv.Atoi(postalCode[:2]); err == nil && parsed != 0 {
			prefix = parsed
		}
	}
	if prefix >= 1 && prefix <= 19 {
		return nearZoneMultiplier
	}
	return farZoneMultiplier
}

// fallbackQuotes synthesizes the two-entry substitute rate list, express
// first, used whenever the carrier API yields no usable offers.
func fallbackQuotes(postalCode string) []Quote {
	multiplier := zoneMultiplier(postalCode)
	expressDays, economyDays := 2, 4
	if multiplier > slowDeliveryCutoff {
		expressDays, economyDays = 5, 8
	}
	return []Quote{
		{
			ID:            fallbackExpressID,
			ServiceName:   "SEDEX Express",
			CarrierName:   "Correios",
			Price:         expressBasePrice * multiplier,
			EstimatedDays: expressDays,
		},
		{
			ID:            fallbackEconomyID,
			ServiceName:   ".Package",
			CarrierName:   "Jadlog",
			Price:         economyBasePrice * multiplier,
			EstimatedDays: economyDays,
		},
	}
}
