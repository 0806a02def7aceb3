package offer

import (
	"sort"

	"github.com/tripway/flight-booking-service/internal/pkg/utils"
)

// SortOption names a comparator field and direction.
type SortOption struct {
	Field string `json:"field"`
	Order string `json:"order"`
}

// AllowedSortField is the comparator allowlist.
var AllowedSortField = map[string]bool{
	"price":          true,
	"duration":       true,
	"departure_time": true,
	"arrival_time":   true,
}

// SortOffers orders offers by the selected key. Sorting is stable, so
// re-applying the same sort over unchanged input yields the same order.
// A nil option keeps price ascending as the default.
func SortOffers(offers []CachedOffer, sortOption *SortOption) []CachedOffer {
	var (
		field = "price"
		order = "asc"
	)
	if sortOption != nil {
		field = sortOption.Field
		order = sortOption.Order
	}

	var key func(CachedOffer) float64

	switch field {
	case "duration":
		key = func(o CachedOffer) float64 {
			var total int64
			for _, itinerary := range o.Offer.Itineraries {
				total += utils.ParseISODuration(itinerary.Duration)
			}

			return float64(total)
		}
	case "departure_time":
		key = func(o CachedOffer) float64 {
			seg, ok := firstSegment(o.Offer)
			if !ok {
				return 0
			}

			return float64(minutesOfDay(seg.Departure.At))
		}
	case "arrival_time":
		key = func(o CachedOffer) float64 {
			seg, ok := lastSegment(o.Offer)
			if !ok {
				return 0
			}

			return float64(minutesOfDay(seg.Arrival.At))
		}
	default:
		key = func(o CachedOffer) float64 {
			return utils.ParseAmount(o.Offer.Price.Total)
		}
	}

	sort.SliceStable(offers, func(i, j int) bool {
		if order == "desc" {
			return key(offers[i]) > key(offers[j])
		}

		return key(offers[i]) < key(offers[j])
	})

	return offers
}
