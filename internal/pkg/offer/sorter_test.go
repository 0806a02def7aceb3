//go:build unit

package offer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tripway/flight-booking-service/internal/pkg/amadeus"
)

func sortableOffer(clientID, total, duration, departAt, arriveAt string) CachedOffer {
	return CachedOffer{
		ClientID: clientID,
		Offer: amadeus.FlightOffer{
			ID: clientID,
			Itineraries: []amadeus.Itinerary{
				{
					Duration: duration,
					Segments: []amadeus.Segment{
						{
							Departure:   amadeus.FlightPoint{IataCode: "JFK", At: departAt},
							Arrival:     amadeus.FlightPoint{IataCode: "LHR", At: arriveAt},
							CarrierCode: "BA",
							Number:      "112",
						},
					},
				},
			},
			Price: amadeus.Price{Currency: "USD", Total: total},
		},
	}
}

func TestSortOffers_Closure(t *testing.T) {
	offers := []CachedOffer{
		sortableOffer("a", "900.00", "PT4H", "2026-04-01T14:00:00", "2026-04-01T18:00:00"),
		sortableOffer("b", "450.00", "PT9H30M", "2026-04-01T06:15:00", "2026-04-01T15:45:00"),
		sortableOffer("c", "620.50", "PT7H", "2026-04-01T22:00:00", "2026-04-02T05:00:00"),
	}

	sortRequest := func(opt *SortOption, wantIDs []string) func(t *testing.T) {
		return func(t *testing.T) {
			// Copy to avoid shared state
			oCopy := make([]CachedOffer, len(offers))
			copy(oCopy, offers)

			got := SortOffers(oCopy, opt)
			gotIDs := make([]string, len(got))
			for i, o := range got {
				gotIDs[i] = o.ClientID
			}

			diff := cmp.Diff(wantIDs, gotIDs)
			if diff != "" {
				t.Fatalf("SortOffers result mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("default_price_asc", sortRequest(nil, []string{"b", "c", "a"}))
	t.Run("price_desc", sortRequest(&SortOption{Field: "price", Order: "desc"}, []string{"a", "c", "b"}))
	t.Run("duration_asc", sortRequest(&SortOption{Field: "duration", Order: "asc"}, []string{"a", "c", "b"}))
	t.Run("departure_time_asc", sortRequest(&SortOption{Field: "departure_time", Order: "asc"}, []string{"b", "a", "c"}))
	t.Run("arrival_time_desc", sortRequest(&SortOption{Field: "arrival_time", Order: "desc"}, []string{"a", "b", "c"}))
}

func TestSortOffers_Idempotent(t *testing.T) {
	offers := []CachedOffer{
		sortableOffer("a", "500.00", "PT4H", "2026-04-01T14:00:00", "2026-04-01T18:00:00"),
		sortableOffer("b", "500.00", "PT5H", "2026-04-01T06:15:00", "2026-04-01T11:15:00"),
		sortableOffer("c", "450.00", "PT7H", "2026-04-01T22:00:00", "2026-04-02T05:00:00"),
	}

	once := SortOffers(offers, &SortOption{Field: "price", Order: "asc"})

	onceIDs := make([]string, len(once))
	for i, o := range once {
		onceIDs[i] = o.ClientID
	}

	twice := SortOffers(once, &SortOption{Field: "price", Order: "asc"})

	twiceIDs := make([]string, len(twice))
	for i, o := range twice {
		twiceIDs[i] = o.ClientID
	}

	// ties keep their relative order, re-sorting cannot reshuffle
	diff := cmp.Diff(onceIDs, twiceIDs)
	if diff != "" {
		t.Fatalf("re-sorting changed the order (-want +got):\n%s", diff)
	}
}
