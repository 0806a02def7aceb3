//go:build unit

package offer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tripway/flight-booking-service/internal/pkg/amadeus"
)

func filterableOffer(clientID, carrier, departAt string, stops int) CachedOffer {
	segments := make([]amadeus.Segment, stops+1)
	for i := range segments {
		segments[i] = amadeus.Segment{
			Departure:   amadeus.FlightPoint{IataCode: "JFK", At: departAt},
			Arrival:     amadeus.FlightPoint{IataCode: "LHR", At: "2026-04-01T20:00:00"},
			CarrierCode: carrier,
			Number:      "112",
		}
	}

	return CachedOffer{
		ClientID: clientID,
		Offer: amadeus.FlightOffer{
			ID:          clientID,
			Itineraries: []amadeus.Itinerary{{Segments: segments}},
			Price:       amadeus.Price{Currency: "USD", Total: "450.00"},
		},
	}
}

func TestFilterOffers_Closure(t *testing.T) {
	offers := []CachedOffer{
		filterableOffer("direct-ba-morning", "BA", "2026-04-01T08:30:00", 0),
		filterableOffer("onestop-ba-evening", "BA", "2026-04-01T19:00:00", 1),
		filterableOffer("direct-af-night", "AF", "2026-04-01T02:00:00", 0),
		filterableOffer("twostop-kl-noon", "KL", "2026-04-01T12:30:00", 2),
	}

	filterRequest := func(opt *FilterOption, wantIDs []string) func(t *testing.T) {
		return func(t *testing.T) {
			got := FilterOffers(offers, opt)
			gotIDs := make([]string, len(got))
			for i, o := range got {
				gotIDs[i] = o.ClientID
			}

			diff := cmp.Diff(wantIDs, gotIDs)
			if diff != "" {
				t.Fatalf("FilterOffers result mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("no_filter", filterRequest(nil,
		[]string{"direct-ba-morning", "onestop-ba-evening", "direct-af-night", "twostop-kl-noon"}))

	t.Run("direct_only", filterRequest(&FilterOption{Stops: []string{StopsDirect}},
		[]string{"direct-ba-morning", "direct-af-night"}))

	t.Run("two_plus_stops", filterRequest(&FilterOption{Stops: []string{StopsTwoPlus}},
		[]string{"twostop-kl-noon"}))

	// values within one facet are alternatives
	t.Run("direct_or_one_stop", filterRequest(&FilterOption{Stops: []string{StopsDirect, StopsOne}},
		[]string{"direct-ba-morning", "onestop-ba-evening", "direct-af-night"}))

	t.Run("carrier_ba", filterRequest(&FilterOption{Carriers: []string{"BA"}},
		[]string{"direct-ba-morning", "onestop-ba-evening"}))

	t.Run("morning_departures", filterRequest(&FilterOption{DepartureTimes: []string{TimeMorning}},
		[]string{"direct-ba-morning"}))

	// facets combine conjunctively
	t.Run("direct_and_ba", filterRequest(&FilterOption{
		Stops:    []string{StopsDirect},
		Carriers: []string{"BA"},
	}, []string{"direct-ba-morning"}))

	t.Run("ba_and_early_morning_empty", filterRequest(&FilterOption{
		Carriers:       []string{"BA"},
		DepartureTimes: []string{TimeEarlyMorning},
	}, []string{}))
}
