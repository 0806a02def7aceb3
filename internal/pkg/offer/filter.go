package offer

// FilterOption holds the active filter facets. Facets combine conjunctively:
// an offer must satisfy every facet that has at least one value selected.
// Within a facet the selected values are alternatives. Facet membership uses
// the first itinerary's first/last segment only.
type FilterOption struct {
	Stops          []string `json:"stops,omitempty"`
	Carriers       []string `json:"carriers,omitempty"`
	DepartureTimes []string `json:"departure_times,omitempty"`
}

// Stop count buckets.
const (
	StopsDirect  = "0"
	StopsOne     = "1"
	StopsTwoPlus = "2+"
)

// Departure time-of-day buckets.
const (
	TimeEarlyMorning = "00-06"
	TimeMorning      = "06-12"
	TimeAfternoon    = "12-18"
	TimeEvening      = "18-24"
)

// AllowedStopsBucket and AllowedTimeBucket validate facet values.
var (
	AllowedStopsBucket = map[string]bool{
		StopsDirect:  true,
		StopsOne:     true,
		StopsTwoPlus: true,
	}

	AllowedTimeBucket = map[string]bool{
		TimeEarlyMorning: true,
		TimeMorning:      true,
		TimeAfternoon:    true,
		TimeEvening:      true,
	}
)

// FilterOffers applies the active facets conjunctively.
func FilterOffers(offers []CachedOffer, filterOpts *FilterOption) []CachedOffer {
	if filterOpts == nil {
		return offers
	}

	results := make([]CachedOffer, 0, len(offers))

	for _, o := range offers {
		if len(filterOpts.Stops) > 0 && !matchesStops(o, filterOpts.Stops) {
			continue
		}

		if len(filterOpts.Carriers) > 0 && !matchesCarrier(o, filterOpts.Carriers) {
			continue
		}

		if len(filterOpts.DepartureTimes) > 0 && !matchesDepartureTime(o, filterOpts.DepartureTimes) {
			continue
		}

		results = append(results, o)
	}

	return results
}

func matchesStops(o CachedOffer, buckets []string) bool {
	stops := Stops(o.Offer)

	for _, bucket := range buckets {
		switch bucket {
		case StopsDirect:
			if stops == 0 {
				return true
			}
		case StopsOne:
			if stops == 1 {
				return true
			}
		case StopsTwoPlus:
			if stops >= 2 {
				return true
			}
		}
	}

	return false
}

func matchesCarrier(o CachedOffer, carriers []string) bool {
	code := CarrierCode(o.Offer)

	for _, carrier := range carriers {
		if carrier == code {
			return true
		}
	}

	return false
}

func matchesDepartureTime(o CachedOffer, buckets []string) bool {
	seg, ok := firstSegment(o.Offer)
	if !ok {
		return false
	}

	hour := minutesOfDay(seg.Departure.At) / 60

	for _, bucket := range buckets {
		switch bucket {
		case TimeEarlyMorning:
			if hour >= 0 && hour < 6 {
				return true
			}
		case TimeMorning:
			if hour >= 6 && hour < 12 {
				return true
			}
		case TimeAfternoon:
			if hour >= 12 && hour < 18 {
				return true
			}
		case TimeEvening:
			if hour >= 18 && hour < 24 {
				return true
			}
		}
	}

	return false
}
