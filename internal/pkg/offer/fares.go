package offer

import (
	"fmt"

	"github.com/tripway/flight-booking-service/internal/pkg/amadeus"
	"github.com/tripway/flight-booking-service/internal/pkg/utils"
)

// DefaultFareBrand is used when the upstream offer carries no branded fare.
const DefaultFareBrand = "STANDARD"

// FareOption is a fare bundle presented to the user. Only the Confirmed option
// reflects a price actually validated upstream; the others are synthesized
// upsell tiers for presentation.
type FareOption struct {
	Name      string   `json:"name"`
	Price     string   `json:"price"`
	Details   []string `json:"details"`
	Confirmed bool     `json:"confirmed"`
}

// upsell tiers layered on top of the confirmed base fare.
var upsellTiers = []struct {
	name    string
	delta   float64
	details []string
}{
	{
		name:  "ECONOMY STANDARD",
		delta: 50,
		details: []string{
			"Personal item & carry-on",
			"1 checked bag included",
			"Changes allowed with a fee",
			"Standard seat selection",
		},
	},
	{
		name:  "ECONOMY FLEX",
		delta: 120,
		details: []string{
			"Personal item & carry-on",
			"2 checked bags included",
			"Free changes & refundable",
			"Preferred seat selection",
		},
	},
}

// BaseFareBrand extracts the branded fare confirmed by the pricing check.
func BaseFareBrand(o amadeus.FlightOffer) string {
	if len(o.TravelerPricings) > 0 && len(o.TravelerPricings[0].FareDetailsBySegment) > 0 {
		if brand := o.TravelerPricings[0].FareDetailsBySegment[0].BrandedFare; brand != "" {
			return brand
		}
	}

	return DefaultFareBrand
}

// IncludedCheckedBags returns the checked-bag quantity of the base fare.
func IncludedCheckedBags(o amadeus.FlightOffer) int {
	if len(o.TravelerPricings) > 0 && len(o.TravelerPricings[0].FareDetailsBySegment) > 0 {
		if bags := o.TravelerPricings[0].FareDetailsBySegment[0].IncludedCheckedBags; bags != nil {
			return bags.Quantity
		}
	}

	return 0
}

// FareOptions builds the fare list for a verified offer: the confirmed base
// fare first, then the synthetic tiers with their price deltas applied.
func FareOptions(o amadeus.FlightOffer) []FareOption {
	base := utils.ParseAmount(o.Price.Total)

	options := []FareOption{
		{
			Name:  BaseFareBrand(o),
			Price: o.Price.Total,
			Details: []string{
				"Personal item only",
				fmt.Sprintf("%d checked bag(s) included", IncludedCheckedBags(o)),
				"No changes or cancellations",
				"Standard seat selection",
			},
			Confirmed: true,
		},
	}

	for _, tier := range upsellTiers {
		options = append(options, FareOption{
			Name:    tier.name,
			Price:   utils.FormatAmount(base + tier.delta),
			Details: tier.details,
		})
	}

	return options
}

// BaseFare returns the SelectedFare for the fare confirmed by verification.
func BaseFare(o amadeus.FlightOffer) SelectedFare {
	return SelectedFare{
		Name:      BaseFareBrand(o),
		Price:     o.Price.Total,
		Confirmed: true,
	}
}
