//go:build unit

package dto

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tripway/flight-booking-service/internal/pkg/offer"
)

func TestSearchCriteria_Validate(t *testing.T) {
	// Initialize validator for tests
	_ = InitValidator()

	validateRequest := func(req SearchCriteria, wantErr bool, wantMsg string) func(t *testing.T) {
		return func(t *testing.T) {
			err := req.Validate()
			if (err != nil) != wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, wantErr)
			}

			if wantErr && wantMsg != "" {
				if diff := cmp.Diff(wantMsg, err.Error()); diff != "" {
					t.Fatalf("Validate() error message mismatch (-want +got):\n%s", diff)
				}
			}
		}
	}

	validCriteria := SearchCriteria{
		TripType:      "one_way",
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-04-01",
		Adults:        1,
		CabinClass:    "economy",
	}

	t.Run("valid_criteria", validateRequest(validCriteria, false, ""))

	t.Run("valid_round_trip", validateRequest(SearchCriteria{
		TripType:      "round_trip",
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-04-01",
		ReturnDate:    "2026-04-10",
		Adults:        2,
		Children:      1,
		CabinClass:    "business",
	}, false, ""))

	t.Run("missing_origin", validateRequest(SearchCriteria{
		TripType:      "one_way",
		Destination:   "LHR",
		DepartureDate: "2026-04-01",
		Adults:        1,
		CabinClass:    "economy",
	}, true, "origin is a required field"))

	t.Run("lowercase_origin", validateRequest(SearchCriteria{
		TripType:      "one_way",
		Origin:        "jfk",
		Destination:   "LHR",
		DepartureDate: "2026-04-01",
		Adults:        1,
		CabinClass:    "economy",
	}, true, ""))

	t.Run("missing_adults", validateRequest(SearchCriteria{
		TripType:      "one_way",
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-04-01",
		CabinClass:    "economy",
	}, true, "adults is a required field"))

	t.Run("infants_exceed_adults", validateRequest(SearchCriteria{
		TripType:      "one_way",
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-04-01",
		Adults:        1,
		Infants:       2,
		CabinClass:    "economy",
	}, true, "infants must not exceed adults"))

	t.Run("round_trip_without_return_date", validateRequest(SearchCriteria{
		TripType:      "round_trip",
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-04-01",
		Adults:        1,
		CabinClass:    "economy",
	}, true, "return_date is required for a round trip"))

	t.Run("invalid_cabin_class", validateRequest(SearchCriteria{
		TripType:      "one_way",
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-04-01",
		Adults:        1,
		CabinClass:    "steerage",
	}, true, "cabin_class must be one of [economy premium_economy business first]"))

	t.Run("invalid_sort_field", validateRequest(SearchCriteria{
		TripType:      "one_way",
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-04-01",
		Adults:        1,
		CabinClass:    "economy",
		SortOption:    &offer.SortOption{Field: "invalid", Order: "asc"},
	}, true, "Invalid sort field invalid"))

	t.Run("invalid_stops_bucket", validateRequest(SearchCriteria{
		TripType:      "one_way",
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-04-01",
		Adults:        1,
		CabinClass:    "economy",
		FilterOption:  &offer.FilterOption{Stops: []string{"3"}},
	}, true, "Invalid stops bucket 3"))

	t.Run("invalid_departure_time_bucket", validateRequest(SearchCriteria{
		TripType:      "one_way",
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-04-01",
		Adults:        1,
		CabinClass:    "economy",
		FilterOption:  &offer.FilterOption{DepartureTimes: []string{"24-30"}},
	}, true, "Invalid departure time bucket 24-30"))
}

func TestAssignSeatRequest_Validate(t *testing.T) {
	_ = InitValidator()

	validateRequest := func(req AssignSeatRequest, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			err := ValidateSingleError(&req)
			if (err != nil) != wantErr {
				t.Fatalf("ValidateSingleError() error = %v, wantErr %v", err, wantErr)
			}
		}
	}

	t.Run("valid_seat", validateRequest(AssignSeatRequest{TravelerID: "1", Seat: "12A"}, false))
	t.Run("valid_single_row_digit", validateRequest(AssignSeatRequest{TravelerID: "1", Seat: "4C"}, false))
	t.Run("missing_traveler", validateRequest(AssignSeatRequest{Seat: "12A"}, true))
	t.Run("lowercase_letter", validateRequest(AssignSeatRequest{TravelerID: "1", Seat: "12a"}, true))
	t.Run("row_too_long", validateRequest(AssignSeatRequest{TravelerID: "1", Seat: "123A"}, true))
	t.Run("letter_out_of_range", validateRequest(AssignSeatRequest{TravelerID: "1", Seat: "12Z"}, true))
}

func TestManageBookingRequest_Validate(t *testing.T) {
	_ = InitValidator()

	validateRequest := func(req ManageBookingRequest, wantErr bool, wantMsg string) func(t *testing.T) {
		return func(t *testing.T) {
			err := ValidateSingleError(&req)
			if (err != nil) != wantErr {
				t.Fatalf("ValidateSingleError() error = %v, wantErr %v", err, wantErr)
			}

			if wantErr && wantMsg != "" {
				if diff := cmp.Diff(wantMsg, err.Error()); diff != "" {
					t.Fatalf("ValidateSingleError() error message mismatch (-want +got):\n%s", diff)
				}
			}
		}
	}

	t.Run("cancel", validateRequest(ManageBookingRequest{Action: "cancel"}, false, ""))
	t.Run("refund_with_reason", validateRequest(ManageBookingRequest{Action: "refund", Reason: "plans changed"}, false, ""))
	t.Run("missing_action", validateRequest(ManageBookingRequest{}, true, "action is a required field"))
	t.Run("unknown_action", validateRequest(ManageBookingRequest{Action: "upgrade"}, true,
		"action must be one of [cancel refund reissue]"))
}

func TestNewOfferView(t *testing.T) {
	cached := offer.CachedOffer{
		ClientID:   "abc",
		Generation: 1,
		Verified:   true,
	}
	cached.Offer.LastTicketingDate = "2026-03-20"
	cached.Offer.Price.Total = "450.00"
	cached.Offer.Price.Currency = "USD"

	view := NewOfferView(cached)

	want := OfferView{
		ClientID:          "abc",
		PriceTotal:        "450.00",
		PriceCurrency:     "USD",
		PriceFormatted:    "$450.00",
		DurationFormatted: "0h",
		LastTicketingDate: "2026-03-20",
		Verified:          true,
	}

	if diff := cmp.Diff(want, view); diff != "" {
		t.Fatalf("NewOfferView() mismatch (-want +got):\n%s", diff)
	}
}
