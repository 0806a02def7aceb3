//go:build unit

package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tripway/flight-booking-service/internal/app/config"
	"github.com/tripway/flight-booking-service/internal/app/dto"
	"github.com/tripway/flight-booking-service/internal/pkg/amadeus"
	"github.com/tripway/flight-booking-service/internal/pkg/exception"
	"github.com/tripway/flight-booking-service/internal/pkg/offer"
	"github.com/tripway/flight-booking-service/internal/pkg/session"
)

const testSessionID = "sid"

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

type mockField struct {
	api      *MockFlightAPI
	sessions *MockSessionStore
}

func newTestService(t *testing.T) (*BookingService, mockField) {
	t.Helper()

	m := mockField{
		api:      NewMockFlightAPI(t),
		sessions: NewMockSessionStore(t),
	}

	ids, err := offer.NewIDGenerator(1)
	assert.NoError(t, err)

	s := NewBookingService(m.api, m.sessions, ids,
		config.Amadeus{CurrencyCode: "USD", MaxOffers: 20},
		config.Session{SubmitLockTimeout: 15 * time.Second},
		config.Agency{
			Name:        "Tripway Travel",
			Email:       "bookings@tripway.example",
			CallingCode: "1",
			Phone:       "5550100",
			AddressLine: "100 Main St",
			PostalCode:  "10001",
			City:        "New York",
			CountryCode: "US",
		})
	s.Now = func() time.Time { return testNow }

	return s, m
}

func upstreamOffer(id, total, lastTicketingDate string) amadeus.FlightOffer {
	return amadeus.FlightOffer{
		Type:              "flight-offer",
		ID:                id,
		LastTicketingDate: lastTicketingDate,
		Itineraries: []amadeus.Itinerary{
			{
				Duration: "PT7H15M",
				Segments: []amadeus.Segment{
					{
						Departure:   amadeus.FlightPoint{IataCode: "JFK", At: "2026-04-01T08:30:00"},
						Arrival:     amadeus.FlightPoint{IataCode: "LHR", At: "2026-04-01T20:45:00"},
						CarrierCode: "BA",
						Number:      "112",
					},
				},
			},
		},
		Price: amadeus.Price{Currency: "USD", Total: total, Base: "380.00", GrandTotal: total},
		TravelerPricings: []amadeus.TravelerPricing{
			{
				TravelerID:   "1",
				TravelerType: "ADULT",
				Price:        amadeus.Price{Currency: "USD", Total: total},
				FareDetailsBySegment: []amadeus.FareDetailsBySegment{
					{SegmentID: "1", Cabin: "ECONOMY", BrandedFare: "BASIC"},
				},
			},
		},
	}
}

func storedTraveler(id string) amadeus.Traveler {
	return amadeus.Traveler{
		ID:          id,
		DateOfBirth: "1990-05-12",
		Name:        amadeus.Name{FirstName: "Jane", LastName: "Doe"},
		Gender:      "FEMALE",
		Contact: amadeus.Contact{
			EmailAddress: "jane.doe@example.com",
			Phones: []amadeus.Phone{
				{DeviceType: "MOBILE", CountryCallingCode: "254", Number: "712345678"},
			},
		},
		Documents: []amadeus.Document{
			{
				DocumentType:    "PASSPORT",
				Number:          "A1234567",
				IssuanceCountry: "KE",
				Nationality:     "KE",
				Holder:          true,
			},
		},
	}
}

func TestBookingService_SearchOffers(t *testing.T) {
	criteria := dto.SearchCriteria{
		TripType:      "one_way",
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2026-04-01",
		Adults:        1,
		CabinClass:    "economy",
	}

	t.Run("success_filters_expired_and_annotates", func(t *testing.T) {
		s, m := newTestService(t)

		m.api.On("SearchFlightOffers", mock.Anything, mock.MatchedBy(func(req amadeus.SearchRequest) bool {
			return req.CurrencyCode == "USD" &&
				len(req.OriginDestinations) == 1 &&
				len(req.Travelers) == 1 &&
				req.Travelers[0].TravelerType == "ADULT" &&
				req.SearchCriteria.FlightFilters.CabinRestrictions[0].Cabin == "ECONOMY"
		})).Return([]amadeus.FlightOffer{
			upstreamOffer("1", "450.00", "2026-03-20"),
			upstreamOffer("2", "390.00", "2026-03-01"), // ticketing deadline passed
		}, nil)

		m.sessions.On("NextGeneration", mock.Anything, testSessionID).Return(int64(4), nil)
		m.sessions.On("ReplaceOffers", mock.Anything, testSessionID,
			mock.MatchedBy(func(offers []offer.CachedOffer) bool {
				return len(offers) == 1 &&
					offers[0].ClientID != "" &&
					offers[0].Generation == 4 &&
					offers[0].Offer.ID == "1"
			})).Return(nil)

		got, err := s.SearchOffers(context.Background(), testSessionID, criteria)
		assert.NoError(t, err)

		assert.Equal(t, 1, got.Metadata.TotalResults)
		assert.Equal(t, 1, got.Metadata.ExpiredExcluded)
		assert.Equal(t, int64(4), got.Metadata.Generation)
		assert.Len(t, got.Offers, 1)
		assert.Equal(t, "BA112", got.Offers[0].FlightNumber)
		assert.Equal(t, "$450.00", got.Offers[0].PriceFormatted)
	})

	t.Run("round_trip_adds_return_leg", func(t *testing.T) {
		s, m := newTestService(t)

		roundTrip := criteria
		roundTrip.TripType = "round_trip"
		roundTrip.ReturnDate = "2026-04-10"

		m.api.On("SearchFlightOffers", mock.Anything, mock.MatchedBy(func(req amadeus.SearchRequest) bool {
			return len(req.OriginDestinations) == 2 &&
				req.OriginDestinations[1].OriginLocationCode == "LHR" &&
				req.OriginDestinations[1].DestinationLocationCode == "JFK" &&
				req.OriginDestinations[1].DepartureDateTimeRange.Date == "2026-04-10"
		})).Return([]amadeus.FlightOffer{upstreamOffer("1", "900.00", "")}, nil)

		m.sessions.On("NextGeneration", mock.Anything, testSessionID).Return(int64(1), nil)
		m.sessions.On("ReplaceOffers", mock.Anything, testSessionID, mock.Anything).Return(nil)

		_, err := s.SearchOffers(context.Background(), testSessionID, roundTrip)
		assert.NoError(t, err)
	})

	t.Run("upstream_failure_clears_cache", func(t *testing.T) {
		s, m := newTestService(t)

		m.api.On("SearchFlightOffers", mock.Anything, mock.Anything).
			Return(nil, errors.New("boom"))
		m.sessions.On("ClearOffers", mock.Anything, testSessionID).Return(nil)

		_, err := s.SearchOffers(context.Background(), testSessionID, criteria)
		assert.True(t, errors.Is(err, ErrSearchFailed))
	})
}

func TestBookingService_GetOffer(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		s, m := newTestService(t)

		cached := offer.CachedOffer{ClientID: "abc", Generation: 1, Offer: upstreamOffer("1", "450.00", "")}
		m.sessions.On("OfferByClientID", mock.Anything, testSessionID, "abc").Return(cached, nil)

		got, err := s.GetOffer(context.Background(), testSessionID, dto.GetOfferRequest{ClientID: "abc"})
		assert.NoError(t, err)
		assert.Equal(t, "abc", got.Offer.ClientID)
		assert.Equal(t, "JFK", got.View.Origin)
	})

	t.Run("unknown_id", func(t *testing.T) {
		s, m := newTestService(t)

		m.sessions.On("OfferByClientID", mock.Anything, testSessionID, "zzz").
			Return(offer.CachedOffer{}, session.ErrNotFound)

		_, err := s.GetOffer(context.Background(), testSessionID, dto.GetOfferRequest{ClientID: "zzz"})
		assert.True(t, errors.Is(err, ErrOfferNotFound))
	})

	t.Run("expired_in_cache", func(t *testing.T) {
		s, m := newTestService(t)

		cached := offer.CachedOffer{ClientID: "abc", Offer: upstreamOffer("1", "450.00", "2026-03-01")}
		m.sessions.On("OfferByClientID", mock.Anything, testSessionID, "abc").Return(cached, nil)

		_, err := s.GetOffer(context.Background(), testSessionID, dto.GetOfferRequest{ClientID: "abc"})
		assert.True(t, errors.Is(err, ErrOfferNotFound))
	})
}

func TestBookingService_VerifyPrice(t *testing.T) {
	cached := offer.CachedOffer{ClientID: "abc", Generation: 1, Offer: upstreamOffer("1", "450.00", "")}

	t.Run("success_swaps_in_confirmed_offer", func(t *testing.T) {
		s, m := newTestService(t)

		priced := upstreamOffer("1", "465.00", "")

		m.sessions.On("OfferByClientID", mock.Anything, testSessionID, "abc").Return(cached, nil)
		m.api.On("PriceFlightOffer", mock.Anything, cached.Offer).Return(priced, nil)
		m.sessions.On("PutOffer", mock.Anything, testSessionID,
			mock.MatchedBy(func(updated offer.CachedOffer) bool {
				return updated.ClientID == "abc" &&
					updated.Verified &&
					updated.Offer.Price.Total == "465.00"
			})).Return(nil)
		m.sessions.On("SetSelectedFare", mock.Anything, testSessionID,
			offer.SelectedFare{Name: "BASIC", Price: "465.00", Confirmed: true}).Return(nil)

		got, err := s.VerifyPrice(context.Background(), testSessionID, dto.VerifyPriceRequest{ClientID: "abc"})
		assert.NoError(t, err)

		assert.True(t, got.Offer.Verified)
		assert.Equal(t, "465.00", got.Offer.Offer.Price.Total)
		assert.Equal(t, "BASIC", got.SelectedFare.Name)
		assert.Len(t, got.FareOptions, 3)
		assert.Equal(t, "515.00", got.FareOptions[1].Price)
	})

	t.Run("structured_error_surfaces_detail", func(t *testing.T) {
		s, m := newTestService(t)

		m.sessions.On("OfferByClientID", mock.Anything, testSessionID, "abc").Return(cached, nil)
		m.api.On("PriceFlightOffer", mock.Anything, cached.Offer).
			Return(amadeus.FlightOffer{}, &amadeus.APIError{
				StatusCode: http.StatusBadRequest,
				Errors: []amadeus.ErrorDetail{
					{Title: "NO FARE APPLICABLE", Detail: "the fare is no longer available"},
				},
			})

		_, err := s.VerifyPrice(context.Background(), testSessionID, dto.VerifyPriceRequest{ClientID: "abc"})
		assert.Error(t, err)

		var appErr exception.ApplicationError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusUnprocessableEntity, appErr.StatusCode)
		assert.Equal(t, "the fare is no longer available", appErr.Message)
	})

	t.Run("opaque_error_is_generic", func(t *testing.T) {
		s, m := newTestService(t)

		m.sessions.On("OfferByClientID", mock.Anything, testSessionID, "abc").Return(cached, nil)
		m.api.On("PriceFlightOffer", mock.Anything, cached.Offer).
			Return(amadeus.FlightOffer{}, errors.New("timeout"))

		_, err := s.VerifyPrice(context.Background(), testSessionID, dto.VerifyPriceRequest{ClientID: "abc"})
		assert.True(t, errors.Is(err, ErrPriceVerificationFailed))
	})
}

func TestBookingService_SelectFare(t *testing.T) {
	verified := offer.CachedOffer{
		ClientID:   "abc",
		Generation: 1,
		Verified:   true,
		Offer:      upstreamOffer("1", "450.00", ""),
	}

	t.Run("upsell_tier", func(t *testing.T) {
		s, m := newTestService(t)

		m.sessions.On("OfferByClientID", mock.Anything, testSessionID, "abc").Return(verified, nil)
		m.sessions.On("SetSelectedFare", mock.Anything, testSessionID,
			offer.SelectedFare{Name: "ECONOMY STANDARD", Price: "500.00", Confirmed: false}).Return(nil)

		got, err := s.SelectFare(context.Background(), testSessionID,
			dto.SelectFareRequest{ClientID: "abc", Name: "ECONOMY STANDARD"})
		assert.NoError(t, err)
		assert.Equal(t, "500.00", got.SelectedFare.Price)
		assert.False(t, got.SelectedFare.Confirmed)
	})

	t.Run("not_verified", func(t *testing.T) {
		s, m := newTestService(t)

		unverified := verified
		unverified.Verified = false
		m.sessions.On("OfferByClientID", mock.Anything, testSessionID, "abc").Return(unverified, nil)

		_, err := s.SelectFare(context.Background(), testSessionID,
			dto.SelectFareRequest{ClientID: "abc", Name: "ECONOMY STANDARD"})
		assert.True(t, errors.Is(err, ErrFareNotVerified))
	})

	t.Run("unknown_fare", func(t *testing.T) {
		s, m := newTestService(t)

		m.sessions.On("OfferByClientID", mock.Anything, testSessionID, "abc").Return(verified, nil)

		_, err := s.SelectFare(context.Background(), testSessionID,
			dto.SelectFareRequest{ClientID: "abc", Name: "FIRST CLASS SUPREME"})
		assert.True(t, errors.Is(err, ErrUnknownFare))
	})
}

func TestBookingService_SaveTravelers(t *testing.T) {
	t.Run("valid_travelers_stored", func(t *testing.T) {
		s, m := newTestService(t)

		trv := storedTraveler("")
		trv.Documents[0].IssuanceCountry = "ke"
		trv.Documents[0].Nationality = "ke"

		m.sessions.On("SetTravelers", mock.Anything, testSessionID,
			mock.MatchedBy(func(travelers []amadeus.Traveler) bool {
				return len(travelers) == 1 &&
					travelers[0].ID == "1" &&
					travelers[0].Documents[0].IssuanceCountry == "KE"
			})).Return(nil)
		m.sessions.On("Seats", mock.Anything, testSessionID).Return(map[string]string{}, nil)

		got, err := s.SaveTravelers(context.Background(), testSessionID,
			dto.SaveTravelersRequest{Travelers: []amadeus.Traveler{trv}})
		assert.NoError(t, err)
		assert.Equal(t, "1", got.Travelers[0].ID)
	})

	t.Run("invalid_calling_code", func(t *testing.T) {
		s, _ := newTestService(t)

		trv := storedTraveler("1")
		trv.Contact.Phones[0].CountryCallingCode = "33a!"

		_, err := s.SaveTravelers(context.Background(), testSessionID,
			dto.SaveTravelersRequest{Travelers: []amadeus.Traveler{trv}})
		assert.Error(t, err)

		var appErr exception.ApplicationError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
	})

	t.Run("stale_seats_pruned", func(t *testing.T) {
		s, m := newTestService(t)

		trv := storedTraveler("1")

		m.sessions.On("SetTravelers", mock.Anything, testSessionID, mock.Anything).Return(nil)
		m.sessions.On("Seats", mock.Anything, testSessionID).
			Return(map[string]string{"1": "12A", "2": "12B"}, nil)
		m.sessions.On("SetSeats", mock.Anything, testSessionID,
			map[string]string{"1": "12A"}).Return(nil)

		_, err := s.SaveTravelers(context.Background(), testSessionID,
			dto.SaveTravelersRequest{Travelers: []amadeus.Traveler{trv}})
		assert.NoError(t, err)
	})
}

func TestBookingService_AssignSeat(t *testing.T) {
	travelers := []amadeus.Traveler{storedTraveler("1"), storedTraveler("2")}

	t.Run("seat_assigned", func(t *testing.T) {
		s, m := newTestService(t)

		m.sessions.On("Travelers", mock.Anything, testSessionID).Return(travelers, nil)
		m.sessions.On("Seats", mock.Anything, testSessionID).Return(map[string]string{"1": "12A"}, nil)
		m.sessions.On("SetSeats", mock.Anything, testSessionID,
			map[string]string{"1": "12A", "2": "12B"}).Return(nil)

		got, err := s.AssignSeat(context.Background(), testSessionID,
			dto.AssignSeatRequest{TravelerID: "2", Seat: "12B"})
		assert.NoError(t, err)
		assert.Equal(t, "12B", got.Seats["2"])
	})

	t.Run("seat_taken_by_other_traveler", func(t *testing.T) {
		s, m := newTestService(t)

		m.sessions.On("Travelers", mock.Anything, testSessionID).Return(travelers, nil)
		m.sessions.On("Seats", mock.Anything, testSessionID).Return(map[string]string{"1": "12A"}, nil)

		_, err := s.AssignSeat(context.Background(), testSessionID,
			dto.AssignSeatRequest{TravelerID: "2", Seat: "12A"})
		assert.True(t, errors.Is(err, ErrSeatTaken))
	})

	t.Run("own_seat_can_move", func(t *testing.T) {
		s, m := newTestService(t)

		m.sessions.On("Travelers", mock.Anything, testSessionID).Return(travelers, nil)
		m.sessions.On("Seats", mock.Anything, testSessionID).Return(map[string]string{"1": "12A"}, nil)
		m.sessions.On("SetSeats", mock.Anything, testSessionID,
			map[string]string{"1": "14C"}).Return(nil)

		_, err := s.AssignSeat(context.Background(), testSessionID,
			dto.AssignSeatRequest{TravelerID: "1", Seat: "14C"})
		assert.NoError(t, err)
	})

	t.Run("unknown_traveler", func(t *testing.T) {
		s, m := newTestService(t)

		m.sessions.On("Travelers", mock.Anything, testSessionID).Return(travelers, nil)

		_, err := s.AssignSeat(context.Background(), testSessionID,
			dto.AssignSeatRequest{TravelerID: "9", Seat: "12C"})
		assert.True(t, errors.Is(err, ErrUnknownTraveler))
	})

	t.Run("no_travelers_yet", func(t *testing.T) {
		s, m := newTestService(t)

		m.sessions.On("Travelers", mock.Anything, testSessionID).
			Return(nil, session.ErrNotFound)

		_, err := s.AssignSeat(context.Background(), testSessionID,
			dto.AssignSeatRequest{TravelerID: "1", Seat: "12A"})
		assert.True(t, errors.Is(err, ErrNoTravelers))
	})
}

func TestBookingService_CreateBooking(t *testing.T) {
	verified := offer.CachedOffer{
		ClientID:   "abc",
		Generation: 1,
		Verified:   true,
		Offer:      upstreamOffer("1", "450.00", ""),
	}
	travelers := []amadeus.Traveler{storedTraveler("1")}
	seats := map[string]string{"1": "12A"}

	orderResult := amadeus.OrderResult{
		Order: amadeus.Order{
			Type:         "flight-order",
			ID:           "eJzTd9f3",
			FlightOffers: []amadeus.FlightOffer{upstreamOffer("1", "500.00", "")},
			Travelers:    travelers,
			AssociatedRecords: []amadeus.AssociatedRecord{
				{Reference: "ABC123"},
			},
		},
	}

	t.Run("success_applies_selected_fare_price", func(t *testing.T) {
		s, m := newTestService(t)

		m.sessions.On("AcquireSubmitLock", mock.Anything, testSessionID, 15*time.Second).Return(true, nil)
		m.sessions.On("ReleaseSubmitLock", mock.Anything, testSessionID).Return(nil)
		m.sessions.On("OfferByClientID", mock.Anything, testSessionID, "abc").Return(verified, nil)
		m.sessions.On("Travelers", mock.Anything, testSessionID).Return(travelers, nil)
		m.sessions.On("Seats", mock.Anything, testSessionID).Return(seats, nil)
		m.sessions.On("SelectedFare", mock.Anything, testSessionID).
			Return(offer.SelectedFare{Name: "ECONOMY STANDARD", Price: "500.00"}, nil)

		m.api.On("CreateFlightOrder", mock.Anything, mock.MatchedBy(func(order amadeus.OrderRequest) bool {
			return order.Type == "flight-order" &&
				len(order.FlightOffers) == 1 &&
				order.FlightOffers[0].Price.Total == "500.00" &&
				order.FlightOffers[0].Price.GrandTotal == "500.00" &&
				len(order.Travelers) == 1 &&
				len(order.Contacts) == 1 &&
				order.Contacts[0].CompanyName == "Tripway Travel"
		})).Return(orderResult, nil)

		m.sessions.On("PutOrder", mock.Anything, testSessionID, "ABC123", orderResult).Return(nil)

		got, err := s.CreateBooking(context.Background(), testSessionID,
			dto.CreateBookingRequest{ClientID: "abc"})
		assert.NoError(t, err)
		assert.Equal(t, "ABC123", got.Reference)

		// the cached offer was deep-copied, not mutated
		assert.Equal(t, "450.00", verified.Offer.Price.Total)
	})

	t.Run("submission_already_in_flight", func(t *testing.T) {
		s, m := newTestService(t)

		m.sessions.On("AcquireSubmitLock", mock.Anything, testSessionID, 15*time.Second).Return(false, nil)

		_, err := s.CreateBooking(context.Background(), testSessionID,
			dto.CreateBookingRequest{ClientID: "abc"})
		assert.True(t, errors.Is(err, ErrBookingInProgress))
	})

	t.Run("offer_not_verified", func(t *testing.T) {
		s, m := newTestService(t)

		unverified := verified
		unverified.Verified = false

		m.sessions.On("AcquireSubmitLock", mock.Anything, testSessionID, 15*time.Second).Return(true, nil)
		m.sessions.On("ReleaseSubmitLock", mock.Anything, testSessionID).Return(nil)
		m.sessions.On("OfferByClientID", mock.Anything, testSessionID, "abc").Return(unverified, nil)

		_, err := s.CreateBooking(context.Background(), testSessionID,
			dto.CreateBookingRequest{ClientID: "abc"})
		assert.True(t, errors.Is(err, ErrOfferNotVerified))
	})

	t.Run("incomplete_seats", func(t *testing.T) {
		s, m := newTestService(t)

		m.sessions.On("AcquireSubmitLock", mock.Anything, testSessionID, 15*time.Second).Return(true, nil)
		m.sessions.On("ReleaseSubmitLock", mock.Anything, testSessionID).Return(nil)
		m.sessions.On("OfferByClientID", mock.Anything, testSessionID, "abc").Return(verified, nil)
		m.sessions.On("Travelers", mock.Anything, testSessionID).Return(travelers, nil)
		m.sessions.On("Seats", mock.Anything, testSessionID).Return(map[string]string{}, nil)

		_, err := s.CreateBooking(context.Background(), testSessionID,
			dto.CreateBookingRequest{ClientID: "abc"})
		assert.True(t, errors.Is(err, ErrSeatsIncomplete))
	})

	t.Run("structured_upstream_error_surfaces_title_and_detail", func(t *testing.T) {
		s, m := newTestService(t)

		m.sessions.On("AcquireSubmitLock", mock.Anything, testSessionID, 15*time.Second).Return(true, nil)
		m.sessions.On("ReleaseSubmitLock", mock.Anything, testSessionID).Return(nil)
		m.sessions.On("OfferByClientID", mock.Anything, testSessionID, "abc").Return(verified, nil)
		m.sessions.On("Travelers", mock.Anything, testSessionID).Return(travelers, nil)
		m.sessions.On("Seats", mock.Anything, testSessionID).Return(seats, nil)
		m.sessions.On("SelectedFare", mock.Anything, testSessionID).
			Return(offer.SelectedFare{}, session.ErrNotFound)

		m.api.On("CreateFlightOrder", mock.Anything, mock.Anything).
			Return(amadeus.OrderResult{}, &amadeus.APIError{
				StatusCode: http.StatusBadRequest,
				Errors: []amadeus.ErrorDetail{
					{Title: "INVALID FORMAT", Detail: "traveler contact invalid"},
				},
			})

		_, err := s.CreateBooking(context.Background(), testSessionID,
			dto.CreateBookingRequest{ClientID: "abc"})
		assert.Error(t, err)

		var appErr exception.ApplicationError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, "INVALID FORMAT: traveler contact invalid", appErr.Message)
	})
}

func TestBookingService_GetBooking(t *testing.T) {
	orderResult := amadeus.OrderResult{
		Order: amadeus.Order{
			Type:         "flight-order",
			ID:           "eJzTd9f3",
			FlightOffers: []amadeus.FlightOffer{upstreamOffer("1", "500.00", "")},
			Travelers:    []amadeus.Traveler{storedTraveler("1")},
			AssociatedRecords: []amadeus.AssociatedRecord{
				{Reference: "ABC123"},
			},
		},
	}

	t.Run("last_order_fast_path", func(t *testing.T) {
		s, m := newTestService(t)

		m.sessions.On("LastOrder", mock.Anything, testSessionID).Return(orderResult, nil)
		m.sessions.On("Seats", mock.Anything, testSessionID).Return(map[string]string{"1": "12A"}, nil)
		m.sessions.On("SelectedFare", mock.Anything, testSessionID).
			Return(offer.SelectedFare{Name: "ECONOMY STANDARD", Price: "500.00"}, nil)

		got, err := s.GetBooking(context.Background(), testSessionID,
			dto.GetBookingRequest{Reference: "ABC123"})
		assert.NoError(t, err)

		assert.Equal(t, "ABC123", got.Ticket.Reference)
		assert.Equal(t, "CONFIRMED", got.Ticket.Status)
		assert.Equal(t, "ECONOMY STANDARD", got.Ticket.FareBrand)
		assert.Equal(t, "500.00", got.Ticket.Price.Total)
		assert.Equal(t, "120.00", got.Ticket.Price.Taxes)
		assert.Len(t, got.Ticket.Segments, 1)
		assert.Equal(t, "12A", got.Ticket.Passengers[0].Seat)
	})

	t.Run("lookup_by_reference", func(t *testing.T) {
		s, m := newTestService(t)

		m.sessions.On("LastOrder", mock.Anything, testSessionID).
			Return(amadeus.OrderResult{}, session.ErrNotFound)
		m.sessions.On("OrderByReference", mock.Anything, testSessionID, "ABC123").Return(orderResult, nil)
		m.sessions.On("Seats", mock.Anything, testSessionID).Return(map[string]string{}, nil)
		m.sessions.On("SelectedFare", mock.Anything, testSessionID).
			Return(offer.SelectedFare{}, session.ErrNotFound)

		got, err := s.GetBooking(context.Background(), testSessionID,
			dto.GetBookingRequest{Reference: "ABC123"})
		assert.NoError(t, err)
		assert.Equal(t, "BASIC", got.Ticket.FareBrand)
	})

	t.Run("not_found", func(t *testing.T) {
		s, m := newTestService(t)

		m.sessions.On("LastOrder", mock.Anything, testSessionID).
			Return(amadeus.OrderResult{}, session.ErrNotFound)
		m.sessions.On("OrderByReference", mock.Anything, testSessionID, "XYZ999").
			Return(amadeus.OrderResult{}, session.ErrNotFound)

		_, err := s.GetBooking(context.Background(), testSessionID,
			dto.GetBookingRequest{Reference: "XYZ999"})
		assert.True(t, errors.Is(err, ErrBookingNotFound))
	})
}

func TestBookingService_ManageBooking(t *testing.T) {
	orderResult := amadeus.OrderResult{
		Order: amadeus.Order{
			ID: "eJzTd9f3",
			AssociatedRecords: []amadeus.AssociatedRecord{
				{Reference: "ABC123"},
			},
		},
	}

	manageRequest := func(action, wantStatus string) func(t *testing.T) {
		return func(t *testing.T) {
			s, m := newTestService(t)

			m.sessions.On("LastOrder", mock.Anything, testSessionID).Return(orderResult, nil)

			got, err := s.ManageBooking(context.Background(), testSessionID,
				dto.ManageBookingRequest{Reference: "ABC123", Action: action, Reason: "plans changed"})
			assert.NoError(t, err)

			assert.True(t, got.Success)
			assert.Equal(t, wantStatus, got.Status)
			assert.Equal(t, "plans changed", got.Reason)
			assert.Equal(t, testNow.UTC().Format(time.RFC3339), got.Timestamp)
		}
	}

	t.Run("cancel", manageRequest("cancel", "cancellation_requested"))
	t.Run("refund", manageRequest("refund", "refund_requested"))
	t.Run("reissue", manageRequest("reissue", "reissue_requested"))

	t.Run("unknown_booking", func(t *testing.T) {
		s, m := newTestService(t)

		m.sessions.On("LastOrder", mock.Anything, testSessionID).
			Return(amadeus.OrderResult{}, session.ErrNotFound)
		m.sessions.On("OrderByReference", mock.Anything, testSessionID, "XYZ999").
			Return(amadeus.OrderResult{}, session.ErrNotFound)

		_, err := s.ManageBooking(context.Background(), testSessionID,
			dto.ManageBookingRequest{Reference: "XYZ999", Action: "cancel"})
		assert.True(t, errors.Is(err, ErrBookingNotFound))
	})
}

func TestBookingService_SuggestAirports(t *testing.T) {
	t.Run("short_keyword_skips_upstream", func(t *testing.T) {
		s, _ := newTestService(t)

		got, err := s.SuggestAirports(context.Background(), dto.SuggestAirportsRequest{Keyword: "n"})
		assert.NoError(t, err)
		assert.Empty(t, got.Data)
	})

	t.Run("keyword_forwarded", func(t *testing.T) {
		s, m := newTestService(t)

		m.api.On("SearchLocations", mock.Anything, "nairobi").Return([]amadeus.Location{
			{SubType: "AIRPORT", Name: "JOMO KENYATTA INTL", IataCode: "NBO"},
		}, nil)

		got, err := s.SuggestAirports(context.Background(), dto.SuggestAirportsRequest{Keyword: " nairobi "})
		assert.NoError(t, err)
		assert.Len(t, got.Data, 1)
	})

	t.Run("upstream_failure", func(t *testing.T) {
		s, m := newTestService(t)

		m.api.On("SearchLocations", mock.Anything, "nairobi").
			Return(nil, errors.New("boom"))

		_, err := s.SuggestAirports(context.Background(), dto.SuggestAirportsRequest{Keyword: "nairobi"})
		assert.True(t, errors.Is(err, ErrSuggestionsFailed))
	})
}
