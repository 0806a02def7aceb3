package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tripway/flight-booking-service/internal/app/config"
	"github.com/tripway/flight-booking-service/internal/app/dto"
	"github.com/tripway/flight-booking-service/internal/pkg/amadeus"
	"github.com/tripway/flight-booking-service/internal/pkg/exception"
	"github.com/tripway/flight-booking-service/internal/pkg/offer"
	"github.com/tripway/flight-booking-service/internal/pkg/session"
	"github.com/tripway/flight-booking-service/internal/pkg/traveler"
	"github.com/tripway/flight-booking-service/internal/pkg/utils"
)

// FlightAPI is the upstream flight provider surface the booking flow needs.
type FlightAPI interface {
	SearchFlightOffers(ctx context.Context, req amadeus.SearchRequest) ([]amadeus.FlightOffer, error)
	PriceFlightOffer(ctx context.Context, o amadeus.FlightOffer) (amadeus.FlightOffer, error)
	CreateFlightOrder(ctx context.Context, order amadeus.OrderRequest) (amadeus.OrderResult, error)
	SearchLocations(ctx context.Context, keyword string) ([]amadeus.Location, error)
}

// SessionStore persists the per-session booking flow state.
type SessionStore interface {
	NextGeneration(ctx context.Context, sessionID string) (int64, error)
	ReplaceOffers(ctx context.Context, sessionID string, offers []offer.CachedOffer) error
	ClearOffers(ctx context.Context, sessionID string) error
	Offers(ctx context.Context, sessionID string) ([]offer.CachedOffer, error)
	OfferByClientID(ctx context.Context, sessionID, clientID string) (offer.CachedOffer, error)
	PutOffer(ctx context.Context, sessionID string, updated offer.CachedOffer) error
	SetSelectedFare(ctx context.Context, sessionID string, fare offer.SelectedFare) error
	SelectedFare(ctx context.Context, sessionID string) (offer.SelectedFare, error)
	SetTravelers(ctx context.Context, sessionID string, travelers []amadeus.Traveler) error
	Travelers(ctx context.Context, sessionID string) ([]amadeus.Traveler, error)
	SetSeats(ctx context.Context, sessionID string, seats map[string]string) error
	Seats(ctx context.Context, sessionID string) (map[string]string, error)
	PutOrder(ctx context.Context, sessionID, reference string, result amadeus.OrderResult) error
	OrderByReference(ctx context.Context, sessionID, reference string) (amadeus.OrderResult, error)
	LastOrder(ctx context.Context, sessionID string) (amadeus.OrderResult, error)
	AcquireSubmitLock(ctx context.Context, sessionID string, timeout time.Duration) (bool, error)
	ReleaseSubmitLock(ctx context.Context, sessionID string) error
}

// BookingService orchestrates the booking flow: searching and caching offers,
// price verification, fare selection, passenger and seat capture, order
// submission and retrieval.
type BookingService struct {
	API               FlightAPI
	Sessions          SessionStore
	IDs               *offer.IDGenerator
	Currency          string
	MaxOffers         int
	Agency            config.Agency
	SubmitLockTimeout time.Duration
	Now               func() time.Time
}

func NewBookingService(api FlightAPI, sessions SessionStore, ids *offer.IDGenerator,
	amadeusCfg config.Amadeus, sessionCfg config.Session, agency config.Agency,
) *BookingService {
	return &BookingService{
		API:               api,
		Sessions:          sessions,
		IDs:               ids,
		Currency:          amadeusCfg.CurrencyCode,
		MaxOffers:         amadeusCfg.MaxOffers,
		Agency:            agency,
		SubmitLockTimeout: sessionCfg.SubmitLockTimeout,
	}
}

func (s *BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}

	return time.Now()
}

// SearchOffers runs an upstream flight search and replaces the session's
// offer cache with a fresh generation
// SearchOffers godoc
// @Summary      Search flight offers
// @Tags         Offers
// @Description  Search flight offers and cache them for the session
// @Param        request  body      dto.SearchCriteria  true  "Search Criteria"
// @Success      200      {object}  dto.SearchOffersResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      502      {object}  dto.ErrorResponse
// @Router       /api/v1/offers/search [post]
func (s *BookingService) SearchOffers(
	ctx context.Context,
	sessionID string,
	req dto.SearchCriteria,
) (dto.SearchOffersResponse, error) {
	startTime := time.Now()

	raw, err := s.API.SearchFlightOffers(ctx, s.buildSearchRequest(req))
	if err != nil {
		slog.ErrorContext(ctx, "flight search failed", slog.Any("error", err))

		// a failed search must not leave a stale generation behind
		if clearErr := s.Sessions.ClearOffers(ctx, sessionID); clearErr != nil {
			slog.WarnContext(ctx, "failed to clear offer cache",
				slog.Any("error", clearErr))
		}

		return dto.SearchOffersResponse{}, ErrSearchFailed
	}

	fresh := offer.FilterExpired(raw, s.now())
	expiredExcluded := len(raw) - len(fresh)

	generation, err := s.Sessions.NextGeneration(ctx, sessionID)
	if err != nil {
		return dto.SearchOffersResponse{}, fmt.Errorf("failed to advance cache generation: %w", err)
	}

	cached := offer.Annotate(s.IDs, generation, fresh)

	if err := s.Sessions.ReplaceOffers(ctx, sessionID, cached); err != nil {
		return dto.SearchOffersResponse{}, fmt.Errorf("failed to cache offers: %w", err)
	}

	results := offer.FilterOffers(cached, req.FilterOption)
	results = offer.SortOffers(results, req.SortOption)

	views := make([]dto.OfferView, len(results))
	for i, o := range results {
		views[i] = dto.NewOfferView(o)
	}

	return dto.SearchOffersResponse{
		SearchCriteria: req,
		Metadata: dto.Metadata{
			TotalResults:    len(results),
			ExpiredExcluded: expiredExcluded,
			Generation:      generation,
			SearchTimeMs:    int(time.Since(startTime).Milliseconds()),
		},
		Offers:    views,
		RawOffers: results,
	}, nil
}

// buildSearchRequest expands the search form into the upstream body: one
// traveler entry per passenger, one origin-destination per direction.
func (s *BookingService) buildSearchRequest(req dto.SearchCriteria) amadeus.SearchRequest {
	var travelers []amadeus.SearchTraveler

	id := 0
	addTravelers := func(count int, travelerType string) {
		for i := 0; i < count; i++ {
			id++
			travelers = append(travelers, amadeus.SearchTraveler{
				ID:           strconv.Itoa(id),
				TravelerType: travelerType,
			})
		}
	}

	addTravelers(req.Adults, "ADULT")
	addTravelers(req.Children, "CHILD")
	addTravelers(req.Infants, "HELD_INFANT")

	originDestinations := []amadeus.OriginDestination{
		{
			ID:                      "1",
			OriginLocationCode:      req.Origin,
			DestinationLocationCode: req.Destination,
			DepartureDateTimeRange:  amadeus.DateTimeRange{Date: req.DepartureDate},
		},
	}

	if req.TripType == "round_trip" && req.ReturnDate != "" {
		originDestinations = append(originDestinations, amadeus.OriginDestination{
			ID:                      "2",
			OriginLocationCode:      req.Destination,
			DestinationLocationCode: req.Origin,
			DepartureDateTimeRange:  amadeus.DateTimeRange{Date: req.ReturnDate},
		})
	}

	odIDs := make([]string, len(originDestinations))
	for i, od := range originDestinations {
		odIDs[i] = od.ID
	}

	return amadeus.SearchRequest{
		CurrencyCode:       s.Currency,
		OriginDestinations: originDestinations,
		Travelers:          travelers,
		Sources:            []string{"GDS"},
		SearchCriteria: amadeus.SearchBodyCriteria{
			MaxFlightOffers: s.MaxOffers,
			FlightFilters: amadeus.FlightFilters{
				CabinRestrictions: []amadeus.CabinRestriction{
					{
						Cabin:                strings.ToUpper(req.CabinClass),
						Coverage:             "MOST_SEGMENTS",
						OriginDestinationIDs: odIDs,
					},
				},
			},
		},
	}
}

// GetOffer resolves a cached offer by client identifier. Pure cache read
// GetOffer godoc
// @Summary      Get cached offer
// @Tags         Offers
// @Description  Resolve a cached flight offer by its client identifier
// @Param        clientId  path      string  true  "Client Offer ID"
// @Success      200       {object}  dto.GetOfferResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /api/v1/offers/{clientId} [get]
func (s *BookingService) GetOffer(
	ctx context.Context,
	sessionID string,
	req dto.GetOfferRequest,
) (dto.GetOfferResponse, error) {
	cached, err := s.lookupOffer(ctx, sessionID, req.ClientID)
	if err != nil {
		return dto.GetOfferResponse{}, err
	}

	return dto.GetOfferResponse{
		Offer: cached,
		View:  dto.NewOfferView(cached),
	}, nil
}

func (s *BookingService) lookupOffer(ctx context.Context, sessionID, clientID string) (offer.CachedOffer, error) {
	cached, err := s.Sessions.OfferByClientID(ctx, sessionID, clientID)
	if errors.Is(err, session.ErrNotFound) {
		return offer.CachedOffer{}, ErrOfferNotFound
	}

	if err != nil {
		return offer.CachedOffer{}, fmt.Errorf("failed to get offer from session: %w", err)
	}

	if offer.IsExpired(cached.Offer, s.now()) {
		return offer.CachedOffer{}, ErrOfferNotFound
	}

	return cached, nil
}

// VerifyPrice re-validates the offer against the upstream pricing endpoint,
// swaps the confirmed version into the cache and resets the selected fare to
// the confirmed base fare
// VerifyPrice godoc
// @Summary      Verify offer price
// @Tags         Offers
// @Description  Re-validate a cached offer's price before booking
// @Param        clientId  path      string  true  "Client Offer ID"
// @Success      200       {object}  dto.VerifyPriceResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Failure      422       {object}  dto.ErrorResponse
// @Router       /api/v1/offers/{clientId}/verify [post]
func (s *BookingService) VerifyPrice(
	ctx context.Context,
	sessionID string,
	req dto.VerifyPriceRequest,
) (dto.VerifyPriceResponse, error) {
	cached, err := s.lookupOffer(ctx, sessionID, req.ClientID)
	if err != nil {
		return dto.VerifyPriceResponse{}, err
	}

	priced, err := s.API.PriceFlightOffer(ctx, cached.Offer)
	if err != nil {
		slog.WarnContext(ctx, "price verification failed",
			slog.String("client_id", req.ClientID),
			slog.Any("error", err))

		return dto.VerifyPriceResponse{}, priceVerificationError(err)
	}

	cached.Offer = priced
	cached.Verified = true

	if err := s.Sessions.PutOffer(ctx, sessionID, cached); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return dto.VerifyPriceResponse{}, ErrOfferNotFound
		}

		return dto.VerifyPriceResponse{}, fmt.Errorf("failed to store verified offer: %w", err)
	}

	fare := offer.BaseFare(priced)
	if err := s.Sessions.SetSelectedFare(ctx, sessionID, fare); err != nil {
		return dto.VerifyPriceResponse{}, fmt.Errorf("failed to store selected fare: %w", err)
	}

	return dto.VerifyPriceResponse{
		Offer:        cached,
		View:         dto.NewOfferView(cached),
		SelectedFare: fare,
		FareOptions:  offer.FareOptions(priced),
	}, nil
}

// priceVerificationError surfaces the upstream detail when the pricing
// endpoint returned a structured error, otherwise the generic message.
func priceVerificationError(err error) error {
	var apiErr *amadeus.APIError
	if errors.As(err, &apiErr) && len(apiErr.Errors) > 0 && apiErr.Errors[0].Detail != "" {
		return exception.New(http.StatusUnprocessableEntity, apiErr.Errors[0].Detail)
	}

	return ErrPriceVerificationFailed
}

// SelectFare picks one of the fare bundles presented for the verified offer
// SelectFare godoc
// @Summary      Select fare
// @Tags         Offers
// @Description  Select one of the fare bundles of a verified offer
// @Param        clientId  path      string                 true  "Client Offer ID"
// @Param        request   body      dto.SelectFareRequest  true  "Fare Selection"
// @Success      200       {object}  dto.SelectFareResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Failure      409       {object}  dto.ErrorResponse
// @Router       /api/v1/offers/{clientId}/fare [put]
func (s *BookingService) SelectFare(
	ctx context.Context,
	sessionID string,
	req dto.SelectFareRequest,
) (dto.SelectFareResponse, error) {
	cached, err := s.lookupOffer(ctx, sessionID, req.ClientID)
	if err != nil {
		return dto.SelectFareResponse{}, err
	}

	if !cached.Verified {
		return dto.SelectFareResponse{}, ErrFareNotVerified
	}

	for _, option := range offer.FareOptions(cached.Offer) {
		if option.Name != req.Name {
			continue
		}

		fare := offer.SelectedFare{
			Name:      option.Name,
			Price:     option.Price,
			Confirmed: option.Confirmed,
		}

		if err := s.Sessions.SetSelectedFare(ctx, sessionID, fare); err != nil {
			return dto.SelectFareResponse{}, fmt.Errorf("failed to store selected fare: %w", err)
		}

		return dto.SelectFareResponse{SelectedFare: fare}, nil
	}

	return dto.SelectFareResponse{}, ErrUnknownFare
}

// SaveTravelers validates and stores the passenger drafts. Seats assigned to
// travelers no longer present are dropped
// SaveTravelers godoc
// @Summary      Save travelers
// @Tags         Booking
// @Description  Validate and store the passenger details for the session
// @Param        request  body      dto.SaveTravelersRequest  true  "Travelers"
// @Success      200      {object}  dto.SaveTravelersResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/v1/booking/travelers [put]
func (s *BookingService) SaveTravelers(
	ctx context.Context,
	sessionID string,
	req dto.SaveTravelersRequest,
) (dto.SaveTravelersResponse, error) {
	if len(req.Travelers) == 0 {
		return dto.SaveTravelersResponse{}, ErrNoTravelers
	}

	travelers := make([]amadeus.Traveler, len(req.Travelers))
	for i, t := range req.Travelers {
		t = traveler.Normalize(t)
		if t.ID == "" {
			t.ID = strconv.Itoa(i + 1)
		}

		if err := traveler.Validate(t); err != nil {
			return dto.SaveTravelersResponse{}, err
		}

		travelers[i] = t
	}

	if err := s.Sessions.SetTravelers(ctx, sessionID, travelers); err != nil {
		return dto.SaveTravelersResponse{}, fmt.Errorf("failed to store travelers: %w", err)
	}

	if err := s.pruneSeats(ctx, sessionID, travelers); err != nil {
		return dto.SaveTravelersResponse{}, err
	}

	return dto.SaveTravelersResponse{Travelers: travelers}, nil
}

// pruneSeats drops seat assignments that no longer map to a stored traveler.
func (s *BookingService) pruneSeats(ctx context.Context, sessionID string, travelers []amadeus.Traveler) error {
	seats, err := s.Sessions.Seats(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to get seats: %w", err)
	}

	if len(seats) == 0 {
		return nil
	}

	known := make(map[string]bool, len(travelers))
	for _, t := range travelers {
		known[t.ID] = true
	}

	pruned := make(map[string]string, len(seats))
	for id, seat := range seats {
		if known[id] {
			pruned[id] = seat
		}
	}

	if len(pruned) == len(seats) {
		return nil
	}

	if err := s.Sessions.SetSeats(ctx, sessionID, pruned); err != nil {
		return fmt.Errorf("failed to store seats: %w", err)
	}

	return nil
}

// AssignSeat assigns one seat to one traveler. A seat already held by another
// traveler is rejected; re-assigning a traveler's own seat moves them
// AssignSeat godoc
// @Summary      Assign seat
// @Tags         Booking
// @Description  Assign a seat to a stored traveler
// @Param        request  body      dto.AssignSeatRequest  true  "Seat Assignment"
// @Success      200      {object}  dto.AssignSeatResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /api/v1/booking/seats [put]
func (s *BookingService) AssignSeat(
	ctx context.Context,
	sessionID string,
	req dto.AssignSeatRequest,
) (dto.AssignSeatResponse, error) {
	travelers, err := s.Sessions.Travelers(ctx, sessionID)
	if errors.Is(err, session.ErrNotFound) {
		return dto.AssignSeatResponse{}, ErrNoTravelers
	}

	if err != nil {
		return dto.AssignSeatResponse{}, fmt.Errorf("failed to get travelers: %w", err)
	}

	known := false
	for _, t := range travelers {
		if t.ID == req.TravelerID {
			known = true
			break
		}
	}

	if !known {
		return dto.AssignSeatResponse{}, ErrUnknownTraveler
	}

	seats, err := s.Sessions.Seats(ctx, sessionID)
	if err != nil {
		return dto.AssignSeatResponse{}, fmt.Errorf("failed to get seats: %w", err)
	}

	for travelerID, seat := range seats {
		if seat == req.Seat && travelerID != req.TravelerID {
			return dto.AssignSeatResponse{}, ErrSeatTaken
		}
	}

	seats[req.TravelerID] = req.Seat

	if err := s.Sessions.SetSeats(ctx, sessionID, seats); err != nil {
		return dto.AssignSeatResponse{}, fmt.Errorf("failed to store seats: %w", err)
	}

	return dto.AssignSeatResponse{Seats: seats}, nil
}

// CreateBooking submits the order for the verified offer with the stored
// travelers. The session's submit lock makes concurrent submissions fail fast
// CreateBooking godoc
// @Summary      Create booking
// @Tags         Booking
// @Description  Submit a flight order for the verified offer
// @Param        request  body      dto.CreateBookingRequest  true  "Booking Request"
// @Success      200      {object}  dto.CreateBookingResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Failure      422      {object}  dto.ErrorResponse
// @Failure      502      {object}  dto.ErrorResponse
// @Router       /api/v1/booking [post]
func (s *BookingService) CreateBooking(
	ctx context.Context,
	sessionID string,
	req dto.CreateBookingRequest,
) (dto.CreateBookingResponse, error) {
	acquired, err := s.Sessions.AcquireSubmitLock(ctx, sessionID, s.SubmitLockTimeout)
	if err != nil {
		return dto.CreateBookingResponse{}, fmt.Errorf("failed to acquire submit lock: %w", err)
	}

	if !acquired {
		return dto.CreateBookingResponse{}, ErrBookingInProgress
	}

	defer func() {
		if err := s.Sessions.ReleaseSubmitLock(ctx, sessionID); err != nil {
			slog.WarnContext(ctx, "failed to release submit lock", slog.Any("error", err))
		}
	}()

	cached, err := s.lookupOffer(ctx, sessionID, req.ClientID)
	if err != nil {
		return dto.CreateBookingResponse{}, err
	}

	if !cached.Verified {
		return dto.CreateBookingResponse{}, ErrOfferNotVerified
	}

	travelers, err := s.Sessions.Travelers(ctx, sessionID)
	if errors.Is(err, session.ErrNotFound) || (err == nil && len(travelers) == 0) {
		return dto.CreateBookingResponse{}, ErrNoTravelers
	}

	if err != nil {
		return dto.CreateBookingResponse{}, fmt.Errorf("failed to get travelers: %w", err)
	}

	seats, err := s.Sessions.Seats(ctx, sessionID)
	if err != nil {
		return dto.CreateBookingResponse{}, fmt.Errorf("failed to get seats: %w", err)
	}

	for _, t := range travelers {
		if seats[t.ID] == "" {
			return dto.CreateBookingResponse{}, ErrSeatsIncomplete
		}
	}

	submitted, err := s.submittedOffer(ctx, sessionID, cached)
	if err != nil {
		return dto.CreateBookingResponse{}, err
	}

	order := amadeus.OrderRequest{
		Type:         "flight-order",
		FlightOffers: []amadeus.FlightOffer{submitted},
		Travelers:    traveler.Sanitize(travelers),
		Remarks: &amadeus.Remarks{
			General: []amadeus.GeneralRemark{
				{
					SubType: "GENERAL_MISCELLANEOUS",
					Text:    "ONLINE BOOKING FROM " + strings.ToUpper(s.Agency.Name),
				},
			},
		},
		TicketingAgreement: &amadeus.TicketingAgreement{
			Option: "DELAY_TO_CANCEL",
			Delay:  "6D",
		},
		Contacts: s.buildContacts(req.Contact),
	}

	result, err := s.API.CreateFlightOrder(ctx, order)
	if err != nil {
		slog.ErrorContext(ctx, "order creation failed",
			slog.String("client_id", req.ClientID),
			slog.Any("error", err))

		return dto.CreateBookingResponse{}, bookingError(err)
	}

	reference := result.Reference()

	// the order exists upstream at this point, a store failure must not
	// make the confirmation disappear
	if err := s.Sessions.PutOrder(ctx, sessionID, reference, result); err != nil {
		slog.WarnContext(ctx, "failed to store order",
			slog.String("reference", reference),
			slog.Any("error", err))
	}

	slog.InfoContext(ctx, "booking created", slog.String("reference", reference))

	return dto.CreateBookingResponse{
		Reference: reference,
		Order:     result,
	}, nil
}

// submittedOffer deep-copies the cached offer and applies the selected fare's
// price. The cached original stays untouched.
func (s *BookingService) submittedOffer(
	ctx context.Context,
	sessionID string,
	cached offer.CachedOffer,
) (amadeus.FlightOffer, error) {
	submitted, err := offer.Clone(cached.Offer)
	if err != nil {
		return amadeus.FlightOffer{}, fmt.Errorf("failed to copy offer: %w", err)
	}

	fare, err := s.Sessions.SelectedFare(ctx, sessionID)
	if errors.Is(err, session.ErrNotFound) {
		return submitted, nil
	}

	if err != nil {
		return amadeus.FlightOffer{}, fmt.Errorf("failed to get selected fare: %w", err)
	}

	if fare.Price != "" {
		submitted.Price.Total = fare.Price
		submitted.Price.GrandTotal = fare.Price
	}

	return submitted, nil
}

// buildContacts returns the order contact list: the configured agency contact,
// overridden field by field when the booking request carries its own.
func (s *BookingService) buildContacts(contact *dto.ContactInfo) []amadeus.OrderContact {
	agencyContact := amadeus.OrderContact{
		AddresseeName: amadeus.Name{FirstName: "RESERVATIONS", LastName: "DESK"},
		CompanyName:   s.Agency.Name,
		Purpose:       "STANDARD",
		EmailAddress:  s.Agency.Email,
		Phones: []amadeus.Phone{
			{
				DeviceType:         "LANDLINE",
				CountryCallingCode: s.Agency.CallingCode,
				Number:             s.Agency.Phone,
			},
		},
		Address: &amadeus.Address{
			Lines:       []string{s.Agency.AddressLine},
			PostalCode:  s.Agency.PostalCode,
			CityName:    s.Agency.City,
			CountryCode: s.Agency.CountryCode,
		},
	}

	if contact != nil {
		if contact.Email != "" {
			agencyContact.EmailAddress = contact.Email
		}

		if contact.Phone != "" {
			agencyContact.Phones = []amadeus.Phone{
				{
					DeviceType:         "MOBILE",
					CountryCallingCode: contact.CallingCode,
					Number:             contact.Phone,
				},
			}
		}
	}

	return []amadeus.OrderContact{agencyContact}
}

// bookingError surfaces the upstream error title and detail when the booking
// endpoint returned a structured error, otherwise the generic message.
func bookingError(err error) error {
	var apiErr *amadeus.APIError
	if errors.As(err, &apiErr) && len(apiErr.Errors) > 0 {
		return exception.New(http.StatusUnprocessableEntity, apiErr.Error())
	}

	return ErrBookingFailed
}

// GetBooking retrieves a stored order by booking reference and renders its
// ticket document
// GetBooking godoc
// @Summary      Get booking
// @Tags         Booking
// @Description  Retrieve a confirmed booking and its ticket document
// @Param        reference  path      string  true  "Booking Reference"
// @Success      200        {object}  dto.GetBookingResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/v1/booking/{reference} [get]
func (s *BookingService) GetBooking(
	ctx context.Context,
	sessionID string,
	req dto.GetBookingRequest,
) (dto.GetBookingResponse, error) {
	result, err := s.lookupOrder(ctx, sessionID, req.Reference)
	if err != nil {
		return dto.GetBookingResponse{}, err
	}

	seats, err := s.Sessions.Seats(ctx, sessionID)
	if err != nil {
		slog.WarnContext(ctx, "failed to get seats", slog.Any("error", err))

		seats = map[string]string{}
	}

	fare, fareErr := s.Sessions.SelectedFare(ctx, sessionID)

	return dto.GetBookingResponse{
		Order:  result,
		Ticket: buildTicket(result, seats, fare, fareErr == nil),
	}, nil
}

func (s *BookingService) lookupOrder(ctx context.Context, sessionID, reference string) (amadeus.OrderResult, error) {
	// most retrievals immediately follow the submission
	last, err := s.Sessions.LastOrder(ctx, sessionID)
	if err == nil && last.Reference() == reference {
		return last, nil
	}

	result, err := s.Sessions.OrderByReference(ctx, sessionID, reference)
	if errors.Is(err, session.ErrNotFound) {
		return amadeus.OrderResult{}, ErrBookingNotFound
	}

	if err != nil {
		return amadeus.OrderResult{}, fmt.Errorf("failed to get order: %w", err)
	}

	return result, nil
}

// buildTicket derives the itinerary/invoice document from the confirmed
// order. The same derivation serves the on-screen and print layouts.
func buildTicket(result amadeus.OrderResult, seats map[string]string,
	fare offer.SelectedFare, haveFare bool,
) dto.TicketDocument {
	ticket := dto.TicketDocument{
		Reference: result.Reference(),
		Status:    "CONFIRMED",
		FareBrand: offer.DefaultFareBrand,
		Warnings:  result.Warnings,
	}

	if len(result.Order.FlightOffers) > 0 {
		o := result.Order.FlightOffers[0]

		ticket.FareBrand = offer.BaseFareBrand(o)
		ticket.CheckedBags = offer.IncludedCheckedBags(o)

		total := o.Price.GrandTotal
		if total == "" {
			total = o.Price.Total
		}

		var taxes string
		if o.Price.Base != "" {
			taxes = utils.FormatAmount(utils.ParseAmount(total) - utils.ParseAmount(o.Price.Base))
		}

		ticket.Price = dto.TicketPriceBreakdown{
			BaseFare:       o.Price.Base,
			Taxes:          taxes,
			Total:          total,
			Currency:       o.Price.Currency,
			TotalFormatted: utils.FormatUSD(utils.ParseAmount(total)),
		}

		for _, itinerary := range o.Itineraries {
			for _, segment := range itinerary.Segments {
				ticket.Segments = append(ticket.Segments, dto.TicketSegment{
					CarrierCode:  segment.CarrierCode,
					FlightNumber: segment.CarrierCode + segment.Number,
					Origin:       segment.Departure.IataCode,
					Destination:  segment.Arrival.IataCode,
					DepartureAt:  segment.Departure.At,
					ArrivalAt:    segment.Arrival.At,
				})
			}
		}
	}

	// an unconfirmed upsell tier is not reflected in the upstream offer,
	// its name wins over the branded fare
	if haveFare && !fare.Confirmed && fare.Name != "" {
		ticket.FareBrand = fare.Name
	}

	for _, t := range result.Order.Travelers {
		passenger := dto.TicketPassenger{
			Name:        t.Name.FirstName + " " + t.Name.LastName,
			DateOfBirth: t.DateOfBirth,
			Seat:        seats[t.ID],
		}

		if len(t.Documents) > 0 {
			passenger.DocumentNumber = t.Documents[0].Number
		}

		ticket.Passengers = append(ticket.Passengers, passenger)
	}

	return ticket
}

// ManageBooking acknowledges a post-booking action. Nothing is forwarded
// upstream, the request is recorded as received and echoed back
// ManageBooking godoc
// @Summary      Manage booking
// @Tags         Booking
// @Description  Request a cancellation, refund or reissue for a booking
// @Param        reference  path      string                    true  "Booking Reference"
// @Param        request    body      dto.ManageBookingRequest  true  "Manage Request"
// @Success      200        {object}  dto.ManageBookingResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/v1/booking/{reference}/manage [post]
func (s *BookingService) ManageBooking(
	ctx context.Context,
	sessionID string,
	req dto.ManageBookingRequest,
) (dto.ManageBookingResponse, error) {
	if _, err := s.lookupOrder(ctx, sessionID, req.Reference); err != nil {
		return dto.ManageBookingResponse{}, err
	}

	var message, status string

	switch req.Action {
	case "cancel":
		message = "Your cancellation request has been received. A confirmation email will follow shortly."
		status = "cancellation_requested"
	case "refund":
		message = "Your refund request has been received and will be processed within 7-10 business days."
		status = "refund_requested"
	case "reissue":
		message = "Your reissue request has been received. An agent will contact you with new flight options."
		status = "reissue_requested"
	}

	slog.InfoContext(ctx, "manage booking request",
		slog.String("reference", req.Reference),
		slog.String("action", req.Action))

	return dto.ManageBookingResponse{
		Success:   true,
		Message:   message,
		Status:    status,
		Timestamp: s.now().UTC().Format(time.RFC3339),
		Reason:    req.Reason,
	}, nil
}

// SuggestAirports looks up airport and city suggestions. Keywords shorter
// than two characters return an empty list without an upstream call
// SuggestAirports godoc
// @Summary      Suggest airports
// @Tags         Reference
// @Description  Autocomplete airports and cities by keyword
// @Param        keyword  query     string  true  "Search Keyword"
// @Success      200      {object}  dto.SuggestAirportsResponse
// @Failure      502      {object}  dto.ErrorResponse
// @Router       /api/v1/airports [get]
func (s *BookingService) SuggestAirports(
	ctx context.Context,
	req dto.SuggestAirportsRequest,
) (dto.SuggestAirportsResponse, error) {
	keyword := strings.TrimSpace(req.Keyword)
	if len(keyword) < 2 {
		return dto.SuggestAirportsResponse{Data: []amadeus.Location{}}, nil
	}

	locations, err := s.API.SearchLocations(ctx, keyword)
	if err != nil {
		slog.WarnContext(ctx, "airport suggestion lookup failed",
			slog.String("keyword", keyword),
			slog.Any("error", err))

		return dto.SuggestAirportsResponse{}, ErrSuggestionsFailed
	}

	if locations == nil {
		locations = []amadeus.Location{}
	}

	return dto.SuggestAirportsResponse{Data: locations}, nil
}
