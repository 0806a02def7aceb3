package dto

import (
	"fmt"
	"net/http"

	"github.com/tripway/flight-booking-service/internal/pkg/amadeus"
	"github.com/tripway/flight-booking-service/internal/pkg/exception"
	"github.com/tripway/flight-booking-service/internal/pkg/offer"
	"github.com/tripway/flight-booking-service/internal/pkg/utils"
)

// SearchCriteria is the flight search form. Origin, destination and departure
// date are hard requirements; their absence aborts before any upstream call.
type SearchCriteria struct {
	TripType      string               `json:"trip_type" validate:"required,oneof=one_way round_trip multi_city"`
	Origin        string               `json:"origin" validate:"required,iata"`
	Destination   string               `json:"destination" validate:"required,iata"`
	DepartureDate string               `json:"departure_date" validate:"required,datetime=2006-01-02"`
	ReturnDate    string               `json:"return_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Adults        int                  `json:"adults" validate:"required,min=1,max=9"`
	Children      int                  `json:"children" validate:"min=0,max=9"`
	Infants       int                  `json:"infants" validate:"min=0,max=9"`
	CabinClass    string               `json:"cabin_class" validate:"required,oneof=economy premium_economy business first"`
	SortOption    *offer.SortOption    `json:"sort_option,omitempty"`
	FilterOption  *offer.FilterOption  `json:"filter_option,omitempty"`
}

func (s *SearchCriteria) Bind(r *http.Request) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (s *SearchCriteria) Validate() error {
	if err := ValidateSingleError(s); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	// lap infants travel on an adult's seat
	if s.Infants > s.Adults {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "infants must not exceed adults",
		}
	}

	if s.TripType == "round_trip" && s.ReturnDate == "" {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "return_date is required for a round trip",
		}
	}

	if s.SortOption != nil && !offer.AllowedSortField[s.SortOption.Field] {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    fmt.Sprintf("Invalid sort field %s", s.SortOption.Field),
		}
	}

	if s.FilterOption != nil {
		for _, bucket := range s.FilterOption.Stops {
			if !offer.AllowedStopsBucket[bucket] {
				return exception.ApplicationError{
					StatusCode: http.StatusBadRequest,
					Message:    fmt.Sprintf("Invalid stops bucket %s", bucket),
				}
			}
		}

		for _, bucket := range s.FilterOption.DepartureTimes {
			if !offer.AllowedTimeBucket[bucket] {
				return exception.ApplicationError{
					StatusCode: http.StatusBadRequest,
					Message:    fmt.Sprintf("Invalid departure time bucket %s", bucket),
				}
			}
		}
	}

	return nil
}

// Metadata describes one search result set.
type Metadata struct {
	TotalResults    int   `json:"total_results"`
	ExpiredExcluded int   `json:"expired_excluded"`
	Generation      int64 `json:"generation"`
	SearchTimeMs    int   `json:"search_time_ms"`
}

// OfferView is the normalized display summary of a cached offer. The raw
// upstream payload rides alongside it so detail pages need no second fetch.
type OfferView struct {
	ClientID          string `json:"client_id"`
	CarrierCode       string `json:"carrier_code"`
	FlightNumber      string `json:"flight_number"`
	Origin            string `json:"origin"`
	Destination       string `json:"destination"`
	DepartureAt       string `json:"departure_at"`
	ArrivalAt         string `json:"arrival_at"`
	DurationMinutes   int64  `json:"duration_minutes"`
	DurationFormatted string `json:"duration_formatted"`
	Stops             int    `json:"stops"`
	PriceTotal        string `json:"price_total"`
	PriceCurrency     string `json:"price_currency"`
	PriceFormatted    string `json:"price_formatted"`
	LastTicketingDate string `json:"last_ticketing_date,omitempty"`
	Verified          bool   `json:"verified"`
}

// NewOfferView normalizes a cached offer for display.
func NewOfferView(o offer.CachedOffer) OfferView {
	view := OfferView{
		ClientID:          o.ClientID,
		CarrierCode:       offer.CarrierCode(o.Offer),
		Stops:             offer.Stops(o.Offer),
		PriceTotal:        o.Offer.Price.Total,
		PriceCurrency:     o.Offer.Price.Currency,
		PriceFormatted:    utils.FormatUSD(utils.ParseAmount(o.Offer.Price.Total)),
		LastTicketingDate: o.Offer.LastTicketingDate,
		Verified:          o.Verified,
	}

	var totalMinutes int64
	for _, itinerary := range o.Offer.Itineraries {
		totalMinutes += utils.ParseISODuration(itinerary.Duration)
	}

	view.DurationMinutes = totalMinutes
	view.DurationFormatted = utils.ConvertMinutesToDuration(totalMinutes)

	if len(o.Offer.Itineraries) > 0 && len(o.Offer.Itineraries[0].Segments) > 0 {
		segments := o.Offer.Itineraries[0].Segments
		first := segments[0]
		last := segments[len(segments)-1]

		view.FlightNumber = first.CarrierCode + first.Number
		view.Origin = first.Departure.IataCode
		view.Destination = last.Arrival.IataCode
		view.DepartureAt = first.Departure.At
		view.ArrivalAt = last.Arrival.At
	}

	return view
}

// SearchOffersResponse is the search endpoint payload.
type SearchOffersResponse struct {
	SearchCriteria SearchCriteria      `json:"search_criteria"`
	Metadata       Metadata            `json:"metadata"`
	Offers         []OfferView         `json:"offers"`
	RawOffers      []offer.CachedOffer `json:"raw_offers"`
}

// GetOfferRequest resolves a cached offer by client identifier.
type GetOfferRequest struct {
	ClientID string `json:"client_id" validate:"required"`
}

type GetOfferResponse struct {
	Offer offer.CachedOffer `json:"offer"`
	View  OfferView         `json:"view"`
}

// VerifyPriceRequest triggers the pre-booking price re-validation.
type VerifyPriceRequest struct {
	ClientID string `json:"client_id" validate:"required"`
}

type VerifyPriceResponse struct {
	Offer        offer.CachedOffer  `json:"offer"`
	View         OfferView          `json:"view"`
	SelectedFare offer.SelectedFare `json:"selected_fare"`
	FareOptions  []offer.FareOption `json:"fare_options"`
}

// SelectFareRequest picks one of the presented fare bundles by name.
type SelectFareRequest struct {
	ClientID string `json:"-"`
	Name     string `json:"name" validate:"required"`
}

func (s *SelectFareRequest) Bind(r *http.Request) error {
	if err := ValidateSingleError(s); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

type SelectFareResponse struct {
	SelectedFare offer.SelectedFare `json:"selected_fare"`
}

// SaveTravelersRequest stores the passenger drafts for the session.
type SaveTravelersRequest struct {
	Travelers []amadeus.Traveler `json:"travelers" validate:"required,min=1"`
}

func (s *SaveTravelersRequest) Bind(r *http.Request) error {
	if err := ValidateSingleError(s); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

type SaveTravelersResponse struct {
	Travelers []amadeus.Traveler `json:"travelers"`
}

// AssignSeatRequest assigns one seat to one traveler.
type AssignSeatRequest struct {
	TravelerID string `json:"traveler_id" validate:"required"`
	Seat       string `json:"seat" validate:"required,seat"`
}

func (s *AssignSeatRequest) Bind(r *http.Request) error {
	if err := ValidateSingleError(s); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

type AssignSeatResponse struct {
	Seats map[string]string `json:"seats"`
}

// ContactInfo is the booking-level contact. When absent the configured agency
// contact is attached instead.
type ContactInfo struct {
	Email       string `json:"email" validate:"omitempty,email"`
	CallingCode string `json:"calling_code,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

// CreateBookingRequest submits the order for the given verified offer.
type CreateBookingRequest struct {
	ClientID string       `json:"client_id" validate:"required"`
	Contact  *ContactInfo `json:"contact,omitempty"`
}

func (c *CreateBookingRequest) Bind(r *http.Request) error {
	if err := ValidateSingleError(c); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

type CreateBookingResponse struct {
	Reference string              `json:"reference"`
	Order     amadeus.OrderResult `json:"order"`
}

// GetBookingRequest retrieves a stored order by booking reference.
type GetBookingRequest struct {
	Reference string `json:"reference" validate:"required"`
}

// TicketPassenger is one passenger line of the ticket document.
type TicketPassenger struct {
	Name           string `json:"name"`
	DateOfBirth    string `json:"date_of_birth"`
	DocumentNumber string `json:"document_number,omitempty"`
	Seat           string `json:"seat,omitempty"`
}

// TicketSegment is one flight leg of the ticket document.
type TicketSegment struct {
	CarrierCode  string `json:"carrier_code"`
	FlightNumber string `json:"flight_number"`
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	DepartureAt  string `json:"departure_at"`
	ArrivalAt    string `json:"arrival_at"`
}

// TicketPriceBreakdown derives its figures from whichever of the selected
// fare and the offer's own totals is authoritative. The same struct serves
// the on-screen and print layouts so the derivation cannot diverge.
type TicketPriceBreakdown struct {
	BaseFare       string `json:"base_fare"`
	Taxes          string `json:"taxes"`
	Total          string `json:"total"`
	Currency       string `json:"currency"`
	TotalFormatted string `json:"total_formatted"`
}

// TicketDocument is the itinerary/invoice view of a confirmed order.
type TicketDocument struct {
	Reference   string               `json:"reference"`
	Status      string               `json:"status"`
	FareBrand   string               `json:"fare_brand"`
	CheckedBags int                  `json:"checked_bags"`
	Segments    []TicketSegment      `json:"segments"`
	Passengers  []TicketPassenger    `json:"passengers"`
	Price       TicketPriceBreakdown `json:"price"`
	Warnings    []amadeus.Warning    `json:"warnings,omitempty"`
}

type GetBookingResponse struct {
	Order  amadeus.OrderResult `json:"order"`
	Ticket TicketDocument      `json:"ticket"`
}

// ManageBookingRequest drives the post-booking actions. These endpoints echo
// success without persisting anywhere real.
type ManageBookingRequest struct {
	Reference string `json:"-"`
	Action    string `json:"action" validate:"required,oneof=cancel refund reissue"`
	Reason    string `json:"reason,omitempty"`
}

func (m *ManageBookingRequest) Bind(r *http.Request) error {
	if err := ValidateSingleError(m); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

type ManageBookingResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Reason    string `json:"reason,omitempty"`
}

// SuggestAirportsRequest is the free-text location lookup.
type SuggestAirportsRequest struct {
	Keyword string `json:"keyword"`
}

type SuggestAirportsResponse struct {
	Data []amadeus.Location `json:"data"`
}
