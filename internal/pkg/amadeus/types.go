// Package amadeus is a typed client for the Amadeus self-service flight APIs:
// flight-offers search, flight-offers pricing, flight-orders creation and
// airport/city reference data. It owns the upstream wire shapes so that schema
// drift stays isolated at this boundary.
package amadeus

import "fmt"

// FlightOffer is a priced itinerary candidate as returned by the search and
// pricing endpoints. Fields mirror the upstream payload; nothing local is ever
// added here, client-side identifiers live in the offer envelope one layer up.
type FlightOffer struct {
	Type                     string           `json:"type"`
	ID                       string           `json:"id"`
	Source                   string           `json:"source,omitempty"`
	InstantTicketingRequired bool             `json:"instantTicketingRequired,omitempty"`
	NonHomogeneous           bool             `json:"nonHomogeneous,omitempty"`
	OneWay                   bool             `json:"oneWay,omitempty"`
	LastTicketingDate        string           `json:"lastTicketingDate,omitempty"`
	NumberOfBookableSeats    int              `json:"numberOfBookableSeats,omitempty"`
	Itineraries              []Itinerary      `json:"itineraries"`
	Price                    Price            `json:"price"`
	PricingOptions           *PricingOptions  `json:"pricingOptions,omitempty"`
	ValidatingAirlineCodes   []string         `json:"validatingAirlineCodes,omitempty"`
	TravelerPricings         []TravelerPricing `json:"travelerPricings,omitempty"`
}

type Itinerary struct {
	Duration string    `json:"duration,omitempty"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	ID              string       `json:"id,omitempty"`
	Departure       FlightPoint  `json:"departure"`
	Arrival         FlightPoint  `json:"arrival"`
	CarrierCode     string       `json:"carrierCode"`
	Number          string       `json:"number"`
	Aircraft        *Aircraft    `json:"aircraft,omitempty"`
	Operating       *Operating   `json:"operating,omitempty"`
	Duration        string       `json:"duration,omitempty"`
	NumberOfStops   int          `json:"numberOfStops,omitempty"`
	BlacklistedInEU bool         `json:"blacklistedInEU,omitempty"`
}

type FlightPoint struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

type Aircraft struct {
	Code string `json:"code"`
}

type Operating struct {
	CarrierCode string `json:"carrierCode"`
}

// Price carries upstream decimal amounts as strings; they are never converted
// to floats on the wire path.
type Price struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	Base       string `json:"base,omitempty"`
	Fees       []Fee  `json:"fees,omitempty"`
	GrandTotal string `json:"grandTotal,omitempty"`
}

type Fee struct {
	Amount string `json:"amount"`
	Type   string `json:"type"`
}

type PricingOptions struct {
	FareType                []string `json:"fareType,omitempty"`
	IncludedCheckedBagsOnly bool     `json:"includedCheckedBagsOnly,omitempty"`
}

type TravelerPricing struct {
	TravelerID           string                `json:"travelerId"`
	FareOption           string                `json:"fareOption,omitempty"`
	TravelerType         string                `json:"travelerType"`
	Price                Price                 `json:"price"`
	FareDetailsBySegment []FareDetailsBySegment `json:"fareDetailsBySegment,omitempty"`
}

type FareDetailsBySegment struct {
	SegmentID           string       `json:"segmentId"`
	Cabin               string       `json:"cabin,omitempty"`
	FareBasis           string       `json:"fareBasis,omitempty"`
	BrandedFare         string       `json:"brandedFare,omitempty"`
	Class               string       `json:"class,omitempty"`
	IncludedCheckedBags *CheckedBags `json:"includedCheckedBags,omitempty"`
}

type CheckedBags struct {
	Quantity int    `json:"quantity,omitempty"`
	Weight   int    `json:"weight,omitempty"`
	WeightUnit string `json:"weightUnit,omitempty"`
}

// Traveler is the order-creation passenger shape.
type Traveler struct {
	ID          string     `json:"id"`
	DateOfBirth string     `json:"dateOfBirth"`
	Name        Name       `json:"name"`
	Gender      string     `json:"gender"`
	Contact     Contact    `json:"contact"`
	Documents   []Document `json:"documents,omitempty"`
}

type Name struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type Contact struct {
	EmailAddress string  `json:"emailAddress"`
	Phones       []Phone `json:"phones,omitempty"`
}

type Phone struct {
	DeviceType         string `json:"deviceType"`
	CountryCallingCode string `json:"countryCallingCode"`
	Number             string `json:"number"`
}

type Document struct {
	DocumentType    string `json:"documentType"`
	Number          string `json:"number"`
	ExpiryDate      string `json:"expiryDate,omitempty"`
	IssuanceCountry string `json:"issuanceCountry,omitempty"`
	Nationality     string `json:"nationality,omitempty"`
	Holder          bool   `json:"holder"`
}

// SearchRequest is the flight-offers search body. Travelers and
// origin-destinations are pre-expanded by the caller.
type SearchRequest struct {
	CurrencyCode       string              `json:"currencyCode"`
	OriginDestinations []OriginDestination `json:"originDestinations"`
	Travelers          []SearchTraveler    `json:"travelers"`
	Sources            []string            `json:"sources"`
	SearchCriteria     SearchBodyCriteria  `json:"searchCriteria"`
}

type OriginDestination struct {
	ID                      string        `json:"id"`
	OriginLocationCode      string        `json:"originLocationCode"`
	DestinationLocationCode string        `json:"destinationLocationCode"`
	DepartureDateTimeRange  DateTimeRange `json:"departureDateTimeRange"`
}

type DateTimeRange struct {
	Date string `json:"date"`
}

type SearchTraveler struct {
	ID           string `json:"id"`
	TravelerType string `json:"travelerType"`
}

type SearchBodyCriteria struct {
	MaxFlightOffers int           `json:"maxFlightOffers"`
	FlightFilters   FlightFilters `json:"flightFilters"`
}

type FlightFilters struct {
	CabinRestrictions []CabinRestriction `json:"cabinRestrictions"`
}

type CabinRestriction struct {
	Cabin                string   `json:"cabin"`
	Coverage             string   `json:"coverage"`
	OriginDestinationIDs []string `json:"originDestinationIds"`
}

type searchResponse struct {
	Data []FlightOffer `json:"data"`
}

type pricingRequest struct {
	Data pricingData `json:"data"`
}

type pricingData struct {
	Type         string        `json:"type"`
	FlightOffers []FlightOffer `json:"flightOffers"`
}

type pricingResponse struct {
	Data struct {
		Type         string        `json:"type"`
		FlightOffers []FlightOffer `json:"flightOffers"`
	} `json:"data"`
}

// OrderRequest is the flight-orders creation body.
type OrderRequest struct {
	Type               string              `json:"type"`
	FlightOffers       []FlightOffer       `json:"flightOffers"`
	Travelers          []Traveler          `json:"travelers"`
	Remarks            *Remarks            `json:"remarks,omitempty"`
	TicketingAgreement *TicketingAgreement `json:"ticketingAgreement,omitempty"`
	Contacts           []OrderContact      `json:"contacts,omitempty"`
}

type Remarks struct {
	General []GeneralRemark `json:"general,omitempty"`
}

type GeneralRemark struct {
	SubType string `json:"subType"`
	Text    string `json:"text"`
}

type TicketingAgreement struct {
	Option string `json:"option"`
	Delay  string `json:"delay,omitempty"`
}

type OrderContact struct {
	AddresseeName Name     `json:"addresseeName"`
	CompanyName   string   `json:"companyName,omitempty"`
	Purpose       string   `json:"purpose"`
	Phones        []Phone  `json:"phones,omitempty"`
	EmailAddress  string   `json:"emailAddress"`
	Address       *Address `json:"address,omitempty"`
}

type Address struct {
	Lines       []string `json:"lines,omitempty"`
	PostalCode  string   `json:"postalCode,omitempty"`
	CityName    string   `json:"cityName,omitempty"`
	CountryCode string   `json:"countryCode,omitempty"`
}

// Order is a confirmed flight order. AssociatedRecords carry the PNR-style
// booking references used for later retrieval.
type Order struct {
	Type              string             `json:"type"`
	ID                string             `json:"id"`
	QueuingOfficeID   string             `json:"queuingOfficeId,omitempty"`
	AssociatedRecords []AssociatedRecord `json:"associatedRecords,omitempty"`
	FlightOffers      []FlightOffer      `json:"flightOffers"`
	Travelers         []Traveler         `json:"travelers"`
	Contacts          []OrderContact     `json:"contacts,omitempty"`
}

type AssociatedRecord struct {
	Reference        string `json:"reference"`
	CreationDate     string `json:"creationDate,omitempty"`
	OriginSystemCode string `json:"originSystemCode,omitempty"`
	FlightOfferID    string `json:"flightOfferId,omitempty"`
}

type orderEnvelope struct {
	Data     Order     `json:"data"`
	Warnings []Warning `json:"warnings,omitempty"`
}

type Warning struct {
	Code   int    `json:"code,omitempty"`
	Title  string `json:"title,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// OrderResult pairs the confirmed order with any upstream warnings.
type OrderResult struct {
	Order    Order     `json:"order"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// Reference returns the first associated PNR reference, falling back to the
// upstream order id when the booking system returned none.
func (r OrderResult) Reference() string {
	if len(r.Order.AssociatedRecords) > 0 && r.Order.AssociatedRecords[0].Reference != "" {
		return r.Order.AssociatedRecords[0].Reference
	}

	return r.Order.ID
}

// Location is an airport or city suggestion from the reference-data endpoint.
type Location struct {
	Type     string          `json:"type"`
	SubType  string          `json:"subType"`
	Name     string          `json:"name"`
	IataCode string          `json:"iataCode"`
	Address  LocationAddress `json:"address"`
}

type LocationAddress struct {
	CityName    string `json:"cityName,omitempty"`
	CountryName string `json:"countryName,omitempty"`
}

type locationResponse struct {
	Data []Location `json:"data"`
}

// APIError is the structured error body the Amadeus endpoints return on
// failure. The first entry's title and detail is what users see.
type APIError struct {
	StatusCode int           `json:"-"`
	Errors     []ErrorDetail `json:"errors"`
	Message    string        `json:"message,omitempty"`
}

type ErrorDetail struct {
	Status int    `json:"status,omitempty"`
	Code   int64  `json:"code,omitempty"`
	Title  string `json:"title,omitempty"`
	Detail string `json:"detail,omitempty"`
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		first := e.Errors[0]
		if first.Detail != "" {
			return fmt.Sprintf("%s: %s", first.Title, first.Detail)
		}

		return first.Title
	}

	if e.Message != "" {
		return e.Message
	}

	return fmt.Sprintf("amadeus api error: status %d", e.StatusCode)
}
