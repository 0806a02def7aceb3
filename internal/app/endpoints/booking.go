package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"

	"github.com/tripway/flight-booking-service/internal/app/dto"
	httptransport "github.com/tripway/flight-booking-service/internal/pkg/transport/http"
)

// BookingService is the application surface exposed over HTTP.
type BookingService interface {
	SearchOffers(ctx context.Context, sessionID string, req dto.SearchCriteria) (dto.SearchOffersResponse, error)
	GetOffer(ctx context.Context, sessionID string, req dto.GetOfferRequest) (dto.GetOfferResponse, error)
	VerifyPrice(ctx context.Context, sessionID string, req dto.VerifyPriceRequest) (dto.VerifyPriceResponse, error)
	SelectFare(ctx context.Context, sessionID string, req dto.SelectFareRequest) (dto.SelectFareResponse, error)
	SaveTravelers(ctx context.Context, sessionID string, req dto.SaveTravelersRequest) (dto.SaveTravelersResponse, error)
	AssignSeat(ctx context.Context, sessionID string, req dto.AssignSeatRequest) (dto.AssignSeatResponse, error)
	CreateBooking(ctx context.Context, sessionID string, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetBooking(ctx context.Context, sessionID string, req dto.GetBookingRequest) (dto.GetBookingResponse, error)
	ManageBooking(ctx context.Context, sessionID string, req dto.ManageBookingRequest) (dto.ManageBookingResponse, error)
	SuggestAirports(ctx context.Context, req dto.SuggestAirportsRequest) (dto.SuggestAirportsResponse, error)
}

// Endpoints holds every endpoint group of the service.
type Endpoints struct {
	BookingEndpoint BookingEndpoint
}

type BookingEndpoint struct {
	SearchOffers    endpoint.Endpoint
	GetOffer        endpoint.Endpoint
	VerifyPrice     endpoint.Endpoint
	SelectFare      endpoint.Endpoint
	SaveTravelers   endpoint.Endpoint
	AssignSeat      endpoint.Endpoint
	CreateBooking   endpoint.Endpoint
	GetBooking      endpoint.Endpoint
	ManageBooking   endpoint.Endpoint
	SuggestAirports endpoint.Endpoint
}

func MakeBookingEndpoint(service BookingService) BookingEndpoint {
	return BookingEndpoint{
		SearchOffers:    makeSearchOffersEndpoint(service),
		GetOffer:        makeGetOfferEndpoint(service),
		VerifyPrice:     makeVerifyPriceEndpoint(service),
		SelectFare:      makeSelectFareEndpoint(service),
		SaveTravelers:   makeSaveTravelersEndpoint(service),
		AssignSeat:      makeAssignSeatEndpoint(service),
		CreateBooking:   makeCreateBookingEndpoint(service),
		GetBooking:      makeGetBookingEndpoint(service),
		ManageBooking:   makeManageBookingEndpoint(service),
		SuggestAirports: makeSuggestAirportsEndpoint(service),
	}
}

func makeSearchOffersEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchCriteria)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.SearchOffers(ctx, httptransport.SessionIDFromContext(ctx), *request)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return response, nil
	}
}

func makeGetOfferEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.GetOfferRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.GetOffer(ctx, httptransport.SessionIDFromContext(ctx), *request)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return response, nil
	}
}

func makeVerifyPriceEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.VerifyPriceRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.VerifyPrice(ctx, httptransport.SessionIDFromContext(ctx), *request)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return response, nil
	}
}

func makeSelectFareEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SelectFareRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.SelectFare(ctx, httptransport.SessionIDFromContext(ctx), *request)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return response, nil
	}
}

func makeSaveTravelersEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SaveTravelersRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.SaveTravelers(ctx, httptransport.SessionIDFromContext(ctx), *request)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return response, nil
	}
}

func makeAssignSeatEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.AssignSeatRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.AssignSeat(ctx, httptransport.SessionIDFromContext(ctx), *request)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return response, nil
	}
}

func makeCreateBookingEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.CreateBookingRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.CreateBooking(ctx, httptransport.SessionIDFromContext(ctx), *request)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return response, nil
	}
}

func makeGetBookingEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.GetBookingRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.GetBooking(ctx, httptransport.SessionIDFromContext(ctx), *request)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return response, nil
	}
}

func makeManageBookingEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.ManageBookingRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.ManageBooking(ctx, httptransport.SessionIDFromContext(ctx), *request)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return response, nil
	}
}

func makeSuggestAirportsEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SuggestAirportsRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.SuggestAirports(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return response, nil
	}
}
