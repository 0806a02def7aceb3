package service

import (
	"net/http"

	"github.com/tripway/flight-booking-service/internal/pkg/exception"
)

var ErrSearchFailed = exception.ApplicationError{
	Message:    "flight search failed",
	StatusCode: http.StatusBadGateway,
}

var ErrOfferNotFound = exception.ApplicationError{
	Message:    "flight offer not found, it may have expired",
	StatusCode: http.StatusNotFound,
}

var ErrPriceVerificationFailed = exception.ApplicationError{
	Message:    "price verification failed, the offer may have expired",
	StatusCode: http.StatusUnprocessableEntity,
}

var ErrOfferNotVerified = exception.ApplicationError{
	Message:    "offer must be price-verified before booking",
	StatusCode: http.StatusConflict,
}

var ErrUnknownFare = exception.ApplicationError{
	Message:    "unknown fare option",
	StatusCode: http.StatusBadRequest,
}

var ErrFareNotVerified = exception.ApplicationError{
	Message:    "fares are only available after price verification",
	StatusCode: http.StatusConflict,
}

var ErrNoTravelers = exception.ApplicationError{
	Message:    "passenger information is required",
	StatusCode: http.StatusBadRequest,
}

var ErrUnknownTraveler = exception.ApplicationError{
	Message:    "seat assigned to unknown traveler",
	StatusCode: http.StatusBadRequest,
}

var ErrSeatTaken = exception.ApplicationError{
	Message:    "this seat is already taken",
	StatusCode: http.StatusConflict,
}

var ErrSeatsIncomplete = exception.ApplicationError{
	Message:    "please select a seat for every passenger",
	StatusCode: http.StatusBadRequest,
}

var ErrBookingInProgress = exception.ApplicationError{
	Message:    "a booking submission is already in progress",
	StatusCode: http.StatusConflict,
}

var ErrBookingNotFound = exception.ApplicationError{
	Message:    "booking not found",
	StatusCode: http.StatusNotFound,
}

var ErrBookingFailed = exception.ApplicationError{
	Message:    "booking failed, please try again",
	StatusCode: http.StatusBadGateway,
}

var ErrSuggestionsFailed = exception.ApplicationError{
	Message:    "failed to fetch airport suggestions",
	StatusCode: http.StatusBadGateway,
}
