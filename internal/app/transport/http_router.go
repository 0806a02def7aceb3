package transport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/tripway/flight-booking-service/internal/app/config"
	"github.com/tripway/flight-booking-service/internal/app/dto"
	"github.com/tripway/flight-booking-service/internal/app/endpoints"
	httptransport "github.com/tripway/flight-booking-service/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.SessionID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		booking := endpts.BookingEndpoint

		router.Route("/offers", func(router chi.Router) {
			router.Post("/search", httptransport.MakeHandlerFunc(
				booking.SearchOffers,
				httptransport.DecodeRequest[dto.SearchCriteria],
				httptransport.ResponseWithBody,
			))

			router.Get("/{clientId}", httptransport.MakeHandlerFunc(
				booking.GetOffer,
				decodeGetOfferRequest,
				httptransport.ResponseWithBody,
			))

			router.Post("/{clientId}/verify", httptransport.MakeHandlerFunc(
				booking.VerifyPrice,
				decodeVerifyPriceRequest,
				httptransport.ResponseWithBody,
			))

			router.Put("/{clientId}/fare", httptransport.MakeHandlerFunc(
				booking.SelectFare,
				decodeSelectFareRequest,
				httptransport.ResponseWithBody,
			))
		})

		router.Route("/booking", func(router chi.Router) {
			router.Put("/travelers", httptransport.MakeHandlerFunc(
				booking.SaveTravelers,
				httptransport.DecodeRequest[dto.SaveTravelersRequest],
				httptransport.ResponseWithBody,
			))

			router.Put("/seats", httptransport.MakeHandlerFunc(
				booking.AssignSeat,
				httptransport.DecodeRequest[dto.AssignSeatRequest],
				httptransport.ResponseWithBody,
			))

			router.Post("/", httptransport.MakeHandlerFunc(
				booking.CreateBooking,
				httptransport.DecodeRequest[dto.CreateBookingRequest],
				httptransport.CreatedResponse,
			))

			router.Get("/{reference}", httptransport.MakeHandlerFunc(
				booking.GetBooking,
				decodeGetBookingRequest,
				httptransport.ResponseWithBody,
			))

			router.Post("/{reference}/manage", httptransport.MakeHandlerFunc(
				booking.ManageBooking,
				decodeManageBookingRequest,
				httptransport.ResponseWithBody,
			))
		})

		router.Get("/airports", httptransport.MakeHandlerFunc(
			booking.SuggestAirports,
			decodeSuggestAirportsRequest,
			httptransport.ResponseWithBody,
		))
	})

	return router
}

func decodeGetOfferRequest(_ context.Context, r *http.Request) (interface{}, error) {
	return &dto.GetOfferRequest{
		ClientID: chi.URLParam(r, "clientId"),
	}, nil
}

func decodeVerifyPriceRequest(_ context.Context, r *http.Request) (interface{}, error) {
	return &dto.VerifyPriceRequest{
		ClientID: chi.URLParam(r, "clientId"),
	}, nil
}

func decodeSelectFareRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	decoded, err := httptransport.DecodeRequest[dto.SelectFareRequest](ctx, r)
	if err != nil {
		return nil, err
	}

	request, _ := decoded.(*dto.SelectFareRequest)
	request.ClientID = chi.URLParam(r, "clientId")

	return request, nil
}

func decodeGetBookingRequest(_ context.Context, r *http.Request) (interface{}, error) {
	return &dto.GetBookingRequest{
		Reference: chi.URLParam(r, "reference"),
	}, nil
}

func decodeManageBookingRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	decoded, err := httptransport.DecodeRequest[dto.ManageBookingRequest](ctx, r)
	if err != nil {
		return nil, err
	}

	request, _ := decoded.(*dto.ManageBookingRequest)
	request.Reference = chi.URLParam(r, "reference")

	return request, nil
}

func decodeSuggestAirportsRequest(_ context.Context, r *http.Request) (interface{}, error) {
	return &dto.SuggestAirportsRequest{
		Keyword: r.URL.Query().Get("keyword"),
	}, nil
}
