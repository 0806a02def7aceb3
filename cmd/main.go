package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"

	"github.com/tripway/flight-booking-service/internal/app/config"
	"github.com/tripway/flight-booking-service/internal/app/dto"
	"github.com/tripway/flight-booking-service/internal/app/endpoints"
	"github.com/tripway/flight-booking-service/internal/app/service"
	"github.com/tripway/flight-booking-service/internal/app/transport"
	"github.com/tripway/flight-booking-service/internal/pkg/amadeus"
	"github.com/tripway/flight-booking-service/internal/pkg/logger"
	"github.com/tripway/flight-booking-service/internal/pkg/offer"
	"github.com/tripway/flight-booking-service/internal/pkg/session"
)

// @title           Flight Booking Service API
// @version         0.0.1
// @description     flight-booking-service
// @host      localhost:8080
// @BasePath  /
func main() {

	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	endpts := makeEndpoints(ctx, &cfg)
	router := transport.MakeHTTPRouter(&cfg, endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	if err := server.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config) endpoints.Endpoints {
	// init redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	// init service endpoint
	return endpoints.Endpoints{
		BookingEndpoint: makeBookingEndpoint(cfg, redisClient),
	}
}

func makeBookingEndpoint(cfg *config.Config, redisClient *redis.Client) endpoints.BookingEndpoint {

	// upstream flight api client
	flightAPI := amadeus.NewClient(amadeus.Config{
		BaseURL:         cfg.Amadeus.BaseURL,
		BaseURLV1:       cfg.Amadeus.BaseURLV1,
		AuthURL:         cfg.Amadeus.AuthURL,
		ClientID:        cfg.Amadeus.ClientID,
		ClientSecret:    cfg.Amadeus.ClientSecret,
		Timeout:         cfg.Amadeus.Timeout,
		TokenExpirySkew: cfg.Amadeus.TokenExpirySkew,
		RateLimitRPS:    cfg.Amadeus.RateLimitRPS,
		Limiter:         redis_rate.NewLimiter(redisClient),
	})

	// session store
	sessionStore := session.NewStore(redisClient, cfg.Session.TTL)

	// client offer id generator
	idGenerator, err := offer.NewIDGenerator(cfg.Session.IDGenNode)
	if err != nil {
		slog.Error("failed to init id generator", slog.String("error", err.Error()))
		panic(err)
	}

	// service
	bookingService := service.NewBookingService(flightAPI, sessionStore, idGenerator,
		cfg.Amadeus, cfg.Session, cfg.Agency)

	// endpoint
	return endpoints.MakeBookingEndpoint(bookingService)
}
