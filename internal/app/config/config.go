package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP     HTTP       `mapstructure:",squash"`
	Redis    Redis      `mapstructure:",squash"`
	Amadeus  Amadeus    `mapstructure:",squash"`
	Session  Session    `mapstructure:",squash"`
	Agency   Agency     `mapstructure:",squash"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

// Amadeus holds the upstream flight API configuration. BaseURL points at the
// v2 shopping surface, BaseURLV1 at the v1 booking/reference-data surface.
type Amadeus struct {
	BaseURL         string        `mapstructure:"AMADEUS_BASE_URL"`
	BaseURLV1       string        `mapstructure:"AMADEUS_BASE_URL_V1"`
	AuthURL         string        `mapstructure:"AMADEUS_AUTH_URL"`
	ClientID        string        `mapstructure:"AMADEUS_CLIENT_ID"`
	ClientSecret    string        `mapstructure:"AMADEUS_CLIENT_SECRET"`
	Timeout         time.Duration `mapstructure:"AMADEUS_TIMEOUT"`
	TokenExpirySkew time.Duration `mapstructure:"AMADEUS_TOKEN_EXPIRY_SKEW"`
	RateLimitRPS    int           `mapstructure:"AMADEUS_RATE_LIMIT"`
	MaxOffers       int           `mapstructure:"AMADEUS_MAX_OFFERS"`
	CurrencyCode    string        `mapstructure:"AMADEUS_CURRENCY_CODE"`
}

// Session controls the per-user booking session store.
type Session struct {
	TTL               time.Duration `mapstructure:"SESSION_TTL"`
	SubmitLockTimeout time.Duration `mapstructure:"SESSION_SUBMIT_LOCK_TIMEOUT"`
	IDGenNode         int64         `mapstructure:"SESSION_IDGEN_NODE"`
}

// Agency is the default agency contact attached to an order when the booking
// request carries none of its own.
type Agency struct {
	Name        string `mapstructure:"AGENCY_NAME"`
	Email       string `mapstructure:"AGENCY_EMAIL"`
	CallingCode string `mapstructure:"AGENCY_PHONE_COUNTRY_CODE"`
	Phone       string `mapstructure:"AGENCY_PHONE_NUMBER"`
	AddressLine string `mapstructure:"AGENCY_ADDRESS_LINE"`
	PostalCode  string `mapstructure:"AGENCY_POSTAL_CODE"`
	City        string `mapstructure:"AGENCY_CITY"`
	CountryCode string `mapstructure:"AGENCY_COUNTRY_CODE"`
}
