package amadeus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-redis/redis_rate/v10"

	"github.com/tripway/flight-booking-service/internal/pkg/exception"
)

var ErrRateLimitExceeded = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "flight api rate limit exceeded",
}

// Config for the Amadeus client.
type Config struct {
	BaseURL         string
	BaseURLV1       string
	AuthURL         string
	ClientID        string
	ClientSecret    string
	Timeout         time.Duration
	TokenExpirySkew time.Duration
	RateLimitRPS    int
	Limiter         *redis_rate.Limiter
}

// Client calls the Amadeus self-service APIs with a shared lazily refreshed
// OAuth token and a Redis-backed rate limiter in front of every request.
type Client struct {
	baseURL      string
	baseURLV1    string
	rateLimitRPS int
	limiter      *redis_rate.Limiter
	httpClient   *http.Client
	tokens       *tokenSource
}

func NewClient(cfg Config) *Client {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	return &Client{
		baseURL:      cfg.BaseURL,
		baseURLV1:    cfg.BaseURLV1,
		rateLimitRPS: cfg.RateLimitRPS,
		limiter:      cfg.Limiter,
		httpClient:   httpClient,
		tokens: newTokenSource(cfg.AuthURL, cfg.ClientID, cfg.ClientSecret,
			cfg.TokenExpirySkew, httpClient),
	}
}

// SearchFlightOffers runs a flight-offers search and returns the raw offers.
func (c *Client) SearchFlightOffers(ctx context.Context, req SearchRequest) ([]FlightOffer, error) {
	var resp searchResponse
	if err := c.post(ctx, c.baseURL+"/shopping/flight-offers", "search", req, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

// PriceFlightOffer re-validates a single offer against the pricing endpoint
// and returns the confirmed version.
func (c *Client) PriceFlightOffer(ctx context.Context, offer FlightOffer) (FlightOffer, error) {
	req := pricingRequest{
		Data: pricingData{
			Type:         "flight-offers-pricing",
			FlightOffers: []FlightOffer{offer},
		},
	}

	var resp pricingResponse
	if err := c.post(ctx, c.baseURLV1+"/shopping/flight-offers/pricing", "pricing", req, &resp); err != nil {
		return FlightOffer{}, err
	}

	if len(resp.Data.FlightOffers) == 0 {
		return FlightOffer{}, &APIError{
			StatusCode: http.StatusBadGateway,
			Message:    "pricing response carried no flight offer",
		}
	}

	return resp.Data.FlightOffers[0], nil
}

// CreateFlightOrder submits a single atomic order-creation request.
func (c *Client) CreateFlightOrder(ctx context.Context, order OrderRequest) (OrderResult, error) {
	req := struct {
		Data OrderRequest `json:"data"`
	}{Data: order}

	var resp orderEnvelope
	if err := c.post(ctx, c.baseURLV1+"/booking/flight-orders", "orders", req, &resp); err != nil {
		return OrderResult{}, err
	}

	return OrderResult{Order: resp.Data, Warnings: resp.Warnings}, nil
}

// SearchLocations looks up airport and city suggestions for a keyword.
func (c *Client) SearchLocations(ctx context.Context, keyword string) ([]Location, error) {
	if err := c.allow(ctx, "locations"); err != nil {
		return nil, err
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	endpoint := fmt.Sprintf(
		"%s/reference-data/locations?keyword=%s&subType=AIRPORT,CITY&view=FULL&sort=analytics.travelers.score",
		c.baseURLV1, url.QueryEscape(keyword))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build locations request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)

	var resp locationResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

func (c *Client) post(ctx context.Context, endpoint, limitKey string, body, out interface{}) error {
	if err := c.allow(ctx, limitKey); err != nil {
		return err
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.tokens.Invalidate()
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(resp.StatusCode, body)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}

	return nil
}

// allow consumes one rate-limiter token for the given operation. A nil
// limiter disables limiting.
func (c *Client) allow(ctx context.Context, key string) error {
	if c.limiter == nil || c.rateLimitRPS <= 0 {
		return nil
	}

	res, err := c.limiter.Allow(ctx, "amadeus:limit:"+key, redis_rate.PerSecond(c.rateLimitRPS))
	if err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}

	if res.Allowed == 0 {
		return ErrRateLimitExceeded
	}

	return nil
}

// decodeAPIError parses the structured error body when present, falling back
// to the raw payload as a message.
func decodeAPIError(statusCode int, body []byte) error {
	apiErr := &APIError{StatusCode: statusCode}

	if err := json.Unmarshal(body, apiErr); err != nil || (len(apiErr.Errors) == 0 && apiErr.Message == "") {
		apiErr.Errors = nil
		apiErr.Message = string(body)
	}

	return apiErr
}
