package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// tokenSource manages the single shared OAuth2 client-credentials token. The
// token is cached until shortly before its declared expiry and refreshed
// lazily; concurrent callers block on the mutex so only one refresh happens.
type tokenSource struct {
	authURL      string
	clientID     string
	clientSecret string
	expirySkew   time.Duration
	httpClient   *http.Client

	mu     sync.Mutex
	token  string
	expiry time.Time
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

func newTokenSource(authURL, clientID, clientSecret string,
	expirySkew time.Duration, httpClient *http.Client) *tokenSource {
	return &tokenSource{
		authURL:      authURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		expirySkew:   expirySkew,
		httpClient:   httpClient,
	}
}

// Token returns the cached access token, requesting a fresh one when the
// cached token is absent or inside the expiry skew window.
func (s *tokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && time.Now().Before(s.expiry) {
		return s.token, nil
	}

	if s.clientID == "" || s.clientSecret == "" {
		return "", fmt.Errorf("amadeus credentials are missing")
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", s.clientID)
	form.Set("client_secret", s.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.authURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request failed: status %d: %s", resp.StatusCode, string(body))
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}

	if tok.AccessToken == "" {
		return "", fmt.Errorf("token response carried no access token")
	}

	s.token = tok.AccessToken
	s.expiry = time.Now().Add(time.Duration(tok.ExpiresIn)*time.Second - s.expirySkew)

	return s.token, nil
}

// Invalidate drops the cached token so the next call refreshes.
func (s *tokenSource) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.expiry = time.Time{}
}
