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

	"github.com/flight-chat/flight-search-chatbot/internal/infrastructure/timeutil"
)

// tokenExpiryMargin refreshes the token this long before it actually expires,
// so an in-flight request never carries a token about to lapse.
const tokenExpiryMargin = 30 * time.Second

// tokenSource fetches and caches an OAuth2 client-credentials token.
type tokenSource struct {
	authURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	clock        timeutil.Clock

	mu      sync.Mutex
	token   string
	expires time.Time
}

func newTokenSource(authURL, clientID, clientSecret string, httpClient *http.Client, clock timeutil.Clock) *tokenSource {
	return &tokenSource{
		authURL:      authURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   httpClient,
		clock:        clock,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Token returns a valid bearer token, fetching a fresh one when the cached
// token is missing or about to expire.
func (ts *tokenSource) Token(ctx context.Context) (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	now := ts.clock.Now()
	if ts.token != "" && now.Before(ts.expires.Add(-tokenExpiryMargin)) {
		return ts.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", ts.clientID)
	form.Set("client_secret", ts.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ts.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := ts.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request: unexpected status %d", resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", fmt.Errorf("token response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("token response: empty access token")
	}

	ts.token = tr.AccessToken
	ts.expires = now.Add(time.Duration(tr.ExpiresIn) * time.Second)
	return ts.token, nil
}

// invalidate drops the cached token so the next call re-authenticates.
func (ts *tokenSource) invalidate() {
	ts.mu.Lock()
	ts.token = ""
	ts.mu.Unlock()
}
