// Package airports implements the airport lookup collaborator over its HTTP
// API. Free-text location input resolves to ranked candidate airports.
package airports

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/flight-chat/flight-search-chatbot/internal/domain"
	"github.com/flight-chat/flight-search-chatbot/internal/infrastructure/logger"
	"github.com/flight-chat/flight-search-chatbot/internal/infrastructure/retry"
)

// DefaultTimeout bounds a single lookup request.
const DefaultTimeout = 5 * time.Second

// Client calls the airport lookup API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retryCfg   retry.Config
	log        *logger.Logger
}

var _ domain.AirportLookup = (*Client)(nil)

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRetryConfig replaces the retry policy.
func WithRetryConfig(cfg retry.Config) Option {
	return func(c *Client) { c.retryCfg = cfg }
}

// NewClient creates an airport lookup client. A nil logger disables logging.
func NewClient(baseURL string, log *logger.Logger, opts ...Option) *Client {
	if log == nil {
		log = logger.Nop()
	}
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		retryCfg:   retry.CollaboratorConfig,
		log:        log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// searchResponse is the lookup API response envelope.
type searchResponse struct {
	StatusCode int          `json:"statusCode"`
	Airports   []airportDTO `json:"airports"`
}

type airportDTO struct {
	IATA string `json:"iata"`
	Name string `json:"name"`
	City string `json:"city"`
}

// Search implements domain.AirportLookup. Client errors (4xx) are permanent;
// server errors and transport failures are retried.
func (c *Client) Search(ctx context.Context, term string) ([]domain.Airport, error) {
	endpoint := fmt.Sprintf("%s/airports?search=%s", c.baseURL, url.QueryEscape(term))

	body, err := retry.DoWithResult(ctx, func() ([]byte, error) {
		return c.get(ctx, endpoint)
	}, c.retryCfg)
	if err != nil {
		return nil, fmt.Errorf("airport lookup for %q: %w", term, err)
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("airport lookup for %q: decode response: %w", term, err)
	}

	airports := make([]domain.Airport, 0, len(resp.Airports))
	for _, a := range resp.Airports {
		if a.IATA == "" {
			continue
		}
		airports = append(airports, domain.Airport{IATA: a.IATA, Name: a.Name, City: a.City})
	}

	c.log.Debug().Str("term", term).Int("candidates", len(airports)).Msg("Airport lookup completed")
	return airports, nil
}

// get performs one request attempt and classifies the status code for the
// retry policy.
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, retry.NewPermanent(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, retry.NewPermanent(fmt.Errorf("unexpected status %d", resp.StatusCode))
	default:
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
}
