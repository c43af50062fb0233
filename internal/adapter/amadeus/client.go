// Package amadeus implements the flight-offers collaborator against the
// Amadeus Flight Offers Search API. Authentication uses the OAuth2
// client-credentials flow with a cached bearer token.
package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/flight-chat/flight-search-chatbot/internal/domain"
	"github.com/flight-chat/flight-search-chatbot/internal/infrastructure/logger"
	"github.com/flight-chat/flight-search-chatbot/internal/infrastructure/retry"
	"github.com/flight-chat/flight-search-chatbot/internal/infrastructure/timeutil"
)

// DefaultTimeout bounds a single offers request.
const DefaultTimeout = 10 * time.Second

// DefaultMaxResults caps how many offers are requested upstream.
const DefaultMaxResults = 10

// Config holds the Amadeus API endpoints and credentials.
type Config struct {
	BaseURL      string
	AuthURL      string
	ClientID     string
	ClientSecret string
	MaxResults   int
}

// Client calls the Amadeus flight-offers API.
type Client struct {
	cfg        Config
	httpClient *http.Client
	tokens     *tokenSource
	retryCfg   retry.Config
	log        *logger.Logger
}

var _ domain.FlightOffers = (*Client)(nil)

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
		c.tokens.httpClient = hc
	}
}

// WithRetryConfig replaces the retry policy.
func WithRetryConfig(cfg retry.Config) Option {
	return func(c *Client) { c.retryCfg = cfg }
}

// WithClock replaces the clock used for token expiry.
func WithClock(clock timeutil.Clock) Option {
	return func(c *Client) { c.tokens.clock = clock }
}

// NewClient creates an Amadeus offers client. A nil logger disables logging.
func NewClient(cfg Config, log *logger.Logger, opts ...Option) *Client {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	if log == nil {
		log = logger.Nop()
	}

	httpClient := &http.Client{Timeout: DefaultTimeout}
	c := &Client{
		cfg:        cfg,
		httpClient: httpClient,
		tokens:     newTokenSource(cfg.AuthURL, cfg.ClientID, cfg.ClientSecret, httpClient, timeutil.NewRealClock()),
		retryCfg:   retry.CollaboratorConfig,
		log:        log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// offersResponse mirrors the relevant parts of the Amadeus response.
type offersResponse struct {
	Data []struct {
		ID          string `json:"id"`
		Itineraries []struct {
			Duration string `json:"duration"`
			Segments []struct {
				CarrierCode string `json:"carrierCode"`
			} `json:"segments"`
		} `json:"itineraries"`
		Price struct {
			GrandTotal string `json:"grandTotal"`
			Currency   string `json:"currency"`
		} `json:"price"`
	} `json:"data"`
}

// Search implements domain.FlightOffers.
func (c *Client) Search(ctx context.Context, req domain.OffersRequest) (*domain.OffersResult, error) {
	query := url.Values{}
	query.Set("originLocationCode", req.OriginLocationCode)
	query.Set("destinationLocationCode", req.DestinationLocationCode)
	query.Set("departureDate", req.DepartureDate)
	if req.ReturnDate != "" {
		query.Set("returnDate", req.ReturnDate)
	}
	query.Set("adults", strconv.Itoa(req.Adults))
	query.Set("max", strconv.Itoa(c.cfg.MaxResults))

	endpoint := fmt.Sprintf("%s/v2/shopping/flight-offers?%s", c.cfg.BaseURL, query.Encode())

	body, err := retry.DoWithResult(ctx, func() ([]byte, error) {
		return c.get(ctx, endpoint)
	}, c.retryCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrOffersFailed, err)
	}

	var resp offersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrOffersFailed, err)
	}

	result := &domain.OffersResult{Itineraries: make([]domain.Itinerary, 0, len(resp.Data))}
	for _, offer := range resp.Data {
		itinerary := domain.Itinerary{
			ID: offer.ID,
			Price: domain.Price{
				Amount:   offer.Price.GrandTotal,
				Currency: offer.Price.Currency,
			},
		}
		if len(offer.Itineraries) > 0 {
			itinerary.Duration = offer.Itineraries[0].Duration
			if len(offer.Itineraries[0].Segments) > 0 {
				itinerary.Carrier = offer.Itineraries[0].Segments[0].CarrierCode
			}
		}
		result.Itineraries = append(result.Itineraries, itinerary)
	}

	c.log.Debug().
		Str("origin", req.OriginLocationCode).
		Str("destination", req.DestinationLocationCode).
		Int("itineraries", len(result.Itineraries)).
		Msg("Offers search completed")
	return result, nil
}

// get performs one authenticated request attempt. A 401 invalidates the
// cached token and is retried with a fresh one.
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, retry.NewPermanent(err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
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
	case resp.StatusCode == http.StatusUnauthorized:
		c.tokens.invalidate()
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, retry.NewPermanent(fmt.Errorf("unexpected status %d", resp.StatusCode))
	default:
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
}
