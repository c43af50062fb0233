package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=domain

// TurnInput is the inbound payload for one conversation turn: either free
// text or the structured passenger-count submission.
type TurnInput struct {
	// Text is the trimmed free-text message, empty for structured input.
	Text string `json:"text,omitempty"`

	// Passengers is set only for the passenger-count step.
	Passengers *PassengerCounts `json:"passengers,omitempty"`
}

// IsStructured reports whether the input carries the passenger payload.
func (in TurnInput) IsStructured() bool {
	return in.Passengers != nil
}

// ResolutionType declares how a recognizer resolution value is encoded.
type ResolutionType string

const (
	// ResolutionDate is a date-only value in YYYY-MM-DD form.
	ResolutionDate ResolutionType = "date"

	// ResolutionTime is a time-only value in HH:MM:SS form, interpreted
	// against the current day.
	ResolutionTime ResolutionType = "time"

	// ResolutionDateTime is a full "YYYY-MM-DD HH:MM:SS" value.
	ResolutionDateTime ResolutionType = "datetime"
)

// DateResolution is a single candidate produced by the date recognizer.
type DateResolution struct {
	Type  ResolutionType `json:"type"`
	Value string         `json:"value"`
}

// AirportLookup resolves free-text locations to candidate airports.
type AirportLookup interface {
	// Search returns a ranked list of candidate airports for the term.
	Search(ctx context.Context, term string) ([]Airport, error)
}

// DateRecognizer resolves free text to zero or more date/time candidates.
type DateRecognizer interface {
	// Recognize returns candidate resolutions for the text, evaluated
	// relative to the reference instant.
	Recognize(ctx context.Context, text string, ref time.Time) ([]DateResolution, error)
}

// OffersRequest is the validated query sent to the flight-offers provider.
type OffersRequest struct {
	OriginLocationCode      string `json:"originLocationCode"`
	DestinationLocationCode string `json:"destinationLocationCode"`
	DepartureDate           string `json:"departureDate"`
	ReturnDate              string `json:"returnDate,omitempty"`
	Adults                  int    `json:"adults"`
}

// Itinerary is a single flight offer returned by the provider.
type Itinerary struct {
	ID       string `json:"id"`
	Carrier  string `json:"carrier,omitempty"`
	Duration string `json:"duration,omitempty"`
	Price    Price  `json:"price"`
}

// Price is the total price of an itinerary.
type Price struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// OffersResult is the provider response for an offers search.
type OffersResult struct {
	Itineraries []Itinerary `json:"itineraries"`
}

// FlightOffers queries itineraries for a completed flight search.
type FlightOffers interface {
	Search(ctx context.Context, req OffersRequest) (*OffersResult, error)
}

// Session bundles the three per-session records. They are persisted as
// independent named records, loaded at turn start and saved at turn end
// regardless of whether they changed.
type Session struct {
	Search FlightSearch     `json:"flightSearch"`
	Flow   ConversationFlow `json:"conversationFlow"`
	Chat   ChatState        `json:"chatState"`
}

// NewSession returns a session with first-turn defaults.
func NewSession() *Session {
	return &Session{
		Search: FlightSearch{Adults: 1},
		Flow:   NewConversationFlow(),
		Chat:   ChatStateNormal,
	}
}

// SessionStore persists sessions keyed by their external identifier.
// Deletion and expiry are store concerns, not flow concerns.
type SessionStore interface {
	// Load returns the stored session, or a fresh default session when
	// nothing is stored under the identifier.
	Load(ctx context.Context, sessionID string) (*Session, error)

	// Save persists all three session records.
	Save(ctx context.Context, sessionID string, session *Session) error
}
