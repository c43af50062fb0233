// Package http provides the HTTP handler layer for the chat API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"regexp"

	"github.com/flight-chat/flight-search-chatbot/internal/domain"
)

// maxMessageLength bounds the free-text message size.
const maxMessageLength = 500

var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9_.:-]{1,128}$`)

// ChatMessageRequest represents the request body for a conversation turn.
type ChatMessageRequest struct {
	// SessionID identifies the conversation. Omit it to start a new session;
	// the generated identifier is returned in the response.
	SessionID string `json:"sessionId,omitempty"`

	// Text is the user's free-text message.
	Text string `json:"text,omitempty"`

	// Passengers is the structured passenger-count submission. It replaces
	// Text for the passenger question.
	Passengers *PassengersDTO `json:"passengers,omitempty"`
}

// PassengersDTO carries the passenger counts submitted by the card.
type PassengersDTO struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

// ChatOffersRequest represents the request body for an offers search.
type ChatOffersRequest struct {
	// SessionID identifies the completed conversation.
	SessionID string `json:"sessionId"`
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the message request and returns any validation errors.
func (r *ChatMessageRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.SessionID != "" && !sessionIDPattern.MatchString(r.SessionID) {
		errs.Add("sessionId", "sessionId may only contain letters, digits, '-', '_', '.', ':' and must be at most 128 characters")
	}

	if r.Text == "" && r.Passengers == nil {
		errs.Add("text", "either text or passengers is required")
	}
	if r.Text != "" && r.Passengers != nil {
		errs.Add("text", "text and passengers are mutually exclusive")
	}
	if len(r.Text) > maxMessageLength {
		errs.Add("text", "text cannot exceed 500 characters")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the offers request.
func (r *ChatOffersRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.SessionID == "" {
		errs.Add("sessionId", "sessionId is required")
	} else if !sessionIDPattern.MatchString(r.SessionID) {
		errs.Add("sessionId", "sessionId may only contain letters, digits, '-', '_', '.', ':' and must be at most 128 characters")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ToTurnInput converts the request body to the engine's input type.
func (r *ChatMessageRequest) ToTurnInput() domain.TurnInput {
	input := domain.TurnInput{Text: r.Text}
	if r.Passengers != nil {
		input.Passengers = &domain.PassengerCounts{
			Adults:   r.Passengers.Adults,
			Children: r.Passengers.Children,
			Infants:  r.Passengers.Infants,
		}
	}
	return input
}
