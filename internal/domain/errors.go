package domain

import "errors"

// Sentinel errors for the conversation flow and its collaborators.
// Callers match them with errors.Is; the HTTP layer maps them to responses.
var (
	// ErrInvalidRequest indicates a malformed or invalid inbound request.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidChoice indicates input outside the offered option set
	// (cabin class, yes/no, passenger counts, modify menu selection).
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrSameAirport indicates an origin selection equal to the destination.
	ErrSameAirport = errors.New("origin cannot match destination")

	// ErrPastDate indicates a date resolving to less than an hour from now.
	ErrPastDate = errors.New("date is not far enough in the future")

	// ErrLookupFailed indicates the airport lookup returned no usable
	// candidates, whether from an empty result set or a transport failure.
	// The engine reports both identically to the user.
	ErrLookupFailed = errors.New("airport lookup failed")

	// ErrRecognitionFailed indicates the date recognizer produced no
	// resolutions for the input.
	ErrRecognitionFailed = errors.New("date recognition failed")

	// ErrOffersFailed indicates the flight-offers collaborator failed.
	ErrOffersFailed = errors.New("flight offers search failed")

	// ErrIncompleteSearch indicates an offers search was requested before
	// the questionnaire was completed.
	ErrIncompleteSearch = errors.New("flight search is incomplete")
)

// IsRecoverable reports whether an error belongs to the recoverable input
// category: the flow re-prompts and the turn never fails the request. The
// flow engine has no fatal error path of its own, so everything but store
// failures ends up here.
func IsRecoverable(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidChoice),
		errors.Is(err, ErrSameAirport),
		errors.Is(err, ErrPastDate),
		errors.Is(err, ErrLookupFailed),
		errors.Is(err, ErrRecognitionFailed):
		return true
	}
	return false
}
