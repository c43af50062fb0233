package domain

import (
	"fmt"
	"strings"
)

// CabinClass is the closed set of bookable cabin classes.
type CabinClass string

const (
	CabinEconomy        CabinClass = "Economy"
	CabinPremiumEconomy CabinClass = "PremiumEconomy"
	CabinBusiness       CabinClass = "Business"
	CabinFirst          CabinClass = "First"
)

// CabinClasses lists every valid cabin class in presentation order.
var CabinClasses = []CabinClass{
	CabinEconomy,
	CabinPremiumEconomy,
	CabinBusiness,
	CabinFirst,
}

// ParseCabinClass matches user input against the cabin class set.
// Matching is case-insensitive and tolerates spaces ("premium economy").
func ParseCabinClass(input string) (CabinClass, error) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(input), " ", ""))
	for _, class := range CabinClasses {
		if normalized == strings.ToLower(string(class)) {
			return class, nil
		}
	}
	return "", fmt.Errorf("%w: unknown cabin class %q", ErrInvalidChoice, input)
}

// ReturnTrip is the tri-state answer to the return-trip question.
type ReturnTrip string

const (
	ReturnTripUnknown ReturnTrip = ""
	ReturnTripYes     ReturnTrip = "yes"
	ReturnTripNo      ReturnTrip = "no"
)

// ParseReturnTrip matches a yes/no answer.
func ParseReturnTrip(input string) (ReturnTrip, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "yes", "y":
		return ReturnTripYes, nil
	case "no", "n":
		return ReturnTripNo, nil
	}
	return ReturnTripUnknown, fmt.Errorf("%w: expected yes or no, got %q", ErrInvalidChoice, input)
}

// PassengerCounts is the structured payload submitted by the passenger card.
type PassengerCounts struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

// Validate enforces the passenger-count rules: at least one adult, no
// negative counts.
func (p PassengerCounts) Validate() error {
	if p.Adults < 1 {
		return fmt.Errorf("%w: at least one adult is required", ErrInvalidChoice)
	}
	if p.Children < 0 || p.Infants < 0 {
		return fmt.Errorf("%w: passenger counts cannot be negative", ErrInvalidChoice)
	}
	return nil
}

// FlightSearch is the questionnaire aggregate, one per session. Fields are
// set only after the corresponding validator accepts the raw input.
type FlightSearch struct {
	// Origin and Destination are IATA airport codes.
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination,omitempty"`

	// OriginCity and DestinationCity cache display names alongside codes.
	OriginCity      string `json:"originCity,omitempty"`
	DestinationCity string `json:"destinationCity,omitempty"`

	// ReturnTrip records whether a return leg is wanted.
	ReturnTrip ReturnTrip `json:"returnTrip,omitempty"`

	// TravelDate and ReturnDate are textual dates in YYYY-MM-DD form,
	// validated to be at least an hour in the future when captured.
	TravelDate string `json:"travelDate,omitempty"`
	ReturnDate string `json:"returnDate,omitempty"`

	// CabinClass is one of the CabinClasses values.
	CabinClass CabinClass `json:"cabinClass,omitempty"`

	// Passenger counts.
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

// SetDestination stores the validated destination airport.
func (s *FlightSearch) SetDestination(a Airport) {
	s.Destination = a.IATA
	s.DestinationCity = a.City
}

// SetOrigin stores the validated origin airport. It enforces the invariant
// that origin and destination differ.
func (s *FlightSearch) SetOrigin(a Airport) error {
	if s.Destination != "" && a.IATA == s.Destination {
		return fmt.Errorf("%w: %s", ErrSameAirport, a.IATA)
	}
	s.Origin = a.IATA
	s.OriginCity = a.City
	return nil
}

// IsReturn reports whether the user asked for a return leg.
func (s *FlightSearch) IsReturn() bool {
	return s.ReturnTrip == ReturnTripYes
}

// SetPassengers stores a validated passenger payload.
func (s *FlightSearch) SetPassengers(p PassengerCounts) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.Adults = p.Adults
	s.Children = p.Children
	s.Infants = p.Infants
	return nil
}

// ValidateForOffers checks that the aggregate is complete enough to run a
// flight-offers search.
func (s *FlightSearch) ValidateForOffers() error {
	if s.Origin == "" || s.Destination == "" {
		return fmt.Errorf("%w: origin and destination are required", ErrIncompleteSearch)
	}
	if s.TravelDate == "" {
		return fmt.Errorf("%w: travel date is required", ErrIncompleteSearch)
	}
	if s.IsReturn() && s.ReturnDate == "" {
		return fmt.Errorf("%w: return date is required for a return trip", ErrIncompleteSearch)
	}
	if s.Adults < 1 {
		return fmt.Errorf("%w: at least one adult is required", ErrIncompleteSearch)
	}
	return nil
}
