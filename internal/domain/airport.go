package domain

// Airport is a candidate returned by the airport-lookup collaborator.
type Airport struct {
	// IATA is the three-letter airport code (e.g., "NBO").
	IATA string `json:"iata"`

	// Name is the full airport name (e.g., "Jomo Kenyatta International").
	Name string `json:"name"`

	// City is the city the airport serves.
	City string `json:"city"`
}
