package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCabinClass(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    CabinClass
		wantErr bool
	}{
		{name: "exact", input: "Economy", want: CabinEconomy},
		{name: "lower case", input: "business", want: CabinBusiness},
		{name: "spaced premium economy", input: "Premium Economy", want: CabinPremiumEconomy},
		{name: "compact premium economy", input: "premiumeconomy", want: CabinPremiumEconomy},
		{name: "surrounding whitespace", input: "  First  ", want: CabinFirst},
		{name: "unknown class", input: "steerage", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCabinClass(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidChoice)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseReturnTrip(t *testing.T) {
	tests := []struct {
		input   string
		want    ReturnTrip
		wantErr bool
	}{
		{input: "yes", want: ReturnTripYes},
		{input: "Y", want: ReturnTripYes},
		{input: "no", want: ReturnTripNo},
		{input: " N ", want: ReturnTripNo},
		{input: "maybe", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseReturnTrip(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidChoice)
				assert.Equal(t, ReturnTripUnknown, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPassengerCounts_Validate(t *testing.T) {
	tests := []struct {
		name    string
		counts  PassengerCounts
		wantErr bool
	}{
		{name: "single adult", counts: PassengerCounts{Adults: 1}},
		{name: "family", counts: PassengerCounts{Adults: 2, Children: 2, Infants: 1}},
		{name: "no adults", counts: PassengerCounts{Children: 1}, wantErr: true},
		{name: "negative children", counts: PassengerCounts{Adults: 1, Children: -1}, wantErr: true},
		{name: "negative infants", counts: PassengerCounts{Adults: 1, Infants: -2}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.counts.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidChoice)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestFlightSearch_SetOrigin(t *testing.T) {
	t.Run("rejects the destination airport", func(t *testing.T) {
		var s FlightSearch
		s.SetDestination(Airport{IATA: "NBO", City: "Nairobi"})

		err := s.SetOrigin(Airport{IATA: "NBO", City: "Nairobi"})

		require.ErrorIs(t, err, ErrSameAirport)
		assert.Empty(t, s.Origin)
	})

	t.Run("stores a distinct airport", func(t *testing.T) {
		var s FlightSearch
		s.SetDestination(Airport{IATA: "NBO", City: "Nairobi"})

		err := s.SetOrigin(Airport{IATA: "AMS", City: "Amsterdam"})

		require.NoError(t, err)
		assert.Equal(t, "AMS", s.Origin)
		assert.Equal(t, "Amsterdam", s.OriginCity)
	})
}

func TestFlightSearch_SetPassengers(t *testing.T) {
	var s FlightSearch

	require.Error(t, s.SetPassengers(PassengerCounts{Adults: 0}))
	assert.Zero(t, s.Adults, "rejected payload must not mutate the aggregate")

	require.NoError(t, s.SetPassengers(PassengerCounts{Adults: 2, Children: 1}))
	assert.Equal(t, 2, s.Adults)
	assert.Equal(t, 1, s.Children)
}

func TestFlightSearch_ValidateForOffers(t *testing.T) {
	complete := FlightSearch{
		Origin:      "AMS",
		Destination: "NBO",
		ReturnTrip:  ReturnTripYes,
		TravelDate:  "2026-09-04",
		ReturnDate:  "2026-09-18",
		Adults:      1,
	}

	tests := []struct {
		name    string
		mutate  func(*FlightSearch)
		wantErr bool
	}{
		{name: "complete return search", mutate: func(*FlightSearch) {}},
		{name: "one-way without return date", mutate: func(s *FlightSearch) {
			s.ReturnTrip = ReturnTripNo
			s.ReturnDate = ""
		}},
		{name: "missing origin", mutate: func(s *FlightSearch) { s.Origin = "" }, wantErr: true},
		{name: "missing travel date", mutate: func(s *FlightSearch) { s.TravelDate = "" }, wantErr: true},
		{name: "return trip without return date", mutate: func(s *FlightSearch) { s.ReturnDate = "" }, wantErr: true},
		{name: "no adults", mutate: func(s *FlightSearch) { s.Adults = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := complete
			tt.mutate(&s)

			err := s.ValidateForOffers()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrIncompleteSearch)
				return
			}
			require.NoError(t, err)
		})
	}
}
