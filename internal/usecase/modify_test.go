package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/flight-chat/flight-search-chatbot/internal/domain"
)

// completedSearch returns a fully answered aggregate.
func completedSearch() domain.FlightSearch {
	return domain.FlightSearch{
		Origin: "AMS", OriginCity: "Amsterdam",
		Destination: "NBO", DestinationCity: "Nairobi",
		ReturnTrip: domain.ReturnTripYes,
		TravelDate: "2026-09-04",
		ReturnDate: "2026-09-18",
		CabinClass: domain.CabinEconomy,
		Adults:     2, Children: 1,
	}
}

// seedCompleted stores a session at the end of the questionnaire.
func (f *fixture) seedCompleted(t *testing.T) {
	t.Helper()
	f.seed(t, func(s *domain.Session) {
		s.Search = completedSearch()
		s.Flow.LastQuestion = domain.QuestionCompleted
	})
}

// assertModifyClosed checks the post-correction state: overlay left, summary
// emitted, position back at Completed.
func assertModifyClosed(t *testing.T, f *fixture, effects []domain.Effect) {
	t.Helper()
	require.Len(t, effects, 1)
	require.NotNil(t, effects[0].Card)
	assert.Equal(t, "Flight Search Summary", effects[0].Card.Title)

	session := f.session(t)
	assert.Equal(t, domain.ChatStateNormal, session.Chat)
	assert.Equal(t, domain.QuestionCompleted, session.Flow.LastQuestion)
	assert.Equal(t, domain.QuestionCompleted, session.Flow.Modifying)
	assert.Empty(t, session.Flow.Offered)
}

func TestModify_KeywordOpensMenuWhenCompleted(t *testing.T) {
	f := newFixture(t)
	f.seedCompleted(t)

	effects := f.turn(t, text("modify"))

	require.Len(t, effects, 1)
	require.NotNil(t, effects[0].Card)
	assert.Equal(t, "Modify Search", effects[0].Card.Title)
	assert.Len(t, effects[0].Card.Actions, 7, "one entry per modifiable field")

	session := f.session(t)
	assert.Equal(t, domain.ChatStateModify, session.Chat)
	assert.Equal(t, domain.QuestionCompleted, session.Flow.LastQuestion)
}

func TestModify_KeywordIgnoredMidQuestionnaire(t *testing.T) {
	f := newFixture(t)
	f.seed(t, func(s *domain.Session) {
		s.Flow.LastQuestion = domain.QuestionReturnTrip
	})

	// "modify" is ordinary input here; the return-trip step rejects it.
	effects := f.turn(t, text("modify"))

	require.Len(t, effects, 2)
	assert.Equal(t, msgChoiceError, effects[0].Text)

	session := f.session(t)
	assert.Equal(t, domain.ChatStateNormal, session.Chat)
	assert.Equal(t, domain.QuestionReturnTrip, session.Flow.LastQuestion)
}

func TestModify_UnknownSelectionReShowsMenu(t *testing.T) {
	f := newFixture(t)
	f.seed(t, func(s *domain.Session) {
		s.Search = completedSearch()
		s.Flow.LastQuestion = domain.QuestionCompleted
		s.Chat = domain.ChatStateModify
	})

	effects := f.turn(t, text("Snacks"))

	require.Len(t, effects, 2)
	assert.Equal(t, msgUnknownField, effects[0].Text)
	require.NotNil(t, effects[1].Card)
	assert.Equal(t, "Modify Search", effects[1].Card.Title)

	session := f.session(t)
	assert.Equal(t, domain.ChatStateModify, session.Chat)
	assert.Equal(t, domain.QuestionCompleted, session.Flow.Modifying)
	assert.Equal(t, domain.QuestionCompleted, session.Flow.LastQuestion)
}

func TestModify_CabinClassCorrection(t *testing.T) {
	f := newFixture(t)
	f.seedCompleted(t)

	f.turn(t, text("modify"))

	effects := f.turn(t, text("Cabin Class"))
	require.Len(t, effects, 1)
	require.NotNil(t, effects[0].Card)
	assert.Equal(t, "Cabin Class", effects[0].Card.Title)

	session := f.session(t)
	assert.Equal(t, domain.QuestionCabinClass, session.Flow.LastQuestion)
	assert.Equal(t, domain.QuestionCabinClass, session.Flow.Modifying)

	effects = f.turn(t, text("First"))

	assertModifyClosed(t, f, effects)
	assert.Equal(t, domain.CabinFirst, f.session(t).Search.CabinClass)
}

// TestModify_SingleStepFields verifies that every non-airport field is
// corrected by exactly one accepted answer.
func TestModify_SingleStepFields(t *testing.T) {
	tests := []struct {
		field  string
		input  domain.TurnInput
		setup  func(*fixture)
		verify func(*testing.T, domain.FlightSearch)
	}{
		{
			field: "Return Trip",
			input: text("yes"),
			verify: func(t *testing.T, s domain.FlightSearch) {
				assert.Equal(t, domain.ReturnTripYes, s.ReturnTrip)
			},
		},
		{
			field: "Travel Date",
			input: text("next month"),
			setup: func(f *fixture) {
				f.dates.EXPECT().Recognize(gomock.Any(), "next month", testNow).
					Return(futureDateTime(30*24*time.Hour), nil)
			},
			verify: func(t *testing.T, s domain.FlightSearch) {
				assert.Equal(t, testNow.Add(30*24*time.Hour).Format("2006-01-02"), s.TravelDate)
			},
		},
		{
			field: "Return Date",
			input: text("in six weeks"),
			setup: func(f *fixture) {
				f.dates.EXPECT().Recognize(gomock.Any(), "in six weeks", testNow).
					Return(futureDateTime(42*24*time.Hour), nil)
			},
			verify: func(t *testing.T, s domain.FlightSearch) {
				assert.Equal(t, testNow.Add(42*24*time.Hour).Format("2006-01-02"), s.ReturnDate)
			},
		},
		{
			field: "Cabin Class",
			input: text("Premium Economy"),
			verify: func(t *testing.T, s domain.FlightSearch) {
				assert.Equal(t, domain.CabinPremiumEconomy, s.CabinClass)
			},
		},
		{
			field: "Passengers",
			input: passengers(3, 0, 1),
			verify: func(t *testing.T, s domain.FlightSearch) {
				assert.Equal(t, 3, s.Adults)
				assert.Equal(t, 1, s.Infants)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			f := newFixture(t)
			f.seedCompleted(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			f.turn(t, text("modify"))
			f.turn(t, text(tt.field))
			effects := f.turn(t, tt.input)

			assertModifyClosed(t, f, effects)
			tt.verify(t, f.session(t).Search)
		})
	}
}

func TestModify_DestinationTwoPhaseCorrection(t *testing.T) {
	f := newFixture(t)
	f.seedCompleted(t)
	f.airports.EXPECT().Search(gomock.Any(), "Paris").
		Return([]domain.Airport{{IATA: "CDG", Name: "Charles de Gaulle", City: "Paris"}}, nil)

	f.turn(t, text("modify"))

	effects := f.turn(t, text("Destination"))
	require.Len(t, effects, 1)
	assert.Equal(t, msgAskDestination, effects[0].Text)

	effects = f.turn(t, text("Paris"))
	require.NotNil(t, effects[0].Card)
	require.Len(t, effects[0].Card.Actions, 1)

	session := f.session(t)
	assert.Equal(t, domain.ChatStateModify, session.Chat, "lookup step keeps the overlay open")
	assert.Equal(t, domain.QuestionDestinationChoice, session.Flow.LastQuestion)

	effects = f.turn(t, text("CDG"))

	assertModifyClosed(t, f, effects)
	search := f.session(t).Search
	assert.Equal(t, "CDG", search.Destination)
	assert.Equal(t, "Paris", search.DestinationCity)
}

func TestModify_OriginCannotMatchDestination(t *testing.T) {
	f := newFixture(t)
	f.seedCompleted(t)
	f.airports.EXPECT().Search(gomock.Any(), "Nairobi").Return(nairobi(), nil)

	f.turn(t, text("modify"))
	f.turn(t, text("Origin"))
	f.turn(t, text("Nairobi"))

	effects := f.turn(t, text("NBO"))

	require.Len(t, effects, 2)
	assert.Equal(t, msgSameAirport, effects[0].Text)
	assert.Equal(t, msgAskOrigin, effects[1].Text)

	session := f.session(t)
	assert.Equal(t, domain.ChatStateModify, session.Chat, "rejection keeps the overlay open")
	assert.Equal(t, domain.QuestionOrigin, session.Flow.LastQuestion)
	assert.Equal(t, "AMS", session.Search.Origin, "stored origin survives the rejected correction")
}

func TestModify_ReturnTripNoClearsReturnDate(t *testing.T) {
	f := newFixture(t)
	f.seedCompleted(t)

	f.turn(t, text("modify"))
	f.turn(t, text("Return Trip"))
	effects := f.turn(t, text("no"))

	assertModifyClosed(t, f, effects)

	search := f.session(t).Search
	assert.Equal(t, domain.ReturnTripNo, search.ReturnTrip)
	assert.Empty(t, search.ReturnDate, "one-way corrections drop the stale return date")
}

func TestModify_ValidationFailureKeepsOverlayOpen(t *testing.T) {
	f := newFixture(t)
	f.seedCompleted(t)
	f.dates.EXPECT().Recognize(gomock.Any(), "yesterday", testNow).
		Return(futureDateTime(-24*time.Hour), nil)
	f.dates.EXPECT().Recognize(gomock.Any(), "next month", testNow).
		Return(futureDateTime(30*24*time.Hour), nil)

	f.turn(t, text("modify"))
	f.turn(t, text("Travel Date"))

	effects := f.turn(t, text("yesterday"))
	require.Len(t, effects, 1)
	assert.Equal(t, msgDateError, effects[0].Text)
	assert.Equal(t, domain.ChatStateModify, f.session(t).Chat)
	assert.Equal(t, "2026-09-04", f.session(t).Search.TravelDate)

	// The retry succeeds and closes the overlay.
	effects = f.turn(t, text("next month"))
	assertModifyClosed(t, f, effects)
}

func TestModify_ExitKeywordWinsOverOverlay(t *testing.T) {
	f := newFixture(t)
	f.seedCompleted(t)

	f.turn(t, text("modify"))
	effects := f.turn(t, text("cancel"))

	require.Len(t, effects, 1)
	assert.Equal(t, msgFarewell, effects[0].Text)

	session := f.session(t)
	assert.Equal(t, domain.ChatStateNormal, session.Chat)
	assert.Equal(t, domain.QuestionNone, session.Flow.LastQuestion)
}
