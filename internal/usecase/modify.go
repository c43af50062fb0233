package usecase

import (
	"context"
	"strings"

	"github.com/flight-chat/flight-search-chatbot/internal/domain"
)

// Modify overlay: lets the user correct one previously-answered field and
// return to Completed. Each modify step mirrors its primary-sequence
// counterpart but terminates after one successful correction instead of
// chaining to the next field.

// modifyTarget describes how a modify-menu selection seeds the flow.
type modifyTarget struct {
	// seed is the question whose step runs first (the prompt/lookup step).
	seed domain.Question

	// terminal is the question whose successful answer ends the overlay.
	terminal domain.Question
}

// modifyTargets maps modify-menu labels (lower-cased) to their seeding.
// Airport fields pass through a lookup step before their choice step; every
// other field is validated by a single step.
var modifyTargets = map[string]modifyTarget{
	"destination": {seed: domain.QuestionDestination, terminal: domain.QuestionDestinationChoice},
	"origin":      {seed: domain.QuestionOrigin, terminal: domain.QuestionOriginChoice},
	"return trip": {seed: domain.QuestionReturnTrip, terminal: domain.QuestionReturnTrip},
	"travel date": {seed: domain.QuestionTravelDate, terminal: domain.QuestionTravelDate},
	"return date": {seed: domain.QuestionReturnDate, terminal: domain.QuestionReturnDate},
	"cabin class": {seed: domain.QuestionCabinClass, terminal: domain.QuestionCabinClass},
	"passengers":  {seed: domain.QuestionPassengers, terminal: domain.QuestionPassengers},
}

// modifyTurn routes a turn while the chat is in the modify overlay.
func (e *engine) modifyTurn(ctx context.Context, s *domain.Session, input domain.TurnInput) []domain.Effect {
	if s.Flow.Modifying == domain.QuestionCompleted {
		return e.modifySelect(s, input.Text)
	}
	return e.modifyStep(ctx, s, input)
}

// modifySelect consumes the field selection from the modify menu. An
// unrecognized selection re-emits the menu with an error; this is a retry,
// not a fatal error, and mutates nothing.
func (e *engine) modifySelect(s *domain.Session, text string) []domain.Effect {
	target, ok := modifyTargets[strings.ToLower(strings.TrimSpace(text))]
	if !ok {
		return []domain.Effect{
			domain.NewMessage(msgUnknownField),
			domain.NewCardEffect(e.renderer.ModifyMenu()),
		}
	}

	s.Flow.Modifying = target.terminal
	s.Flow.LastQuestion = target.seed

	switch target.seed {
	case domain.QuestionDestination:
		return []domain.Effect{domain.NewMessage(msgAskDestination)}
	case domain.QuestionOrigin:
		return []domain.Effect{domain.NewMessage(msgAskOrigin)}
	case domain.QuestionReturnTrip:
		return []domain.Effect{domain.NewCardEffect(e.renderer.ReturnTrip())}
	case domain.QuestionTravelDate:
		return []domain.Effect{domain.NewMessage(msgAskTravelDate)}
	case domain.QuestionReturnDate:
		return []domain.Effect{domain.NewMessage(msgAskReturnDate)}
	case domain.QuestionCabinClass:
		return []domain.Effect{domain.NewCardEffect(e.renderer.CabinClass())}
	case domain.QuestionPassengers:
		return []domain.Effect{domain.NewCardEffect(e.renderer.Passengers())}
	}

	// Unreachable: modifyTargets only seeds the questions above.
	return []domain.Effect{domain.NewCardEffect(e.renderer.ModifyMenu())}
}

// modifyStep runs the mirrored step for the question being corrected.
func (e *engine) modifyStep(ctx context.Context, s *domain.Session, input domain.TurnInput) []domain.Effect {
	switch s.Flow.LastQuestion {
	case domain.QuestionDestination:
		// Lookup step; the choice step that follows is the terminal one.
		return e.stepDestination(ctx, s, input.Text)

	case domain.QuestionDestinationChoice:
		airport, ok := s.Flow.OfferedAirport(input.Text)
		if !ok {
			return []domain.Effect{
				domain.NewMessage(msgChoiceError),
				domain.NewCardEffect(e.renderer.AirportChoice(titleDestination, s.Flow.Offered)),
			}
		}
		s.Search.SetDestination(airport)
		return e.finishModify(s)

	case domain.QuestionOrigin:
		return e.stepOrigin(ctx, s, input.Text)

	case domain.QuestionOriginChoice:
		airport, ok := s.Flow.OfferedAirport(input.Text)
		if !ok {
			return []domain.Effect{
				domain.NewMessage(msgChoiceError),
				domain.NewCardEffect(e.renderer.AirportChoice(titleOrigin, s.Flow.Offered)),
			}
		}
		if err := s.Search.SetOrigin(airport); err != nil {
			s.Flow.Offered = nil
			s.Flow.LastQuestion = domain.QuestionOrigin
			return []domain.Effect{
				domain.NewMessage(msgSameAirport),
				domain.NewMessage(msgAskOrigin),
			}
		}
		return e.finishModify(s)

	case domain.QuestionReturnTrip:
		answer, err := domain.ParseReturnTrip(input.Text)
		if err != nil {
			return []domain.Effect{
				domain.NewMessage(msgChoiceError),
				domain.NewCardEffect(e.renderer.ReturnTrip()),
			}
		}
		s.Search.ReturnTrip = answer
		if answer == domain.ReturnTripNo {
			// A one-way trip has no return date.
			s.Search.ReturnDate = ""
		}
		return e.finishModify(s)

	case domain.QuestionTravelDate:
		date, effects := e.recognizeDate(ctx, input.Text)
		if effects != nil {
			return effects
		}
		s.Search.TravelDate = date
		return e.finishModify(s)

	case domain.QuestionReturnDate:
		date, effects := e.recognizeDate(ctx, input.Text)
		if effects != nil {
			return effects
		}
		s.Search.ReturnDate = date
		return e.finishModify(s)

	case domain.QuestionCabinClass:
		class, err := domain.ParseCabinClass(input.Text)
		if err != nil {
			return []domain.Effect{
				domain.NewMessage(msgChoiceError),
				domain.NewCardEffect(e.renderer.CabinClass()),
			}
		}
		s.Search.CabinClass = class
		return e.finishModify(s)

	case domain.QuestionPassengers:
		if !input.IsStructured() {
			return []domain.Effect{
				domain.NewMessage(msgPassengerError),
				domain.NewCardEffect(e.renderer.Passengers()),
			}
		}
		if err := s.Search.SetPassengers(*input.Passengers); err != nil {
			return []domain.Effect{
				domain.NewMessage(msgPassengerError),
				domain.NewCardEffect(e.renderer.Passengers()),
			}
		}
		return e.finishModify(s)
	}

	// Overlay entered with an inconsistent position; re-offer the menu.
	s.Flow.Modifying = domain.QuestionCompleted
	return []domain.Effect{domain.NewCardEffect(e.renderer.ModifyMenu())}
}

// finishModify closes the overlay after one successful correction: back to
// Normal, position Completed, summary re-emitted.
func (e *engine) finishModify(s *domain.Session) []domain.Effect {
	s.Chat = domain.ChatStateNormal
	s.Flow.Modifying = domain.QuestionCompleted
	s.Flow.LastQuestion = domain.QuestionCompleted
	s.Flow.Offered = nil
	return e.summary(s)
}
