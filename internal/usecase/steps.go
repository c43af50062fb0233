package usecase

import (
	"context"

	"github.com/flight-chat/flight-search-chatbot/internal/domain"
)

// Primary-sequence steps. Each consumes the raw answer to the question held
// in LastQuestion, and advances it only after the answer is accepted. On
// rejection the step re-prompts and leaves both the flow position and the
// aggregate untouched.

// stepStart begins the questionnaire. The start keyword itself needs no
// validation.
func (e *engine) stepStart(s *domain.Session) []domain.Effect {
	s.Flow.LastQuestion = domain.QuestionDestination
	return []domain.Effect{domain.NewMessage(msgAskDestination)}
}

// stepDestination looks up the destination free text and offers candidates.
func (e *engine) stepDestination(ctx context.Context, s *domain.Session, text string) []domain.Effect {
	airports, err := e.lookupAirports(ctx, text)
	if err != nil {
		return []domain.Effect{domain.NewMessage(msgLookupFailed)}
	}

	s.Flow.Offered = airports
	s.Flow.LastQuestion = domain.QuestionDestinationChoice
	return []domain.Effect{domain.NewCardEffect(e.renderer.AirportChoice(titleDestination, airports))}
}

// stepDestinationChoice consumes the selection from the destination card.
func (e *engine) stepDestinationChoice(s *domain.Session, text string) []domain.Effect {
	airport, ok := s.Flow.OfferedAirport(text)
	if !ok {
		// The card constrains input, but free text can still arrive.
		return []domain.Effect{
			domain.NewMessage(msgChoiceError),
			domain.NewCardEffect(e.renderer.AirportChoice(titleDestination, s.Flow.Offered)),
		}
	}

	s.Search.SetDestination(airport)
	s.Flow.Offered = nil
	s.Flow.LastQuestion = domain.QuestionOrigin
	return []domain.Effect{domain.NewMessage(msgAskOrigin)}
}

// stepOrigin looks up the origin free text and offers candidates.
func (e *engine) stepOrigin(ctx context.Context, s *domain.Session, text string) []domain.Effect {
	airports, err := e.lookupAirports(ctx, text)
	if err != nil {
		return []domain.Effect{domain.NewMessage(msgLookupFailed)}
	}

	s.Flow.Offered = airports
	s.Flow.LastQuestion = domain.QuestionOriginChoice
	return []domain.Effect{domain.NewCardEffect(e.renderer.AirportChoice(titleOrigin, airports))}
}

// stepOriginChoice consumes the origin selection. Selecting the destination
// again is the one explicit regression in the flow: back to the origin
// lookup.
func (e *engine) stepOriginChoice(s *domain.Session, text string) []domain.Effect {
	airport, ok := s.Flow.OfferedAirport(text)
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

	s.Flow.Offered = nil
	s.Flow.LastQuestion = domain.QuestionReturnTrip
	return []domain.Effect{domain.NewCardEffect(e.renderer.ReturnTrip())}
}

// stepReturnTrip consumes the yes/no answer.
func (e *engine) stepReturnTrip(s *domain.Session, text string) []domain.Effect {
	answer, err := domain.ParseReturnTrip(text)
	if err != nil {
		return []domain.Effect{
			domain.NewMessage(msgChoiceError),
			domain.NewCardEffect(e.renderer.ReturnTrip()),
		}
	}

	s.Search.ReturnTrip = answer
	s.Flow.LastQuestion = domain.QuestionTravelDate
	return []domain.Effect{domain.NewMessage(msgAskTravelDate)}
}

// stepTravelDate validates the travel date. A one-way search skips the
// return-date question entirely.
func (e *engine) stepTravelDate(ctx context.Context, s *domain.Session, text string) []domain.Effect {
	date, effects := e.recognizeDate(ctx, text)
	if effects != nil {
		return effects
	}

	s.Search.TravelDate = date
	if s.Search.IsReturn() {
		s.Flow.LastQuestion = domain.QuestionReturnDate
		return []domain.Effect{domain.NewMessage(msgAskReturnDate)}
	}

	s.Flow.LastQuestion = domain.QuestionCabinClass
	return []domain.Effect{domain.NewCardEffect(e.renderer.CabinClass())}
}

// stepReturnDate validates the return date.
func (e *engine) stepReturnDate(ctx context.Context, s *domain.Session, text string) []domain.Effect {
	date, effects := e.recognizeDate(ctx, text)
	if effects != nil {
		return effects
	}

	s.Search.ReturnDate = date
	s.Flow.LastQuestion = domain.QuestionCabinClass
	return []domain.Effect{domain.NewCardEffect(e.renderer.CabinClass())}
}

// stepCabinClass consumes the cabin class selection.
func (e *engine) stepCabinClass(s *domain.Session, text string) []domain.Effect {
	class, err := domain.ParseCabinClass(text)
	if err != nil {
		return []domain.Effect{
			domain.NewMessage(msgChoiceError),
			domain.NewCardEffect(e.renderer.CabinClass()),
		}
	}

	s.Search.CabinClass = class
	s.Flow.LastQuestion = domain.QuestionPassengers
	return []domain.Effect{domain.NewCardEffect(e.renderer.Passengers())}
}

// stepPassengers consumes the structured passenger payload and completes the
// questionnaire.
func (e *engine) stepPassengers(s *domain.Session, input domain.TurnInput) []domain.Effect {
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

	s.Flow.LastQuestion = domain.QuestionCompleted
	return e.summary(s)
}

// recognizeDate runs the recognizer and applies the future-date floor.
// It returns either the accepted date or the recoverable error effects.
func (e *engine) recognizeDate(ctx context.Context, text string) (string, []domain.Effect) {
	now := e.clock.Now()

	resolutions, err := e.dates.Recognize(ctx, text, now)
	if err != nil {
		e.log.Warn().Err(err).Msg("Date recognition failed")
		return "", []domain.Effect{domain.NewMessage(msgDateError)}
	}

	date, err := resolveFutureDate(resolutions, now)
	if err != nil {
		return "", []domain.Effect{domain.NewMessage(msgDateError)}
	}
	return date, nil
}
