// Package usecase implements the conversation flow engine: a finite-state
// dialogue driver that, on each inbound message, loads the session state,
// validates the input against the question being answered, mutates the
// flight-search aggregate, and decides the next question and outbound
// effects.
package usecase

import (
	"context"
	"strings"

	"github.com/flight-chat/flight-search-chatbot/internal/adapter/cards"
	"github.com/flight-chat/flight-search-chatbot/internal/domain"
	"github.com/flight-chat/flight-search-chatbot/internal/infrastructure/logger"
	"github.com/flight-chat/flight-search-chatbot/internal/infrastructure/timeutil"
)

// DefaultMaxAirportChoices bounds the airport-choice card to one page.
const DefaultMaxAirportChoices = 11

// modifyKeyword re-opens a completed questionnaire for correction.
const modifyKeyword = "modify"

// exitKeywords cancel the questionnaire from any state.
var exitKeywords = map[string]bool{
	"cancel": true,
	"exit":   true,
	"quit":   true,
	"bye":    true,
}

// startKeywords begin a questionnaire from the idle state.
var startKeywords = map[string]bool{
	cards.StartKeyword: true,
	"start":            true,
	"hi":               true,
	"hello":            true,
}

// Engine drives one conversation turn at a time.
type Engine interface {
	// HandleTurn consumes one inbound message for a session and returns the
	// ordered outbound effects. State is loaded at turn start and saved at
	// turn end regardless of whether it changed.
	HandleTurn(ctx context.Context, sessionID string, input domain.TurnInput) ([]domain.Effect, error)
}

// Config contains tunables for the engine.
type Config struct {
	// MaxAirportChoices caps how many lookup candidates are kept.
	MaxAirportChoices int
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{MaxAirportChoices: DefaultMaxAirportChoices}
}

type engine struct {
	store    domain.SessionStore
	airports domain.AirportLookup
	dates    domain.DateRecognizer
	renderer *cards.Renderer
	clock    timeutil.Clock
	log      *logger.Logger
	cfg      Config
}

// NewEngine creates a conversation flow engine. A nil config uses defaults;
// a nil logger disables engine logging.
func NewEngine(
	store domain.SessionStore,
	airports domain.AirportLookup,
	dates domain.DateRecognizer,
	renderer *cards.Renderer,
	clock timeutil.Clock,
	log *logger.Logger,
	config *Config,
) Engine {
	cfg := DefaultConfig()
	if config != nil && config.MaxAirportChoices > 0 {
		cfg.MaxAirportChoices = config.MaxAirportChoices
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &engine{
		store:    store,
		airports: airports,
		dates:    dates,
		renderer: renderer,
		clock:    clock,
		log:      log,
		cfg:      cfg,
	}
}

// HandleTurn implements Engine.
func (e *engine) HandleTurn(ctx context.Context, sessionID string, input domain.TurnInput) ([]domain.Effect, error) {
	session, err := e.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	input.Text = strings.TrimSpace(input.Text)
	effects := e.dispatch(ctx, session, input)

	e.log.WithSession(sessionID).Debug().
		Str("question", session.Flow.LastQuestion.String()).
		Str("chat_state", string(session.Chat)).
		Int("effects", len(effects)).
		Msg("Turn handled")

	if err := e.store.Save(ctx, sessionID, session); err != nil {
		return nil, err
	}
	return effects, nil
}

// dispatch applies the global pre-dispatch rules in precedence order, then
// routes to the primary sequence or the modify overlay.
func (e *engine) dispatch(ctx context.Context, s *domain.Session, input domain.TurnInput) []domain.Effect {
	keyword := strings.ToLower(input.Text)

	switch {
	case exitKeywords[keyword]:
		// Terminal for the flow; session data is retained by the store.
		s.Flow.Reset()
		s.Chat = domain.ChatStateNormal
		return []domain.Effect{domain.NewMessage(msgFarewell)}

	case s.Chat == domain.ChatStateNormal &&
		s.Flow.LastQuestion == domain.QuestionCompleted &&
		keyword == modifyKeyword:
		s.Chat = domain.ChatStateModify
		return []domain.Effect{domain.NewCardEffect(e.renderer.ModifyMenu())}

	case s.Chat == domain.ChatStateModify:
		return e.modifyTurn(ctx, s, input)

	case s.Flow.LastQuestion == domain.QuestionNone && !startKeywords[keyword]:
		return []domain.Effect{
			domain.NewMessage(msgClarify),
			domain.NewCardEffect(e.renderer.Welcome()),
		}
	}

	return e.primaryTurn(ctx, s, input)
}

// primaryTurn dispatches on the question whose answer is expected next.
func (e *engine) primaryTurn(ctx context.Context, s *domain.Session, input domain.TurnInput) []domain.Effect {
	switch s.Flow.LastQuestion {
	case domain.QuestionNone:
		return e.stepStart(s)
	case domain.QuestionDestination:
		return e.stepDestination(ctx, s, input.Text)
	case domain.QuestionDestinationChoice:
		return e.stepDestinationChoice(s, input.Text)
	case domain.QuestionOrigin:
		return e.stepOrigin(ctx, s, input.Text)
	case domain.QuestionOriginChoice:
		return e.stepOriginChoice(s, input.Text)
	case domain.QuestionReturnTrip:
		return e.stepReturnTrip(s, input.Text)
	case domain.QuestionTravelDate:
		return e.stepTravelDate(ctx, s, input.Text)
	case domain.QuestionReturnDate:
		return e.stepReturnDate(ctx, s, input.Text)
	case domain.QuestionCabinClass:
		return e.stepCabinClass(s, input.Text)
	case domain.QuestionPassengers:
		return e.stepPassengers(s, input)
	case domain.QuestionCompleted:
		// Idempotent: re-emit the summary.
		return e.summary(s)
	}

	// Unreachable with a well-formed flow; treat like the idle state.
	return []domain.Effect{
		domain.NewMessage(msgClarify),
		domain.NewCardEffect(e.renderer.Welcome()),
	}
}

// lookupAirports queries the airport collaborator and keeps at most the
// first MaxAirportChoices candidates. Empty results and transport failures
// collapse into the same recoverable error.
func (e *engine) lookupAirports(ctx context.Context, term string) ([]domain.Airport, error) {
	airports, err := e.airports.Search(ctx, term)
	if err != nil {
		e.log.Warn().Err(err).Str("term", term).Msg("Airport lookup failed")
		return nil, domain.ErrLookupFailed
	}
	if len(airports) == 0 {
		return nil, domain.ErrLookupFailed
	}
	if len(airports) > e.cfg.MaxAirportChoices {
		airports = airports[:e.cfg.MaxAirportChoices]
	}
	return airports, nil
}

// summary renders the summary card for the current aggregate.
func (e *engine) summary(s *domain.Session) []domain.Effect {
	return []domain.Effect{domain.NewCardEffect(e.renderer.Summary(s.Search))}
}
