package usecase

import (
	"context"

	"github.com/flight-chat/flight-search-chatbot/internal/domain"
	"github.com/flight-chat/flight-search-chatbot/internal/infrastructure/logger"
)

// OffersUseCase runs a flight-offers search for a completed questionnaire.
type OffersUseCase interface {
	// Search builds the offers request from the session's flight search and
	// queries the provider. It fails with domain.ErrIncompleteSearch when
	// the questionnaire has not reached Completed.
	Search(ctx context.Context, sessionID string) (*domain.OffersResult, error)
}

type offersUseCase struct {
	store    domain.SessionStore
	provider domain.FlightOffers
	log      *logger.Logger
}

// NewOffersUseCase creates an offers use case. A nil logger disables
// logging.
func NewOffersUseCase(store domain.SessionStore, provider domain.FlightOffers, log *logger.Logger) OffersUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &offersUseCase{store: store, provider: provider, log: log}
}

// Search implements OffersUseCase.
func (u *offersUseCase) Search(ctx context.Context, sessionID string) (*domain.OffersResult, error) {
	session, err := u.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Flow.LastQuestion != domain.QuestionCompleted {
		return nil, domain.ErrIncompleteSearch
	}
	if err := session.Search.ValidateForOffers(); err != nil {
		return nil, err
	}

	req := domain.OffersRequest{
		OriginLocationCode:      session.Search.Origin,
		DestinationLocationCode: session.Search.Destination,
		DepartureDate:           session.Search.TravelDate,
		Adults:                  session.Search.Adults,
	}
	if session.Search.IsReturn() {
		req.ReturnDate = session.Search.ReturnDate
	}

	result, err := u.provider.Search(ctx, req)
	if err != nil {
		u.log.WithSession(sessionID).Warn().Err(err).Msg("Offers search failed")
		return nil, err
	}

	u.log.WithSession(sessionID).Info().
		Int("itineraries", len(result.Itineraries)).
		Msg("Offers search completed")
	return result, nil
}
