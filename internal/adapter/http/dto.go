package http

import "github.com/flight-chat/flight-search-chatbot/internal/domain"

// ChatMessageResponse is the response body for a conversation turn.
type ChatMessageResponse struct {
	SessionID string      `json:"sessionId"`
	Effects   []EffectDTO `json:"effects"`
}

// EffectDTO is one outbound effect: a plain message or a card.
type EffectDTO struct {
	Type string   `json:"type"`
	Text string   `json:"text,omitempty"`
	Card *CardDTO `json:"card,omitempty"`
}

// CardDTO is the presentation payload for a card effect.
type CardDTO struct {
	Title    string          `json:"title"`
	Body     string          `json:"body,omitempty"`
	Actions  []CardActionDTO `json:"actions,omitempty"`
	DeepLink string          `json:"deepLink,omitempty"`
}

// CardActionDTO is a tappable card action.
type CardActionDTO struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ToEffectDTOs converts engine effects to their wire representation.
func ToEffectDTOs(effects []domain.Effect) []EffectDTO {
	dtos := make([]EffectDTO, 0, len(effects))
	for _, effect := range effects {
		dto := EffectDTO{
			Type: string(effect.Type),
			Text: effect.Text,
		}
		if effect.Card != nil {
			card := &CardDTO{
				Title:    effect.Card.Title,
				Body:     effect.Card.Body,
				DeepLink: effect.Card.DeepLink,
			}
			for _, action := range effect.Card.Actions {
				card.Actions = append(card.Actions, CardActionDTO{
					Label: action.Label,
					Value: action.Value,
				})
			}
			dto.Card = card
		}
		dtos = append(dtos, dto)
	}
	return dtos
}

// OffersResponse is the response body for an offers search.
type OffersResponse struct {
	SessionID   string         `json:"sessionId"`
	Itineraries []ItineraryDTO `json:"itineraries"`
}

// ItineraryDTO is one flight offer.
type ItineraryDTO struct {
	ID       string `json:"id"`
	Carrier  string `json:"carrier,omitempty"`
	Duration string `json:"duration,omitempty"`
	Price    string `json:"price"`
	Currency string `json:"currency"`
}

// ToOffersResponse converts an offers result to its wire representation.
func ToOffersResponse(sessionID string, result *domain.OffersResult) *OffersResponse {
	resp := &OffersResponse{
		SessionID:   sessionID,
		Itineraries: make([]ItineraryDTO, 0, len(result.Itineraries)),
	}
	for _, it := range result.Itineraries {
		resp.Itineraries = append(resp.Itineraries, ItineraryDTO{
			ID:       it.ID,
			Carrier:  it.Carrier,
			Duration: it.Duration,
			Price:    it.Price.Amount,
			Currency: it.Price.Currency,
		})
	}
	return resp
}
