package domain

// EffectType distinguishes the outbound effect kinds.
type EffectType string

const (
	// EffectMessage is a plain text message.
	EffectMessage EffectType = "message"

	// EffectCard is a rich card with optional choice actions.
	EffectCard EffectType = "card"
)

// Effect is a single outbound message or card produced by a turn. A turn
// emits at most two effects: an error/echo message and/or a follow-up
// prompt or card.
type Effect struct {
	Type EffectType `json:"type"`
	Text string     `json:"text,omitempty"`
	Card *Card      `json:"card,omitempty"`
}

// Card is a presentation payload: a title, body text, an optional list of
// tappable actions, and an optional external deep link.
type Card struct {
	Title    string       `json:"title"`
	Body     string       `json:"body,omitempty"`
	Actions  []CardAction `json:"actions,omitempty"`
	DeepLink string       `json:"deepLink,omitempty"`
}

// CardAction is a single tappable choice on a card. Value is the raw input
// submitted back when the action is tapped.
type CardAction struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// NewMessage builds a plain-text effect.
func NewMessage(text string) Effect {
	return Effect{Type: EffectMessage, Text: text}
}

// NewCardEffect builds a card effect.
func NewCardEffect(card Card) Effect {
	return Effect{Type: EffectCard, Card: &card}
}
