// Package cards renders the chat cards presented during the flight-search
// questionnaire. Rendering is static template substitution over the current
// FlightSearch state; no card mutates anything.
package cards

import (
	"fmt"
	"strings"

	"github.com/flight-chat/flight-search-chatbot/internal/domain"
)

// StartKeyword is the card action value that begins a questionnaire.
const StartKeyword = "book_flight"

// ModifiableField labels offered on the modify menu, in card order.
var ModifiableFields = []string{
	"Destination",
	"Origin",
	"Return Trip",
	"Travel Date",
	"Return Date",
	"Cabin Class",
	"Passengers",
}

// Renderer builds presentation payloads for the conversation flow.
type Renderer struct {
	deepLink DeepLinkConfig
}

// NewRenderer creates a card renderer with the given deep-link market
// configuration.
func NewRenderer(deepLink DeepLinkConfig) *Renderer {
	return &Renderer{deepLink: deepLink}
}

// Welcome is the affordance shown before a questionnaire starts.
func (r *Renderer) Welcome() domain.Card {
	return domain.Card{
		Title: "Flight Search",
		Body:  "I am here to help you search for the best flight to your destination.",
		Actions: []domain.CardAction{
			{Label: "Book a flight", Value: StartKeyword},
		},
	}
}

// AirportChoice lists candidate airports as tappable actions. The action
// value is the IATA code submitted back on the next turn.
func (r *Renderer) AirportChoice(title string, airports []domain.Airport) domain.Card {
	actions := make([]domain.CardAction, 0, len(airports))
	for _, a := range airports {
		actions = append(actions, domain.CardAction{
			Label: fmt.Sprintf("%s (%s), %s", a.Name, a.IATA, a.City),
			Value: a.IATA,
		})
	}
	return domain.Card{
		Title:   title,
		Body:    "Select an airport from the list below.",
		Actions: actions,
	}
}

// ReturnTrip asks whether the user wants a return leg.
func (r *Renderer) ReturnTrip() domain.Card {
	return domain.Card{
		Title: "Return Trip",
		Body:  "Do you want to book a return trip?",
		Actions: []domain.CardAction{
			{Label: "Yes", Value: string(domain.ReturnTripYes)},
			{Label: "No", Value: string(domain.ReturnTripNo)},
		},
	}
}

// CabinClass offers the closed cabin class set.
func (r *Renderer) CabinClass() domain.Card {
	actions := make([]domain.CardAction, 0, len(domain.CabinClasses))
	for _, class := range domain.CabinClasses {
		actions = append(actions, domain.CardAction{
			Label: cabinLabel(class),
			Value: string(class),
		})
	}
	return domain.Card{
		Title:   "Cabin Class",
		Body:    "Which cabin class would you like to fly?",
		Actions: actions,
	}
}

// Passengers prompts for the structured passenger-count submission.
func (r *Renderer) Passengers() domain.Card {
	return domain.Card{
		Title: "Passengers",
		Body:  "How many passengers are travelling? Enter the number of adults, children and infants.",
	}
}

// ModifyMenu lists every modifiable field.
func (r *Renderer) ModifyMenu() domain.Card {
	actions := make([]domain.CardAction, 0, len(ModifiableFields))
	for _, field := range ModifiableFields {
		actions = append(actions, domain.CardAction{Label: field, Value: field})
	}
	return domain.Card{
		Title:   "Modify Search",
		Body:    "Which part of your search would you like to change?",
		Actions: actions,
	}
}

// Summary renders the collected search state with the external deep link.
func (r *Renderer) Summary(s domain.FlightSearch) domain.Card {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s) → %s (%s)\n", s.OriginCity, s.Origin, s.DestinationCity, s.Destination)
	fmt.Fprintf(&b, "Travel date: %s\n", s.TravelDate)
	if s.IsReturn() {
		fmt.Fprintf(&b, "Return date: %s\n", s.ReturnDate)
	}
	fmt.Fprintf(&b, "Cabin class: %s\n", cabinLabel(s.CabinClass))
	fmt.Fprintf(&b, "Passengers: %d adult(s), %d child(ren), %d infant(s)", s.Adults, s.Children, s.Infants)

	return domain.Card{
		Title:    "Flight Search Summary",
		Body:     b.String(),
		DeepLink: BuildDeepLink(r.deepLink, s),
	}
}

// cabinLabel returns a display label with spaces ("Premium Economy").
func cabinLabel(class domain.CabinClass) string {
	if class == domain.CabinPremiumEconomy {
		return "Premium Economy"
	}
	return string(class)
}
