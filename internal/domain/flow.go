package domain

import "strings"

// Question identifies a position in the questionnaire. The values form a
// total order; an accepted answer always advances to the direct successor.
type Question int

const (
	// QuestionNone is the idle position before a questionnaire starts.
	QuestionNone Question = iota

	// QuestionDestination awaits the destination free text.
	QuestionDestination

	// QuestionDestinationChoice awaits a selection from the destination
	// candidates.
	QuestionDestinationChoice

	// QuestionOrigin awaits the origin free text.
	QuestionOrigin

	// QuestionOriginChoice awaits a selection from the origin candidates.
	QuestionOriginChoice

	// QuestionReturnTrip awaits the yes/no return-trip answer.
	QuestionReturnTrip

	// QuestionTravelDate awaits the outbound travel date.
	QuestionTravelDate

	// QuestionReturnDate awaits the return date; skipped for one-way trips.
	QuestionReturnDate

	// QuestionCabinClass awaits the cabin class selection.
	QuestionCabinClass

	// QuestionPassengers awaits the structured passenger counts.
	QuestionPassengers

	// QuestionCompleted marks a finished questionnaire.
	QuestionCompleted
)

var questionNames = map[Question]string{
	QuestionNone:              "none",
	QuestionDestination:       "destination",
	QuestionDestinationChoice: "destination_choice",
	QuestionOrigin:            "origin",
	QuestionOriginChoice:      "origin_choice",
	QuestionReturnTrip:        "return_trip",
	QuestionTravelDate:        "travel_date",
	QuestionReturnDate:        "return_date",
	QuestionCabinClass:        "cabin_class",
	QuestionPassengers:        "passengers",
	QuestionCompleted:         "completed",
}

// String returns the stable snake_case name used in logs.
func (q Question) String() string {
	if name, ok := questionNames[q]; ok {
		return name
	}
	return "unknown"
}

// IsValid reports whether q is within the questionnaire order.
func (q Question) IsValid() bool {
	return q >= QuestionNone && q <= QuestionCompleted
}

// Next returns the direct successor. Completed is its own successor.
func (q Question) Next() Question {
	if q >= QuestionCompleted {
		return QuestionCompleted
	}
	return q + 1
}

// ChatState selects which dispatch table handles a turn.
type ChatState string

const (
	// ChatStateNormal runs the primary question sequence.
	ChatStateNormal ChatState = "normal"

	// ChatStateModify runs the modify overlay for a completed questionnaire.
	ChatStateModify ChatState = "modify"
)

// ConversationFlow tracks the questionnaire position for one session.
type ConversationFlow struct {
	// LastQuestion is the question whose answer the next turn consumes.
	LastQuestion Question `json:"lastQuestion"`

	// Modifying is the question being corrected while the chat is in the
	// modify overlay. Completed means no field has been selected yet.
	Modifying Question `json:"modifying"`

	// Offered caches the airport candidates shown on the most recent choice
	// card, so a selection can be resolved without a second lookup. It is
	// per session; candidates never leak across sessions.
	Offered []Airport `json:"offered,omitempty"`
}

// NewConversationFlow returns the idle flow state.
func NewConversationFlow() ConversationFlow {
	return ConversationFlow{
		LastQuestion: QuestionNone,
		Modifying:    QuestionCompleted,
	}
}

// Reset returns the flow to the idle state.
func (f *ConversationFlow) Reset() {
	f.LastQuestion = QuestionNone
	f.Modifying = QuestionCompleted
	f.Offered = nil
}

// OfferedAirport resolves a selection against the cached candidates by IATA
// code, case-insensitively.
func (f *ConversationFlow) OfferedAirport(code string) (Airport, bool) {
	code = strings.TrimSpace(code)
	for _, a := range f.Offered {
		if strings.EqualFold(a.IATA, code) {
			return a, true
		}
	}
	return Airport{}, false
}
