package usecase

// Prompt and error texts emitted by the conversation flow. Validation
// failures always pair one of these with a re-shown prompt; the engine never
// fails a turn over user input.
const (
	msgFarewell = "Alright, I have cancelled your search. Come back any time you want to book a flight."
	msgClarify  = "Sorry, I did not understand that. Tap the button below to start a flight search."

	msgAskDestination = "Where will you be flying to?"
	msgAskOrigin      = "Where will you be flying from?"
	msgAskTravelDate  = "When would you like to travel?"
	msgAskReturnDate  = "When would you like to return?"

	msgLookupFailed   = "I could not find any airports for that location. Please try a different city or airport name."
	msgSameAirport    = "The origin airport cannot match the destination. Please choose a different origin."
	msgChoiceError    = "Please pick one of the options below."
	msgDateError      = "I'm sorry, please enter a date at least an hour out."
	msgPassengerError = "Please enter valid passenger counts: at least one adult, and no negative numbers."
	msgUnknownField   = "I cannot modify that. Please pick a field from the menu."

	titleDestination = "Destination Airport"
	titleOrigin      = "Origin Airport"
)
