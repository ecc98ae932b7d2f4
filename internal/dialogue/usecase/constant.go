package usecase

// Log prefixes
const (
	LogPrefixProcessTurn = "internal.dialogue.ProcessTurn"
	LogPrefixBookingFlow = "internal.dialogue.bookingFlow"
)

// Fixed responses
const (
	MsgWelcome = "Hello! Welcome to Premium Auto Dealership. " +
		"I can help you learn about our vehicles and schedule a test drive. " +
		"What can I help you with today?"
	MsgNoMatchingVehicles = "I'm sorry, we don't have any vehicles matching those criteria. " +
		"Would you like to hear about our other available vehicles?"
	MsgCancelled         = "No problem. Is there anything else I can help you with?"
	MsgNothingToConfirm  = "What would you like to confirm?"
	MsgAskVehicle        = "Which vehicle would you like to test drive?"
	MsgAskDate           = "What day would you like to come in?"
	MsgAskName           = "May I have your name please?"
	MsgBookingStoreError = "I'm sorry, there was an error creating your booking. Please try again."
	MsgOfferMore         = " Is there anything else I can help you with?"
	MsgOfferTestDrive    = " Would you like to schedule a test drive?"
	MsgWhichInterests    = " Which one interests you most?"
)

// contextTurns is how many trailing messages feed free-form reply
// generation; extractWindow feeds the booking-details extractor.
const (
	contextTurns  = 5
	extractWindow = 3
)
