package model

// Intent is the coarse classification of a user's conversational goal.
type Intent string

const (
	IntentGreeting     Intent = "greeting"
	IntentInquiry      Intent = "inquiry"
	IntentBooking      Intent = "booking"
	IntentConfirmation Intent = "confirmation"
	IntentModification Intent = "modification"
	IntentCancellation Intent = "cancellation"
	IntentGeneral      Intent = "general"
)

// ParseIntent maps a raw label onto the closed intent set.
// Unknown labels collapse to IntentGeneral rather than erroring,
// since the classifier output is untrusted.
func ParseIntent(s string) Intent {
	switch Intent(s) {
	case IntentGreeting, IntentInquiry, IntentBooking, IntentConfirmation,
		IntentModification, IntentCancellation, IntentGeneral:
		return Intent(s)
	default:
		return IntentGeneral
	}
}

// Entity keys produced by the intent classifier.
const (
	EntityVehicleCategory = "vehicle_category"
	EntityVehicleMake     = "vehicle_make"
	EntityVehicleModel    = "vehicle_model"
	EntityMaxPrice        = "max_price"
	EntityDate            = "date"
	EntityTime            = "time"
	EntityCustomerName    = "customer_name"
	EntityCustomerPhone   = "customer_phone"
)

// IntentResult is the per-turn output of the intent classifier.
type IntentResult struct {
	Intent     Intent            `json:"intent"`
	Entities   map[string]string `json:"entities"`
	Confidence float64           `json:"confidence"` // 0-1
}
