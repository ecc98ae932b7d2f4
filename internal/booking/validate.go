package booking

import (
	"fmt"
	"strings"

	"dealership-assistant/internal/model"
)

// ValidationResult describes which required draft fields are missing or
// malformed. MissingFields preserves the fixed checking order; the
// orchestrator prompts only for the first one.
type ValidationResult struct {
	Valid         bool
	MissingFields []string
	InvalidFields []string
	Message       string
}

// Validate checks the draft against the required field set, in order.
// A field counts as missing when absent or holding a sentinel value.
// Once all fields are present the phone number must reduce to exactly
// 10 digits; failing that is reported as invalid, not missing.
func Validate(draft model.BookingDraft) ValidationResult {
	var missing []string
	for _, field := range model.RequiredBookingFields {
		if !draft.Has(field) {
			missing = append(missing, field)
		}
	}

	if len(missing) > 0 {
		return ValidationResult{
			Valid:         false,
			MissingFields: missing,
			Message:       fmt.Sprintf("I still need: %s", strings.Join(missing, ", ")),
		}
	}

	if len(StripPhone(draft[model.FieldCustomerPhone])) != 10 {
		return ValidationResult{
			Valid:         false,
			InvalidFields: []string{model.FieldCustomerPhone},
			Message:       "That phone number doesn't look right. Could you give me a 10-digit phone number?",
		}
	}

	return ValidationResult{
		Valid:   true,
		Message: "All details confirmed!",
	}
}

// StripPhone removes every non-digit character from a phone string.
func StripPhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
