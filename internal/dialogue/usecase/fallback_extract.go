package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"dealership-assistant/internal/booking"
	"dealership-assistant/internal/model"
)

// Ordered name patterns, applied to the lower-cased utterance. The bare
// alphabetic line comes last so explicit phrasings win.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:my )?name is ([a-z\s]+)`),
	regexp.MustCompile(`(?:i'?m|it'?s) ([a-z\s]+)`),
	regexp.MustCompile(`^([a-z\s]+)$`),
}

var phonePattern = regexp.MustCompile(`(\d{3}[-.\s]?\d{3}[-.\s]?\d{4}|\d{10})`)

// fallbackExtract pulls a name or phone number out of a free-form answer
// when the structured extractor path produced nothing for the slot the
// flow is currently waiting on.
func (uc *implUseCase) fallbackExtract(ctx context.Context, draft model.BookingDraft, utterance string) {
	validation := booking.Validate(draft)
	if validation.Valid || len(validation.MissingFields) == 0 {
		return
	}

	waitingFor := ""
	for _, f := range validation.MissingFields {
		if f == model.FieldCustomerName || f == model.FieldCustomerPhone {
			waitingFor = f
			break
		}
	}

	switch waitingFor {
	case model.FieldCustomerName:
		lower := strings.ToLower(utterance)
		for _, pattern := range namePatterns {
			if m := pattern.FindStringSubmatch(lower); m != nil {
				name := titleCase(strings.TrimSpace(m[1]))
				draft.Set(model.FieldCustomerName, name)
				uc.l.Infof(ctx, "%s: fallback extracted name %q", LogPrefixProcessTurn, name)
				return
			}
		}

	case model.FieldCustomerPhone:
		if m := phonePattern.FindStringSubmatch(utterance); m != nil {
			draft.Set(model.FieldCustomerPhone, m[1])
			uc.l.Infof(ctx, "%s: fallback extracted phone", LogPrefixProcessTurn)
		}
	}
}

// titleCase capitalizes the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// nowBase is the reference instant for date normalization.
func (uc *implUseCase) nowBase() time.Time {
	return time.Now()
}
