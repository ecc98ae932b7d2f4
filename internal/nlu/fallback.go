package nlu

import (
	"strings"

	"dealership-assistant/internal/model"
)

// Keyword sets for the deterministic classifier.
var (
	greetingKeywords     = []string{"hello", "hi", "hey", "good morning", "good afternoon"}
	bookingKeywords      = []string{"book", "schedule", "appointment", "test drive"}
	inquiryKeywords      = []string{"what", "which", "show", "tell me", "available", "have"}
	confirmationKeywords = []string{"yes", "confirm", "correct", "that's right"}
	cancellationKeywords = []string{"no", "cancel", "nevermind", "forget"}
)

// fallbackClassify is the deterministic keyword-rule classifier.
func (e *Engine) fallbackClassify(utterance string) model.IntentResult {
	lower := strings.ToLower(utterance)

	if containsAny(lower, greetingKeywords) {
		return model.IntentResult{Intent: model.IntentGreeting, Entities: map[string]string{}, Confidence: 0.8}
	}

	if containsAny(lower, bookingKeywords) {
		entities := map[string]string{}
		if category := sniffCategory(lower, true); category != "" {
			entities[model.EntityVehicleCategory] = category
		}
		if strings.Contains(lower, "tomorrow") {
			entities[model.EntityDate] = "tomorrow"
		}
		for _, word := range strings.Fields(lower) {
			if strings.Contains(word, "am") || strings.Contains(word, "pm") {
				entities[model.EntityTime] = word
				break
			}
		}
		return model.IntentResult{Intent: model.IntentBooking, Entities: entities, Confidence: 0.7}
	}

	if containsAny(lower, inquiryKeywords) {
		entities := map[string]string{}
		if category := sniffCategory(lower, false); category != "" {
			entities[model.EntityVehicleCategory] = category
		}
		return model.IntentResult{Intent: model.IntentInquiry, Entities: entities, Confidence: 0.7}
	}

	if containsAny(lower, confirmationKeywords) {
		return model.IntentResult{Intent: model.IntentConfirmation, Entities: map[string]string{}, Confidence: 0.8}
	}

	if containsAny(lower, cancellationKeywords) {
		return model.IntentResult{Intent: model.IntentCancellation, Entities: map[string]string{}, Confidence: 0.8}
	}

	return model.IntentResult{Intent: model.IntentGeneral, Entities: map[string]string{}, Confidence: 0.5}
}

// sniffCategory picks the first category substring found. The electric
// class is only sniffed on the booking path.
func sniffCategory(lower string, includeElectric bool) string {
	categories := []string{"sedan", "suv", "truck"}
	if includeElectric {
		categories = append(categories, "electric")
	}
	for _, c := range categories {
		if strings.Contains(lower, c) {
			return c
		}
	}
	return ""
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
