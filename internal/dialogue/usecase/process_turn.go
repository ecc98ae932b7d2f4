package usecase

import (
	"context"
	"strings"

	"dealership-assistant/internal/dialogue"
	"dealership-assistant/internal/model"
)

// affirmatives are bare short answers that keep an active booking flow
// on track regardless of what the classifier labelled them.
var affirmatives = map[string]struct{}{
	"yes":     {},
	"yeah":    {},
	"sure":    {},
	"ok":      {},
	"okay":    {},
	"please":  {},
	"correct": {},
	"book it": {},
}

// ProcessTurn runs one conversation turn. The per-session state is owned
// by the caller; turns for the same state must be sequential.
func (uc *implUseCase) ProcessTurn(ctx context.Context, state *dialogue.ConversationState, input dialogue.ProcessTurnInput) (dialogue.ProcessTurnOutput, error) {
	utterance := strings.TrimSpace(input.Utterance)
	if utterance == "" {
		return dialogue.ProcessTurnOutput{}, dialogue.ErrEmptyUtterance
	}

	state.Append(model.RoleUser, utterance)

	result := uc.nlu.ClassifyIntent(ctx, utterance)
	effective := uc.applyStateGuard(ctx, state, utterance, result)

	uc.l.Infof(ctx, "%s: intent=%s effective=%s entities=%v", LogPrefixProcessTurn, result.Intent, effective, result.Entities)

	// Reconcile the rolling window into the draft whenever a booking is
	// in play. The structured extractor never overwrites a locked vehicle.
	if effective == model.IntentBooking || effective == model.IntentConfirmation || state.Draft.Active() {
		extracted := uc.nlu.ExtractBookingFields(ctx, state.Window(extractWindow))
		uc.mergeDraft(state.Draft, extracted)
	}

	response, err := uc.route(ctx, state, utterance, effective, result.Entities)
	if err != nil {
		return dialogue.ProcessTurnOutput{}, err
	}

	state.Append(model.RoleAssistant, response)

	return dialogue.ProcessTurnOutput{
		Response: response,
		Intent:   effective,
	}, nil
}

// Reset clears the conversation history and the booking draft.
func (uc *implUseCase) Reset(ctx context.Context, state *dialogue.ConversationState) {
	state.Reset()
	uc.l.Infof(ctx, "%s: conversation reset", LogPrefixProcessTurn)
}

// applyStateGuard forces the effective intent to booking when a locked-in
// flow would otherwise derail into generic chat: a bare affirmative, or
// slot-shaped entities arriving mid-booking.
func (uc *implUseCase) applyStateGuard(ctx context.Context, state *dialogue.ConversationState, utterance string, result model.IntentResult) model.Intent {
	if result.Intent == model.IntentBooking || result.Intent == model.IntentCancellation {
		return result.Intent
	}

	if state.Draft.VehicleLocked() {
		normalized := strings.ToLower(strings.TrimSpace(utterance))
		normalized = strings.TrimRight(normalized, ".!?")
		if _, ok := affirmatives[normalized]; ok {
			uc.l.Infof(ctx, "%s: state guard: affirmative %q forces booking", LogPrefixProcessTurn, normalized)
			return model.IntentBooking
		}
	}

	if state.Draft.Active() {
		for _, key := range []string{model.EntityDate, model.EntityTime, model.EntityCustomerName} {
			if v, ok := result.Entities[key]; ok && !model.IsSentinel(v) {
				uc.l.Infof(ctx, "%s: state guard: entity %s forces booking", LogPrefixProcessTurn, key)
				return model.IntentBooking
			}
		}
	}

	return result.Intent
}

// mergeDraft applies extracted fields under the vehicle-lock rule: a
// locked vehicle_id/vehicle_name is never silently replaced.
func (uc *implUseCase) mergeDraft(draft model.BookingDraft, extracted model.BookingDraft) {
	locked := draft.VehicleLocked()
	for field, value := range extracted {
		if locked && (field == model.FieldVehicleID || field == model.FieldVehicleName) {
			continue
		}
		draft.Set(field, value)
	}
}

// route dispatches on the effective intent and returns the response.
func (uc *implUseCase) route(ctx context.Context, state *dialogue.ConversationState, utterance string, intent model.Intent, entities map[string]string) (string, error) {
	switch intent {
	case model.IntentGreeting:
		// A greeting carrying a name mid-booking is really a slot answer.
		if name, ok := entities[model.EntityCustomerName]; ok && state.Draft.Active() && !state.Draft.Has(model.FieldCustomerName) {
			state.Draft.Set(model.FieldCustomerName, name)
			return uc.bookingFlow(ctx, state, entities)
		}
		return MsgWelcome, nil

	case model.IntentInquiry:
		return uc.handleInquiry(ctx, state, entities)

	case model.IntentBooking:
		return uc.bookingFlow(ctx, state, entities)

	case model.IntentConfirmation:
		if !state.Draft.Active() {
			return MsgNothingToConfirm, nil
		}
		return uc.bookingFlow(ctx, state, entities)

	case model.IntentCancellation:
		state.Draft = model.BookingDraft{}
		return MsgCancelled, nil

	default: // general, modification
		return uc.handleGeneral(ctx, state, utterance, entities)
	}
}

// handleGeneral covers chat outside a booking, and free-form answers to
// slot questions when a booking is active (regex fallback extraction).
func (uc *implUseCase) handleGeneral(ctx context.Context, state *dialogue.ConversationState, utterance string, entities map[string]string) (string, error) {
	if state.Draft.Active() {
		uc.fallbackExtract(ctx, state.Draft, utterance)
		return uc.bookingFlow(ctx, state, entities)
	}

	return uc.nlu.GenerateReply(ctx, state.Context(contextTurns), utterance), nil
}
