package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"dealership-assistant/internal/booking"
	"dealership-assistant/internal/catalog"
	"dealership-assistant/internal/dialogue"
	"dealership-assistant/internal/model"
)

// bookingFlow is the ordered booking pipeline. Each stage returns the
// response at the first unmet condition: vehicle resolution, entity
// merge, early availability check, validation, finalization.
func (uc *implUseCase) bookingFlow(ctx context.Context, state *dialogue.ConversationState, entities map[string]string) (string, error) {
	draft := state.Draft

	// Slot entities merge before vehicle resolution so a "which vehicle?"
	// interruption doesn't drop a date or time the customer already gave.
	// Sentinels never overwrite.
	for _, field := range []string{model.FieldDate, model.FieldTime, model.FieldCustomerName, model.FieldCustomerPhone} {
		if v, ok := entities[field]; ok {
			draft.Set(field, v)
		}
	}

	if !draft.VehicleLocked() {
		response, resolved, err := uc.resolveVehicle(ctx, draft, entities)
		if err != nil {
			return "", err
		}
		if !resolved {
			return response, nil
		}
	}

	// Date and time before identity: check the slot now so the customer
	// isn't asked for contact details against a dead slot.
	if draft.Has(model.FieldDate) && draft.Has(model.FieldTime) && !draft.Has(model.FieldCustomerName) {
		if response, conflict := uc.earlyAvailability(ctx, draft); conflict {
			return response, nil
		}
	}

	validation := booking.Validate(draft)

	if len(validation.InvalidFields) > 0 {
		// Malformed content is cleared so the re-prompt starts clean.
		for _, field := range validation.InvalidFields {
			delete(draft, field)
		}
		return validation.Message, nil
	}

	if len(validation.MissingFields) > 0 {
		return uc.promptForMissing(draft, validation.MissingFields[0]), nil
	}

	return uc.finalize(ctx, state)
}

// resolveVehicle locks a vehicle into the draft from the available search
// criteria. resolved=false means the response asks the user to narrow down.
func (uc *implUseCase) resolveVehicle(ctx context.Context, draft model.BookingDraft, entities map[string]string) (string, bool, error) {
	input := catalog.SearchInput{
		Make:     entities[model.EntityVehicleMake],
		Model:    entities[model.EntityVehicleModel],
		Category: entities[model.EntityVehicleCategory],
	}

	if input.Empty() {
		categories, err := uc.catalogUC.Categories(ctx)
		if err != nil {
			return "", false, err
		}
		return fmt.Sprintf("I can help you find the right vehicle. We have %s available. What interests you most?",
			strings.Join(categories, ", ")), false, nil
	}

	out, err := uc.catalogUC.Search(ctx, input)
	if err != nil {
		return "", false, err
	}

	switch {
	case out.Count == 0:
		return MsgAskVehicle, false, nil

	case out.Count == 1:
		v := out.Vehicles[0]
		draft.Set(model.FieldVehicleID, v.ID)
		draft.Set(model.FieldVehicleName, v.FullName())
		uc.l.Infof(ctx, "%s: locked vehicle %s (%s)", LogPrefixBookingFlow, v.ID, v.FullName())
		return "", true, nil

	default:
		if input.Category != "" && input.Model == "" {
			names := make([]string, 0, out.Count)
			for _, v := range out.Vehicles {
				names = append(names, v.Model)
			}
			return fmt.Sprintf("We have a few options: %s. Which one would you like to test drive?",
				strings.Join(names, ", ")), false, nil
		}
		return fmt.Sprintf("Did you mean the %s or the %s?",
			out.Vehicles[0].FullName(), out.Vehicles[1].FullName()), false, nil
	}
}

// earlyAvailability normalizes the drafted date/time and checks the slot.
// On conflict the time is cleared so it gets re-asked; an unparseable
// field is cleared the same way.
func (uc *implUseCase) earlyAvailability(ctx context.Context, draft model.BookingDraft) (string, bool) {
	date, dateErr := uc.dateMath.ParseDate(draft[model.FieldDate], uc.nowBase())
	hour, minute, timeErr := uc.dateMath.ParseTime(draft[model.FieldTime])
	if dateErr != nil || timeErr != nil {
		if dateErr != nil {
			delete(draft, model.FieldDate)
		}
		if timeErr != nil {
			delete(draft, model.FieldTime)
		}
		return "I couldn't understand the date or time. Could you please specify again?", true
	}

	avail, err := uc.bookingUC.CheckAvailability(ctx, uc.dateMath.Combine(date, hour, minute))
	if err != nil {
		uc.l.Errorf(ctx, "%s: availability check failed: %v", LogPrefixBookingFlow, err)
		return "", false // fall through; finalization re-checks
	}
	if !avail.Available {
		delete(draft, model.FieldTime)
		return avail.Message, true
	}
	return "", false
}

// promptForMissing asks exactly one targeted question for the first
// missing field, in the fixed priority order.
func (uc *implUseCase) promptForMissing(draft model.BookingDraft, field string) string {
	switch field {
	case model.FieldVehicleID, model.FieldVehicleName:
		return MsgAskVehicle
	case model.FieldDate:
		return MsgAskDate
	case model.FieldTime:
		return fmt.Sprintf("What time works best for you for the %s?", draft[model.FieldVehicleName])
	case model.FieldCustomerName:
		return MsgAskName
	case model.FieldCustomerPhone:
		return fmt.Sprintf("Thanks, %s. And your 10-digit phone number?", draft[model.FieldCustomerName])
	default:
		return MsgAskVehicle
	}
}

// finalize persists the booking. Success resets the draft; a store
// failure preserves it so the customer's details survive for a retry.
func (uc *implUseCase) finalize(ctx context.Context, state *dialogue.ConversationState) (string, error) {
	draft := state.Draft

	result, err := uc.bookingUC.Book(ctx, booking.BookInput{
		CustomerName:  draft[model.FieldCustomerName],
		CustomerPhone: draft[model.FieldCustomerPhone],
		VehicleID:     draft[model.FieldVehicleID],
		VehicleName:   draft[model.FieldVehicleName],
		DateText:      draft[model.FieldDate],
		TimeText:      draft[model.FieldTime],
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: finalization failed: %v", LogPrefixBookingFlow, err)
		return MsgBookingStoreError, nil
	}

	if !result.Created {
		return result.Message, nil
	}

	state.Draft = model.BookingDraft{}
	return result.Message + MsgOfferMore, nil
}

// handleInquiry answers a catalog question, soft-locking a single match
// into the draft so "yes" can flow straight into booking.
func (uc *implUseCase) handleInquiry(ctx context.Context, state *dialogue.ConversationState, entities map[string]string) (string, error) {
	input := catalog.SearchInput{
		Make:     entities[model.EntityVehicleMake],
		Model:    entities[model.EntityVehicleModel],
		Category: entities[model.EntityVehicleCategory],
		MaxPrice: parsePrice(entities[model.EntityMaxPrice]),
	}

	out, err := uc.catalogUC.Search(ctx, input)
	if err != nil {
		return "", err
	}

	if out.Count == 0 {
		return MsgNoMatchingVehicles, nil
	}

	response := uc.catalogUC.FormatList(out.Vehicles)

	if out.Count == 1 {
		if !state.Draft.VehicleLocked() {
			v := out.Vehicles[0]
			state.Draft.Set(model.FieldVehicleID, v.ID)
			state.Draft.Set(model.FieldVehicleName, v.FullName())
		}
		return response + MsgOfferTestDrive, nil
	}
	return response + MsgWhichInterests, nil
}

// parsePrice reads entity values like "$30,000" or "30000".
func parsePrice(s string) float64 {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	p, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return p
}
