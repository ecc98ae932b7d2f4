package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dealership-assistant/internal/booking"
)

// displayTimestamp renders a timestamp the way it is spoken to the
// customer, e.g. "Monday, September 14 at 10:00 AM".
const displayTimestamp = "Monday, January 02 at 03:04 PM"

// displayDate renders just the day, e.g. "Monday, September 14".
const displayDate = "Monday, January 02"

// CheckAvailability reports whether the timestamp can be booked.
// Past timestamps get a distinct message independent of the operating
// window and buffer rules.
func (uc *implUseCase) CheckAvailability(ctx context.Context, t time.Time) (booking.AvailabilityResult, error) {
	if t.Before(uc.now()) {
		return booking.AvailabilityResult{
			Available: false,
			Message:   "That time has already passed. Please choose a future date and time.",
		}, nil
	}

	free, err := uc.slotFree(ctx, t)
	if err != nil {
		return booking.AvailabilityResult{}, err
	}

	if free {
		return booking.AvailabilityResult{
			Available: true,
			Message:   fmt.Sprintf("Great! %s is available.", t.Format(displayTimestamp)),
		}, nil
	}

	alternatives, err := uc.AvailableSlots(ctx, t, uc.candidateHours)
	if err != nil {
		return booking.AvailabilityResult{}, err
	}

	if len(alternatives) == 0 {
		return booking.AvailabilityResult{
			Available: false,
			Message:   "We don't have any availability that day. Could you try another date?",
		}, nil
	}

	shown := alternatives
	if len(shown) > 3 {
		shown = shown[:3]
	}
	return booking.AvailabilityResult{
		Available:    false,
		Message:      fmt.Sprintf("That time is not available. How about %s?", strings.Join(shown, ", ")),
		Alternatives: alternatives,
	}, nil
}

// AvailableSlots filters candidateHours to those free on the given date,
// preserving the caller-supplied order.
func (uc *implUseCase) AvailableSlots(ctx context.Context, date time.Time, candidateHours []string) ([]string, error) {
	var available []string
	for _, hourStr := range candidateHours {
		hour, minute, err := splitHour(hourStr)
		if err != nil {
			continue
		}

		slot := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
		free, err := uc.slotFree(ctx, slot)
		if err != nil {
			return nil, err
		}
		if free {
			available = append(available, hourStr)
		}
	}
	return available, nil
}

// SlotsForDate renders the free candidate slots for a natural-language date.
func (uc *implUseCase) SlotsForDate(ctx context.Context, dateText string) (booking.SlotsResult, error) {
	date, err := uc.dateMath.ParseDate(dateText, uc.now())
	if err != nil {
		return booking.SlotsResult{
			OK:      false,
			Message: "I couldn't understand that date. Could you specify it differently?",
		}, nil
	}

	slots, err := uc.AvailableSlots(ctx, date, uc.candidateHours)
	if err != nil {
		return booking.SlotsResult{}, err
	}

	if len(slots) == 0 {
		return booking.SlotsResult{
			OK: false,
			Message: fmt.Sprintf("Unfortunately, we don't have any availability on %s. Would you like to try a different day?",
				date.Format(displayDate)),
		}, nil
	}

	return booking.SlotsResult{
		OK:    true,
		Slots: slots,
		Message: fmt.Sprintf("Available times on %s: %s",
			date.Format(displayDate), strings.Join(slots, ", ")),
	}, nil
}

// slotFree applies the operating-window and buffer rules only; callers
// decide how to treat past timestamps.
func (uc *implUseCase) slotFree(ctx context.Context, t time.Time) (bool, error) {
	if t.Hour() < uc.openHour || t.Hour() >= uc.closeHour {
		return false, nil
	}

	count, err := uc.repo.CountConfirmedBetween(ctx, t.Add(-uc.buffer), t.Add(uc.buffer))
	if err != nil {
		return false, fmt.Errorf("checking slot conflicts: %w", err)
	}
	return count == 0, nil
}

// splitHour parses a candidate hour string like "9:00" or "14:00".
func splitHour(s string) (int, int, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, 0, fmt.Errorf("bad candidate hour %q: %w", s, err)
	}
	return hour, minute, nil
}
