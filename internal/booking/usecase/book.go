package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"dealership-assistant/internal/booking"
	"dealership-assistant/internal/model"
)

// Book normalizes the drafted date and time, checks availability, and
// persists a confirmed booking. Conversational failures (unparseable
// text, slot conflicts) come back in the result; only store problems
// are returned as errors.
func (uc *implUseCase) Book(ctx context.Context, input booking.BookInput) (booking.BookResult, error) {
	date, dateErr := uc.dateMath.ParseDate(input.DateText, uc.now())
	hour, minute, timeErr := uc.dateMath.ParseTime(input.TimeText)
	if dateErr != nil || timeErr != nil {
		uc.l.Warnf(ctx, "internal.booking.Book: unparseable date=%q time=%q", input.DateText, input.TimeText)
		return booking.BookResult{
			Reason:  booking.FailUnparseable,
			Message: "I couldn't understand the date or time. Could you please specify again?",
		}, nil
	}

	at := uc.dateMath.Combine(date, hour, minute)

	avail, err := uc.CheckAvailability(ctx, at)
	if err != nil {
		return booking.BookResult{}, err
	}
	if !avail.Available {
		return booking.BookResult{
			Reason:       booking.FailConflict,
			Message:      avail.Message,
			Alternatives: avail.Alternatives,
		}, nil
	}

	b := model.Booking{
		ID:            uuid.NewString(),
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		VehicleID:     input.VehicleID,
		VehicleName:   input.VehicleName,
		BookingDate:   at,
		CreatedAt:     uc.now(),
		Status:        model.BookingStatusConfirmed,
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		uc.l.Errorf(ctx, "internal.booking.Book: persisting booking: %v", err)
		return booking.BookResult{}, fmt.Errorf("%w: %v", booking.ErrPersistence, err)
	}

	uc.l.Infof(ctx, "internal.booking.Book: created booking %s for %s at %s", b.ID, b.CustomerName, at)

	return booking.BookResult{
		Created: true,
		Booking: b,
		Message: uc.Summary(b),
	}, nil
}

// Summary renders the human-readable confirmation for a booking.
func (uc *implUseCase) Summary(b model.Booking) string {
	return fmt.Sprintf("Test drive booking confirmed for %s. Vehicle: %s. Date and time: %s. Booking reference: %s",
		b.CustomerName, b.VehicleName, b.BookingDate.Format(displayTimestamp), b.ID)
}
