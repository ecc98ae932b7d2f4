package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dealership-assistant/internal/booking"
	"dealership-assistant/internal/model"
)

// Cancel transitions a booking to cancelled. Records are never deleted.
func (uc *implUseCase) Cancel(ctx context.Context, id string) error {
	err := uc.repo.UpdateStatus(ctx, id, model.BookingStatusCancelled)
	if errors.Is(err, sql.ErrNoRows) {
		return booking.ErrBookingNotFound
	}
	if err != nil {
		return fmt.Errorf("cancelling booking %s: %w", id, err)
	}

	uc.l.Infof(ctx, "internal.booking.Cancel: booking %s cancelled", id)
	return nil
}

// List returns all bookings, newest first.
func (uc *implUseCase) List(ctx context.Context) ([]model.Booking, error) {
	return uc.repo.List(ctx)
}
