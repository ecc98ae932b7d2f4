package repository

import (
	"context"
	"time"

	"dealership-assistant/internal/model"
)

// BookingRepository is the interface for booking persistence.
type BookingRepository interface {
	Create(ctx context.Context, b model.Booking) error
	GetByID(ctx context.Context, id string) (model.Booking, bool, error)
	// CountConfirmedBetween counts confirmed bookings with
	// from <= booking_date <= to (inclusive bounds).
	CountConfirmedBetween(ctx context.Context, from, to time.Time) (int, error)
	UpdateStatus(ctx context.Context, id, status string) error
	List(ctx context.Context) ([]model.Booking, error)
}
