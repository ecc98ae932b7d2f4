package booking

import (
	"context"
	"time"

	"dealership-assistant/internal/model"
)

// UseCase defines the business logic interface for test-drive bookings.
type UseCase interface {
	// CheckAvailability reports whether the timestamp can be booked,
	// with a customer-facing message and alternatives on conflict.
	CheckAvailability(ctx context.Context, t time.Time) (AvailabilityResult, error)

	// AvailableSlots filters candidateHours to those free on the given date,
	// preserving order.
	AvailableSlots(ctx context.Context, date time.Time, candidateHours []string) ([]string, error)

	// SlotsForDate renders the free candidate slots for a natural-language
	// date as a customer-facing message.
	SlotsForDate(ctx context.Context, dateText string) (SlotsResult, error)

	// Book normalizes the drafted date/time, checks availability, and
	// persists a confirmed booking. Parse and conflict failures come back
	// as a typed result; only persistence problems surface as an error.
	Book(ctx context.Context, input BookInput) (BookResult, error)

	// Cancel transitions a booking to cancelled by reference.
	Cancel(ctx context.Context, id string) error

	// List returns all bookings, newest first.
	List(ctx context.Context) ([]model.Booking, error)

	// Summary renders the human-readable confirmation for a booking.
	Summary(b model.Booking) string
}
