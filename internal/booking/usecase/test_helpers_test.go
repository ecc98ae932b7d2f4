package usecase_test

import (
	"context"
	"database/sql"
	"time"

	"dealership-assistant/internal/model"
)

// memRepo is an in-memory BookingRepository used by tests.
type memRepo struct {
	bookings   []model.Booking
	createErr  error
	createdIDs []string
}

func (m *memRepo) Create(ctx context.Context, b model.Booking) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.bookings = append(m.bookings, b)
	m.createdIDs = append(m.createdIDs, b.ID)
	return nil
}

func (m *memRepo) GetByID(ctx context.Context, id string) (model.Booking, bool, error) {
	for _, b := range m.bookings {
		if b.ID == id {
			return b, true, nil
		}
	}
	return model.Booking{}, false, nil
}

func (m *memRepo) CountConfirmedBetween(ctx context.Context, from, to time.Time) (int, error) {
	count := 0
	for _, b := range m.bookings {
		if b.Status != model.BookingStatusConfirmed {
			continue
		}
		if !b.BookingDate.Before(from) && !b.BookingDate.After(to) {
			count++
		}
	}
	return count, nil
}

func (m *memRepo) UpdateStatus(ctx context.Context, id, status string) error {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings[i].Status = status
			return nil
		}
	}
	return sql.ErrNoRows
}

func (m *memRepo) List(ctx context.Context) ([]model.Booking, error) {
	out := make([]model.Booking, len(m.bookings))
	copy(out, m.bookings)
	return out, nil
}
