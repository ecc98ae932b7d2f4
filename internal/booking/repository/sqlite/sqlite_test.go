package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"dealership-assistant/internal/model"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(":memory:")
	if err != nil {
		t.Fatalf("opening in-memory database: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func testBooking(id string, at time.Time) model.Booking {
	return model.Booking{
		ID:            id,
		CustomerName:  "John Smith",
		CustomerPhone: "5551234567",
		VehicleID:     "v1",
		VehicleName:   "2024 Toyota Camry",
		BookingDate:   at,
		CreatedAt:     time.Now().UTC().Truncate(time.Second),
		Status:        model.BookingStatusConfirmed,
	}
}

func TestCreateAndGet(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	at := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

	if err := repo.Create(ctx, testBooking("b1", at)); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, ok, err := repo.GetByID(ctx, "b1")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if !got.BookingDate.Equal(at) {
		t.Errorf("booking date mismatch: got %v want %v", got.BookingDate, at)
	}
	if got.Status != model.BookingStatusConfirmed {
		t.Errorf("expected confirmed, got %s", got.Status)
	}

	_, ok, err = repo.GetByID(ctx, "nope")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if ok {
		t.Error("expected missing booking")
	}
}

func TestCountConfirmedBetween(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()
	at := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

	if err := repo.Create(ctx, testBooking("b1", at)); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Inclusive window edges.
	n, err := repo.CountConfirmedBetween(ctx, at.Add(-15*time.Minute), at.Add(15*time.Minute))
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 booking in window, got %d", n)
	}

	n, err = repo.CountConfirmedBetween(ctx, at.Add(time.Minute), at.Add(30*time.Minute))
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 bookings outside window, got %d", n)
	}

	// Cancelled bookings are not counted.
	if err := repo.UpdateStatus(ctx, "b1", model.BookingStatusCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	n, err = repo.CountConfirmedBetween(ctx, at.Add(-15*time.Minute), at.Add(15*time.Minute))
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("cancelled booking still counted: %d", n)
	}
}

func TestUpdateStatusMissing(t *testing.T) {
	repo := openTestRepo(t)

	err := repo.UpdateStatus(context.Background(), "missing", model.BookingStatusCancelled)
	if err != sql.ErrNoRows {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestList(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	b1 := testBooking("b1", time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC))
	b1.CreatedAt = time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	b2 := testBooking("b2", time.Date(2026, 9, 15, 11, 0, 0, 0, time.UTC))
	b2.CreatedAt = time.Date(2026, 9, 2, 8, 0, 0, 0, time.UTC)

	if err := repo.Create(ctx, b1); err != nil {
		t.Fatalf("create b1: %v", err)
	}
	if err := repo.Create(ctx, b2); err != nil {
		t.Fatalf("create b2: %v", err)
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].ID != "b2" {
		t.Errorf("expected newest first [b2 b1], got %+v", got)
	}
}
