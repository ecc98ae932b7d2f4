package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"dealership-assistant/internal/model"
)

// Repository stores bookings in a SQLite database.
type Repository struct {
	db *sql.DB
}

// Open opens (or creates) the booking database at path and bootstraps the
// schema. Pass ":memory:" for an in-memory database (used by tests).
func Open(path string) (*Repository, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	// Limit to single connection to avoid "database is locked" errors.
	db.SetMaxOpenConns(1)

	// Set busy timeout so concurrent access waits briefly instead of failing immediately.
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting journal mode: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS bookings (
		id TEXT PRIMARY KEY,
		customer_name TEXT NOT NULL,
		customer_phone TEXT NOT NULL,
		vehicle_id TEXT NOT NULL,
		vehicle_name TEXT NOT NULL,
		booking_date DATETIME NOT NULL,
		created_at DATETIME NOT NULL,
		status TEXT NOT NULL DEFAULT 'confirmed'
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating bookings table: %w", err)
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_bookings_date_status
		ON bookings (booking_date, status)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating bookings index: %w", err)
	}

	return &Repository{db: db}, nil
}

// Close closes the underlying database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) Create(ctx context.Context, b model.Booking) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO bookings
		(id, customer_name, customer_phone, vehicle_id, vehicle_name, booking_date, created_at, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.CustomerName, b.CustomerPhone, b.VehicleID, b.VehicleName,
		b.BookingDate.UTC().Format(time.RFC3339), b.CreatedAt.UTC().Format(time.RFC3339), b.Status)
	if err != nil {
		return fmt.Errorf("inserting booking: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (model.Booking, bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, customer_name, customer_phone, vehicle_id,
		vehicle_name, booking_date, created_at, status FROM bookings WHERE id = ?`, id)

	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return model.Booking{}, false, nil
	}
	if err != nil {
		return model.Booking{}, false, fmt.Errorf("reading booking: %w", err)
	}
	return b, true, nil
}

func (r *Repository) CountConfirmedBetween(ctx context.Context, from, to time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings
		WHERE booking_date >= ? AND booking_date <= ? AND status = ?`,
		from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339),
		model.BookingStatusConfirmed).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting bookings: %w", err)
	}
	return count, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE bookings SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("updating booking status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *Repository) List(ctx context.Context) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, customer_name, customer_phone, vehicle_id,
		vehicle_name, booking_date, created_at, status FROM bookings ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing bookings: %w", err)
	}
	defer rows.Close()

	var bookings []model.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBooking(row scanner) (model.Booking, error) {
	var b model.Booking
	var bookingDate, createdAt string
	if err := row.Scan(&b.ID, &b.CustomerName, &b.CustomerPhone, &b.VehicleID,
		&b.VehicleName, &bookingDate, &createdAt, &b.Status); err != nil {
		return model.Booking{}, err
	}

	var err error
	if b.BookingDate, err = time.Parse(time.RFC3339, bookingDate); err != nil {
		return model.Booking{}, fmt.Errorf("parsing booking_date: %w", err)
	}
	if b.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return model.Booking{}, fmt.Errorf("parsing created_at: %w", err)
	}
	return b, nil
}
