package model

import "time"

// Booking statuses.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking is a persisted test-drive reservation. Created confirmed,
// mutated only by cancellation, never deleted.
type Booking struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	VehicleID     string    `json:"vehicle_id"`
	VehicleName   string    `json:"vehicle_name"`
	BookingDate   time.Time `json:"booking_date"`
	CreatedAt     time.Time `json:"created_at"`
	Status        string    `json:"status"`
}
