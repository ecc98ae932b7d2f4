package booking

import "dealership-assistant/internal/model"

// FailReason tags why a Book call could not complete.
type FailReason string

const (
	FailNone        FailReason = ""
	FailUnparseable FailReason = "unparseable"   // date/time text could not be normalized
	FailConflict    FailReason = "slot_conflict" // slot taken or outside operating hours
)

// AvailabilityResult is the outcome of a single-slot availability check.
type AvailabilityResult struct {
	Available    bool
	Message      string
	Alternatives []string // free candidate hours, present only on conflict
}

// SlotsResult is the outcome of a free-slots-for-date inquiry.
type SlotsResult struct {
	OK      bool
	Slots   []string
	Message string
}

// BookInput carries the validated draft fields into finalization.
type BookInput struct {
	CustomerName  string
	CustomerPhone string
	VehicleID     string
	VehicleName   string
	DateText      string // natural-language date, e.g. "tomorrow"
	TimeText      string // natural-language time, e.g. "3 PM"
}

// BookResult is the typed outcome of a finalization attempt.
// Created=false with a FailReason is a conversational outcome, not an error.
type BookResult struct {
	Created      bool
	Reason       FailReason
	Booking      model.Booking
	Message      string
	Alternatives []string
}
