package booking

import "errors"

// Domain-specific errors for the booking package.
var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrPersistence     = errors.New("booking store write failed")
)
