package catalog

import "errors"

// Domain-specific errors for the catalog package.
var (
	ErrVehicleNotFound = errors.New("vehicle not found")
)
