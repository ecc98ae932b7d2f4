package repository

import (
	"context"

	"dealership-assistant/internal/model"
)

// VehicleRepository is the interface for catalog data access.
type VehicleRepository interface {
	All(ctx context.Context) ([]model.Vehicle, error)
	GetByID(ctx context.Context, id string) (model.Vehicle, bool, error)
}
