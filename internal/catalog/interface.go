package catalog

import (
	"context"

	"dealership-assistant/internal/model"
)

// UseCase defines the business logic interface for the vehicle catalog.
type UseCase interface {
	// Search finds available vehicles matching the given criteria.
	Search(ctx context.Context, input SearchInput) (SearchOutput, error)

	// Get returns one vehicle by ID.
	Get(ctx context.Context, id string) (model.Vehicle, error)

	// Categories lists the categories that have available vehicles.
	Categories(ctx context.Context) ([]string, error)

	// Summary renders a one-line customer-facing description of a vehicle.
	Summary(vehicle model.Vehicle) string

	// FormatList renders a spoken-style listing of search results.
	FormatList(vehicles []model.Vehicle) string
}
