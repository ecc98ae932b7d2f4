package usecase

import (
	"context"
	"sort"
	"strings"

	"dealership-assistant/internal/catalog"
	"dealership-assistant/internal/model"
)

// Search filters the catalog by the supplied criteria. Only available
// vehicles are returned; all string matching is case-insensitive.
func (uc *implUseCase) Search(ctx context.Context, input catalog.SearchInput) (catalog.SearchOutput, error) {
	all, err := uc.repo.All(ctx)
	if err != nil {
		return catalog.SearchOutput{}, err
	}

	var results []model.Vehicle
	for _, v := range all {
		if !v.Available {
			continue
		}
		if input.Make != "" && !strings.EqualFold(v.Make, input.Make) {
			continue
		}
		if input.Model != "" && !strings.EqualFold(v.Model, input.Model) {
			continue
		}
		if input.Category != "" && !strings.EqualFold(v.Category, input.Category) {
			continue
		}
		if input.MaxPrice > 0 && v.Price > input.MaxPrice {
			continue
		}
		results = append(results, v)
	}

	uc.l.Infof(ctx, "internal.catalog.Search: returned %d vehicles", len(results))

	return catalog.SearchOutput{
		Vehicles: results,
		Count:    len(results),
	}, nil
}

// Get returns one vehicle by ID.
func (uc *implUseCase) Get(ctx context.Context, id string) (model.Vehicle, error) {
	v, ok, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return model.Vehicle{}, err
	}
	if !ok {
		return model.Vehicle{}, catalog.ErrVehicleNotFound
	}
	return v, nil
}

// Categories lists the distinct categories with available vehicles, sorted.
func (uc *implUseCase) Categories(ctx context.Context) ([]string, error) {
	all, err := uc.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var categories []string
	for _, v := range all {
		if !v.Available {
			continue
		}
		c := strings.ToLower(v.Category)
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		categories = append(categories, c)
	}

	sort.Strings(categories)
	return categories, nil
}
