package catalog

import "dealership-assistant/internal/model"

// SearchInput holds optional search criteria. Empty fields are ignored;
// matching is case-insensitive and restricted to available vehicles.
type SearchInput struct {
	Make     string
	Model    string
	Category string
	MaxPrice float64 // 0 means no price cap
}

// Empty reports whether no criteria were supplied at all.
func (in SearchInput) Empty() bool {
	return in.Make == "" && in.Model == "" && in.Category == "" && in.MaxPrice == 0
}

// SearchOutput is the result of a catalog search.
type SearchOutput struct {
	Vehicles []model.Vehicle
	Count    int
}
