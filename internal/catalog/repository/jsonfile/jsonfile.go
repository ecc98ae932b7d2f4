package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"dealership-assistant/internal/model"
	pkgLog "dealership-assistant/pkg/log"
)

// knowledgeBase mirrors the catalog file layout.
type knowledgeBase struct {
	Vehicles []model.Vehicle `json:"vehicles"`
}

// Repository serves vehicles from a JSON knowledge-base file loaded once
// at startup. The catalog is read-only reference data.
type Repository struct {
	l        pkgLog.Logger
	vehicles []model.Vehicle
	byID     map[string]model.Vehicle
}

// New loads the catalog file at path.
func New(l pkgLog.Logger, path string) (*Repository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file %s: %w", path, err)
	}

	var kb knowledgeBase
	if err := json.Unmarshal(raw, &kb); err != nil {
		return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
	}

	byID := make(map[string]model.Vehicle, len(kb.Vehicles))
	for _, v := range kb.Vehicles {
		byID[v.ID] = v
	}

	l.Infof(context.Background(), "internal.catalog.repository.jsonfile: loaded %d vehicles from %s", len(kb.Vehicles), path)

	return &Repository{
		l:        l,
		vehicles: kb.Vehicles,
		byID:     byID,
	}, nil
}

// NewFromVehicles builds a repository from an in-memory slice (used by tests).
func NewFromVehicles(l pkgLog.Logger, vehicles []model.Vehicle) *Repository {
	byID := make(map[string]model.Vehicle, len(vehicles))
	for _, v := range vehicles {
		byID[v.ID] = v
	}
	return &Repository{l: l, vehicles: vehicles, byID: byID}
}

func (r *Repository) All(ctx context.Context) ([]model.Vehicle, error) {
	out := make([]model.Vehicle, len(r.vehicles))
	copy(out, r.vehicles)
	return out, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (model.Vehicle, bool, error) {
	v, ok := r.byID[id]
	return v, ok, nil
}
