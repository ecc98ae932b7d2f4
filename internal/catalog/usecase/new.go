package usecase

import (
	"dealership-assistant/internal/catalog/repository"
	pkgLog "dealership-assistant/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.VehicleRepository
}

// New creates a new catalog UseCase instance.
func New(l pkgLog.Logger, repo repository.VehicleRepository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
