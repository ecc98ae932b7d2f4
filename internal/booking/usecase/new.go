package usecase

import (
	"time"

	"dealership-assistant/internal/booking/repository"
	"dealership-assistant/pkg/datemath"
	pkgLog "dealership-assistant/pkg/log"
)

type implUseCase struct {
	l              pkgLog.Logger
	repo           repository.BookingRepository
	dateMath       *datemath.Parser
	openHour       int
	closeHour      int
	buffer         time.Duration
	candidateHours []string
	now            func() time.Time
}

// New creates a new booking UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.BookingRepository,
	dateMath *datemath.Parser,
	openHour int,
	closeHour int,
	bufferMinutes int,
	candidateHours []string,
) *implUseCase {
	return &implUseCase{
		l:              l,
		repo:           repo,
		dateMath:       dateMath,
		openHour:       openHour,
		closeHour:      closeHour,
		buffer:         time.Duration(bufferMinutes) * time.Minute,
		candidateHours: candidateHours,
		now:            time.Now,
	}
}
