package usecase

import (
	"dealership-assistant/internal/booking"
	"dealership-assistant/internal/catalog"
	"dealership-assistant/internal/dialogue"
	"dealership-assistant/pkg/datemath"
	pkgLog "dealership-assistant/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	nlu       dialogue.NLUEngine
	catalogUC catalog.UseCase
	bookingUC booking.UseCase
	dateMath  *datemath.Parser
}

// New creates a new dialogue UseCase instance.
func New(
	l pkgLog.Logger,
	nlu dialogue.NLUEngine,
	catalogUC catalog.UseCase,
	bookingUC booking.UseCase,
	dateMath *datemath.Parser,
) *implUseCase {
	return &implUseCase{
		l:         l,
		nlu:       nlu,
		catalogUC: catalogUC,
		bookingUC: bookingUC,
		dateMath:  dateMath,
	}
}
