package http

import (
	"github.com/gin-gonic/gin"

	"dealership-assistant/internal/booking"
	"dealership-assistant/internal/catalog"
	"dealership-assistant/internal/dialogue"
	"dealership-assistant/internal/dialogue/session"
	"dealership-assistant/pkg/log"
)

// Handler is the public interface for the conversation HTTP delivery layer.
type Handler interface {
	Turn(c *gin.Context)
	Reset(c *gin.Context)
	Summary(c *gin.Context)
	ListVehicles(c *gin.Context)
	AvailableSlots(c *gin.Context)
	ListBookings(c *gin.Context)
	CancelBooking(c *gin.Context)
}

type handler struct {
	l         log.Logger
	uc        dialogue.UseCase
	catalogUC catalog.UseCase
	bookingUC booking.UseCase
	sessions  *session.Store
}

// New creates the HTTP handler for the conversation domain.
func New(l log.Logger, uc dialogue.UseCase, catalogUC catalog.UseCase, bookingUC booking.UseCase, sessions *session.Store) Handler {
	return &handler{
		l:         l,
		uc:        uc,
		catalogUC: catalogUC,
		bookingUC: bookingUC,
		sessions:  sessions,
	}
}
