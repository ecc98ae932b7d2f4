package http

import (
	"github.com/gin-gonic/gin"

	"dealership-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Every
// route goes through the per-client rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw *middleware.Middleware) {
	conversations := rg.Group("/conversations", mw.RateLimit())
	{
		conversations.POST("/:id/turns", h.Turn)
		conversations.POST("/:id/reset", h.Reset)
		conversations.GET("/:id/summary", h.Summary)
	}

	vehicles := rg.Group("/vehicles", mw.RateLimit())
	{
		vehicles.GET("", h.ListVehicles)
	}

	bookings := rg.Group("/bookings", mw.RateLimit())
	{
		bookings.GET("/slots", h.AvailableSlots)
		bookings.GET("", h.ListBookings)
		bookings.DELETE("/:id", h.CancelBooking)
	}
}
