package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"dealership-assistant/internal/booking"
	"dealership-assistant/internal/catalog"
	"dealership-assistant/internal/dialogue"
	"dealership-assistant/pkg/response"
)

// Turn runs one conversation turn and returns the assistant's reply.
func (h *handler) Turn(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTurnReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sess := h.sessions.Get(req.ConversationID)
	sess.Lock()
	defer sess.Unlock()

	out, err := h.uc.ProcessTurn(ctx, sess.State, dialogue.ProcessTurnInput{Utterance: req.Message})
	if err != nil {
		if errors.Is(err, dialogue.ErrEmptyUtterance) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "uc.ProcessTurn: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, turnResp{
		ConversationID: req.ConversationID,
		Reply:          out.Response,
		Intent:         string(out.Intent),
	})
}

// Reset clears the conversation history and booking draft.
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	sess := h.sessions.Get(id)
	sess.Lock()
	defer sess.Unlock()

	h.uc.Reset(ctx, sess.State)

	response.OK(c, gin.H{"conversation_id": id})
}

// Summary renders the conversation transcript summary.
func (h *handler) Summary(c *gin.Context) {
	id := c.Param("id")
	sess := h.sessions.Get(id)
	sess.Lock()
	defer sess.Unlock()

	response.OK(c, summaryResp{
		ConversationID: id,
		Summary:        sess.State.Summary(),
		Turns:          len(sess.State.History),
	})
}

// ListVehicles searches the catalog with optional filters.
func (h *handler) ListVehicles(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processVehiclesReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.catalogUC.Search(ctx, catalog.SearchInput{
		Make:     req.Make,
		Model:    req.Model,
		Category: req.Category,
		MaxPrice: req.MaxPrice,
	})
	if err != nil {
		h.l.Errorf(ctx, "catalogUC.Search: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, h.newVehiclesResp(out.Vehicles))
}

// AvailableSlots lists the free test-drive slots for a natural-language date.
func (h *handler) AvailableSlots(c *gin.Context) {
	ctx := c.Request.Context()

	dateText := c.Query("date")
	if dateText == "" {
		response.Error(c, errors.New("date query parameter is required"), nil)
		return
	}

	out, err := h.bookingUC.SlotsForDate(ctx, dateText)
	if err != nil {
		h.l.Errorf(ctx, "bookingUC.SlotsForDate: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, slotsResp{Date: dateText, OK: out.OK, Slots: out.Slots, Message: out.Message})
}

// ListBookings returns all bookings, newest first.
func (h *handler) ListBookings(c *gin.Context) {
	ctx := c.Request.Context()

	bookings, err := h.bookingUC.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "bookingUC.List: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, newBookingsResp(bookings))
}

// CancelBooking cancels a booking by its reference.
func (h *handler) CancelBooking(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if err := h.bookingUC.Cancel(ctx, id); err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			response.NotFound(c, err)
			return
		}
		h.l.Errorf(ctx, "bookingUC.Cancel: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"id": id, "status": "cancelled"})
}
