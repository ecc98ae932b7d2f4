package http

import (
	"github.com/gin-gonic/gin"
)

// processTurnReq binds and validates the conversation turn request.
func (h *handler) processTurnReq(c *gin.Context) (turnReq, error) {
	var req turnReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ConversationID = c.Param("id")
	return req, req.validate()
}

// processVehiclesReq binds and validates the vehicle search query parameters.
func (h *handler) processVehiclesReq(c *gin.Context) (vehiclesReq, error) {
	var req vehiclesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
