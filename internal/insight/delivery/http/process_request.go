package http

import (
	"github.com/gin-gonic/gin"
)

// processTickReq binds and validates the trigger body.
func (h *handler) processTickReq(c *gin.Context) (tickReq, error) {
	var req tickReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
