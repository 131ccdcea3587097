package http

import (
	"github.com/gin-gonic/gin"

	"code-refactor-insight/pkg/response"
)

// Tick godoc
// @Summary     Trigger a report cycle
// @Description Validates the trigger, schedules one commit and analysis report and acknowledges immediately. The report is posted to return_url in the background.
// @Tags        Insight
// @Accept      json
// @Produce     json
// @Param       body body tickReq true "Trigger payload"
// @Success     200  {object} tickResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     403  {object} response.Resp "Forbidden - client IP not allowed"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     503  {object} response.Resp "Service Unavailable - queue full"
// @Router      /tick [POST]
func (h *handler) Tick(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTickReq(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.insight.delivery.http.Tick: invalid body: %v", err)
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Schedule(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "internal.insight.delivery.http.Tick: uc.Schedule: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newTickResp(output))
}
