package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"code-refactor-insight/internal/insight"
	"code-refactor-insight/pkg/response"
)

// writeError translates use-case errors into HTTP responses.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, insight.ErrMissingReturnURL),
		errors.Is(err, insight.ErrInvalidReturnURL),
		errors.Is(err, insight.ErrMissingRepository),
		errors.Is(err, insight.ErrMissingRequiredSetting):
		response.Error(c, err, nil)
	case errors.Is(err, insight.ErrBusy):
		response.ServiceUnavailable(c, err)
	default:
		response.InternalError(c, err)
	}
}
