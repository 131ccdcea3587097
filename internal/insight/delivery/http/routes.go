package http

import (
	"github.com/gin-gonic/gin"

	"code-refactor-insight/internal/middleware"
)

// RegisterRoutes maps the trigger endpoint. Callers outside the allowlist are
// rejected before the rate limiter counts them.
func RegisterRoutes(r gin.IRouter, h *handler, mw middleware.Middleware) {
	r.POST("/tick", mw.AllowIPs(), mw.RateLimit(), h.Tick)
}
