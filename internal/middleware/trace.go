package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"code-refactor-insight/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// Trace reuses the caller's X-Request-ID or generates one, echoes it back and
// stores it in the request context so every log entry carries it.
func (m Middleware) Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(HeaderRequestID)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		c.Header(HeaderRequestID, traceID)
		c.Request = c.Request.WithContext(log.WithTraceID(c.Request.Context(), traceID))
		c.Next()
	}
}
