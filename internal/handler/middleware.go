package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jesbridge/backend/internal/logger"
)

// RequestID tags every request with an ID, echoing the caller's
// X-Request-ID when supplied, and logs the completed request.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)

		c.Next()

		logger.WithRequest(c).WithField("status", c.Writer.Status()).Info("request completed")
	}
}
