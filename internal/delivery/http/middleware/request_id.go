package middleware

import (
	"go-jobboard-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID attaches a unique id to each request so responses and log lines
// can be correlated. An inbound X-Request-ID is honored when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(response.ContextKeyRequestID, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
