package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-Id"
	requestIDKey    = "request_id"
)

// RequestID tags every request with an id, honoring one supplied by the
// storefront proxy so a browser-reported failure can be traced end to end.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)

		c.Next()
	}
}

// RequestIDFrom returns the id assigned by RequestID, or "" outside it.
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
