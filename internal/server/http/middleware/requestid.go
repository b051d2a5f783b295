package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDContextKey is a gin context key for the per-request identifier.
	RequestIDContextKey = "requestID"
	requestIDHeader     = "X-Request-Id"
)

// AssignRequestID attaches an identifier to every request, honouring one
// supplied by the client.
func AssignRequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDContextKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// RequestID returns the identifier assigned to the current request.
func RequestID(c *gin.Context) string {
	val, ok := c.Get(RequestIDContextKey)
	if !ok {
		return ""
	}
	id, _ := val.(string)
	return id
}
