package middleware

import (
	"go-employee-directory/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
)

// RequestID accepts the caller's X-Request-ID or generates one, and echoes it back.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := requestID(c)

		ctx := contextutil.WithRequestID(c.Request.Context(), rid)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func requestID(c *gin.Context) string {
	if rid := c.GetString(RequestIDKey); rid != "" {
		return rid
	}

	rid := c.GetHeader(RequestIDHeader)
	if rid == "" {
		rid = uuid.New().String()
	}
	c.Set(RequestIDKey, rid)
	c.Header(RequestIDHeader, rid)
	return rid
}
