package middleware

import (
	"go-employee-directory/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger puts a logger tagged with the request id and route on the
// request context, where services read it back through contextutil.GetLogger.
// It reuses the id set by RequestID when that runs first.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	return func(c *gin.Context) {
		rid := requestID(c)

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("route", c.FullPath()),
		)

		ctx := c.Request.Context()
		ctx = contextutil.WithRequestID(ctx, rid)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
