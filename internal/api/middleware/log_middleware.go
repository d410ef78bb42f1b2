package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-linear/pkg/common/http/response"
	"github.com/huynhanx03/go-linear/pkg/constraints"
)

// LogMiddleware writes one access log line per request.
func LogMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.Info("[API]",
			zap.String(constraints.ContextKeyRequestID, c.GetString(constraints.ContextKeyRequestID)),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("method", c.Request.Method),
			zap.String("uri", c.Request.RequestURI),
		)
	}
}

// RecoveryMiddleware turns a panic into a 500 envelope and logs it.
func RecoveryMiddleware(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("panic recovered",
			zap.String(constraints.ContextKeyRequestID, c.GetString(constraints.ContextKeyRequestID)),
			zap.Any("panic", recovered),
		)
		response.ErrorResponse(c, response.CodeInternalServer, nil)
	})
}
