package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/huynhanx03/go-linear/pkg/constraints"
)

// RequestIDMiddleware reuses the caller's request id or generates one.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(constraints.HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(constraints.ContextKeyRequestID, id)
		c.Header(constraints.HeaderRequestID, id)
		c.Next()
	}
}
