package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"network-registry.backend/pkg/utils"
)

const CorrelationIDKey = "correlation_id"

// CorrelationIDMiddleware assigns a correlation id to every request.
// An incoming X-Correlation-ID header is honored so ids survive
// service hops; otherwise a fresh one is generated.
func CorrelationIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Correlation-ID")
		if id == "" {
			id = utils.GenerateUUIDv7().String()
		}

		c.Set(CorrelationIDKey, id)
		c.Header("X-Correlation-ID", id)

		// Mirror into the request context under the string key the
		// logger reads, so downstream layers inherit the id.
		ctx := context.WithValue(c.Request.Context(), CorrelationIDKey, id)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
