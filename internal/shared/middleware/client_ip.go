package middleware

import (
	"context"

	"bookden/internal/shared/utils"

	"github.com/gin-gonic/gin"
)

type contextKey string

// ClientIPKey is the request-context key under which the extracted client IP
// is stored. Rating attribution depends on it.
const ClientIPKey contextKey = "client_ip"

// ClientIP extracts the client IP address from the request and injects it
// into the request context for downstream services.
//
// Register it early in the middleware chain so all handlers see the IP.
func ClientIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := utils.ExtractClientIP(c)

		c.Set(string(ClientIPKey), clientIP)

		ctx := context.WithValue(c.Request.Context(), ClientIPKey, clientIP)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// ClientIPFromContext retrieves the client IP from a request context.
// Returns empty string if not present.
func ClientIPFromContext(ctx context.Context) string {
	if ip, ok := ctx.Value(ClientIPKey).(string); ok {
		return ip
	}
	return ""
}
