package middleware

import (
	"github.com/gin-gonic/gin"

	pkgResponse "calendar-nlu-service/pkg/response"
)

// RateLimit applies a process-wide token bucket to the wrapped routes and
// answers 429 when the budget is spent. A nil limiter passes everything
// through.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter != nil && !m.limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s %s", c.Request.Method, c.Request.URL.Path)
			pkgResponse.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
