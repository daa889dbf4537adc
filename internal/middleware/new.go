package middleware

import (
	"golang.org/x/time/rate"

	pkgLog "calendar-nlu-service/pkg/log"
)

// Middleware bundles the cross-cutting gin middleware for the service.
type Middleware struct {
	l       pkgLog.Logger
	limiter *rate.Limiter
}

// New creates the middleware bundle. rateLimitPerMin <= 0 disables rate
// limiting.
func New(l pkgLog.Logger, rateLimitPerMin int) Middleware {
	var limiter *rate.Limiter
	if rateLimitPerMin > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(rateLimitPerMin)/60.0), rateLimitPerMin)
	}
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
