package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// RateLimit returns per-client rate limiting middleware. Limits are keyed on
// the caller's IP; every advice request costs one upstream model call (three
// for the comprehensive path), so the server throttles before dispatching.
func RateLimit(requestsPerSecond float64, burst int) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(requestsPerSecond),
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		}),
	})
}
