package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// SelectiveTimeoutConfig applies the default deadline to most routes and a
// longer one to the advice endpoints, which spend their time waiting on the
// hosted model (the comprehensive path makes three sequential calls).
func SelectiveTimeoutConfig(defaultTimeout, adviceTimeout time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			timeout := defaultTimeout
			if isAdviceRoute(c.Request().URL.Path) {
				timeout = adviceTimeout
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
			defer cancel()

			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// isAdviceRoute reports whether the path reaches a model-backed handler
func isAdviceRoute(path string) bool {
	return strings.HasPrefix(path, "/api/v1/") || path == "/ui"
}
