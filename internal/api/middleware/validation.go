package middleware

import (
	"net/http"
	"time"

	"career-advisor/pkg/models"
	"career-advisor/pkg/utils"

	"github.com/labstack/echo/v4"
)

// RequestValidation middleware tags every request with an ID and rejects
// POST bodies larger than maxBodyBytes before they reach a handler. Profile
// payloads are small; anything near the cap is not a legitimate request.
func RequestValidation(maxBodyBytes int64) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			if c.Request().Method == http.MethodPost && maxBodyBytes > 0 {
				if c.Request().ContentLength > maxBodyBytes {
					return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
						Error:     "request_too_large",
						Message:   "Request body too large",
						RequestID: requestID,
						Timestamp: time.Now(),
					})
				}
			}

			return next(c)
		}
	}
}
