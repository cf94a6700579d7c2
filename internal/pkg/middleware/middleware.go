package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/acmepay/transactions/internal/pkg/logger"
)

// RequestIDMiddleware assigns each request an id, honoring one supplied by the
// caller.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}
			c.Set("request_id", requestID)
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			return next(c)
		}
	}
}

// LoggingMiddleware logs each request with latency and status.
func LoggingMiddleware(log *logger.AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			requestID, _ := c.Get("request_id").(string)
			entry := log.WithFields(logrus.Fields{
				"request_id": requestID,
				"method":     c.Request().Method,
				"path":       c.Request().URL.Path,
				"status":     c.Response().Status,
				"latency_ms": time.Since(start).Milliseconds(),
				"client_ip":  c.RealIP(),
			})

			switch {
			case c.Response().Status >= 500:
				entry.Error("Server error")
			case c.Response().Status >= 400:
				entry.Warn("Client error")
			default:
				entry.Info("Request processed")
			}
			return err
		}
	}
}
