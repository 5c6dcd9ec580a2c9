package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pairdraw/pairdraw/backend/utils"
)

// LoggingMiddleware logs every HTTP request in structured form. The
// level escalates with the response status.
func LoggingMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start)
		statusCode := c.Response().StatusCode()

		logLevel := slog.LevelInfo
		if statusCode >= 400 && statusCode < 500 {
			logLevel = slog.LevelWarn
		} else if statusCode >= 500 {
			logLevel = slog.LevelError
		}

		attrs := []any{
			slog.String("type", "http"),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", statusCode),
			slog.Duration("duration", duration),
			slog.String("ip", utils.GetIPAddress(c)),
		}
		if err != nil {
			attrs = append(attrs, slog.Any("error", err))
		}

		slog.Log(c.UserContext(), logLevel, "HTTP request", attrs...)
		return err
	}
}
