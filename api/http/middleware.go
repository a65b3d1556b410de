package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ai-resume-backend/pkg/metrics"
)

// RequestLogger logs every request and records request metrics. Responses
// with status >= 400 are logged at warn level.
func RequestLogger(log *zap.Logger, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		// The app's error handler runs after this middleware, so on error
		// the response status is not set yet; resolve it from the error.
		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		duration := time.Since(start)

		// Label with the route pattern, not the raw path: path params
		// like thread ids must not expand the label set.
		routePath := c.Route().Path
		m.HTTPRequestsTotal.WithLabelValues(c.Method(), routePath, strconv.Itoa(status)).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Method(), routePath).Observe(duration.Seconds())

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
		}
		if status >= fiber.StatusBadRequest {
			log.Warn("http request", fields...)
		} else {
			log.Info("http request", fields...)
		}
		return err
	}
}
