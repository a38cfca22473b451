// Package middleware contains HTTP middlewares for delivery.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs HTTP requests with method, path, status and duration.
// Server errors log at error level, client errors at warn. A panic is logged
// with status 500 and re-raised for the recover middleware.
func RequestLogger(log *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				fields := requestFields(c, fiber.StatusInternalServerError, time.Since(start))
				log.Errorw("http", append(fields, "panic", r)...)
				panic(r)
			}
		}()

		if err := c.Next(); err != nil {
			// let the app error handler set the final status before it is logged
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		fields := requestFields(c, status, time.Since(start))
		switch {
		case status >= fiber.StatusInternalServerError:
			log.Errorw("http", fields...)
		case status >= fiber.StatusBadRequest:
			log.Warnw("http", fields...)
		default:
			log.Infow("http", fields...)
		}
		return nil
	}
}

func requestFields(c *fiber.Ctx, status int, dur time.Duration) []any {
	reqID, _ := c.Locals("requestid").(string)
	if reqID == "" {
		reqID = c.Get(fiber.HeaderXRequestID)
	}
	return []any{
		"method", c.Method(),
		"path", c.OriginalURL(),
		"status", status,
		"duration_ms", float64(dur.Microseconds()) / 1000.0,
		"request_id", reqID,
	}
}
