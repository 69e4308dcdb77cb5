package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"taskflow.com/taskflow/internal/auth"
)

func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			attrs := []any{
				"request_id", res.Header().Get(echo.HeaderXRequestID),
				"method", req.Method,
				"path", c.Path(),
				"status", res.Status,
				"latency", time.Since(start),
				"remote_ip", c.RealIP(),
			}
			if id := auth.ActorID(req.Context()); id != 0 {
				attrs = append(attrs, "actor_id", id)
			}

			switch {
			case res.Status >= 500:
				logger.Error("request failed", append(attrs, "error", err)...)
			case res.Status >= 400:
				logger.Warn("request rejected", attrs...)
			default:
				logger.Info("request handled", attrs...)
			}
			return nil
		}
	}
}
