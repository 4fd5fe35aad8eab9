package middleware

import (
	"time"

	"wallet_gateway/internal/config/log"

	"github.com/labstack/echo/v4"
)

// AccessLogHandler logs one line per request with the fields the access
// log file is grepped by.
func AccessLogHandler(logger log.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			logger.With(req.Context(),
				"request_id", res.Header().Get(echo.HeaderXRequestID),
				"method", req.Method,
				"uri", req.RequestURI,
				"status", res.Status,
				"latency_ms", time.Since(start).Milliseconds(),
				"remote_ip", c.RealIP(),
			).Info("access")

			return nil
		}
	}
}
