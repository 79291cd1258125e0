package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// CallerIDHeader identifies the end user on key-management routes. The
// header value is logged for audit correlation; key material itself never
// reaches the logger.
const CallerIDHeader = "X-User-ID"

// RequestLogger returns middleware that writes one structured log line
// per completed request. 5xx responses log at error level, 4xx at warn,
// everything else at info.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				// Route the error through echo first so the logged
				// status is the one the client actually received.
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			event := eventForStatus(log, res.Status).
				Str("request_id", GetRequestID(c)).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Int("status", res.Status).
				Int64("latency_ms", time.Since(start).Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent())

			if caller := req.Header.Get(CallerIDHeader); caller != "" {
				event = event.Str("caller_id", caller)
			}

			event.Msg("request completed")

			// The error was already handled via c.Error above.
			return nil
		}
	}
}

func eventForStatus(log zerolog.Logger, status int) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return log.Error()
	case status >= http.StatusBadRequest:
		return log.Warn()
	default:
		return log.Info()
	}
}
