// Package middleware wires the cross-cutting HTTP concerns: request
// correlation, structured request logging, and panic recovery.
package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDHeader carries the correlation ID between client and server.
const RequestIDHeader = echo.HeaderXRequestID

// ctxKeyRequestID is the echo context key the middleware stores the ID under.
const ctxKeyRequestID = "request_id"

// RequestID returns middleware that tags every request with a correlation
// ID. A client-supplied X-Request-ID is reused and echoed back; otherwise
// a fresh UUID is issued. Handlers read the ID via GetRequestID.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}

			c.Set(ctxKeyRequestID, id)
			c.Response().Header().Set(RequestIDHeader, id)

			return next(c)
		}
	}
}

// GetRequestID returns the correlation ID for the current request, or an
// empty string when the RequestID middleware did not run.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(ctxKeyRequestID).(string)
	return id
}
