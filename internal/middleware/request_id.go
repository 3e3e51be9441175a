package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the trace ID between the SPA and this service
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is the context key the trace ID is stored under
	TraceIDContextKey = "trace_id"
)

// RequestID tags every request with a trace ID. An incoming X-Trace-ID is
// honored so the SPA can correlate a retried request with its first attempt;
// otherwise a fresh UUID is minted. The ID is echoed back in the response
// header and stored in the context for error responses and logs.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID returns the request's trace ID, empty when the middleware did
// not run
func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}
