package observability

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestIDHeader is the inbound correlation header. When absent a
// fresh UUID is generated per request; the id is never persisted.
const RequestIDHeader = "X-Request-Id"

const requestIDKey = "solace_request_id"

// RequestID resolves the correlation id for the current request,
// echoing the inbound header when one was supplied.
func RequestID(c *gin.Context) string {
	if id, ok := c.Get(requestIDKey); ok {
		return id.(string)
	}
	id := c.GetHeader(RequestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDKey, id)
	return id
}

// RequestIDMiddleware pins the correlation id early and echoes it on
// the response for tracing.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header(RequestIDHeader, RequestID(c))
		c.Next()
	}
}

// RequestLogger logs one line per request with level by status class.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		event := logger.Info()
		if status >= 500 {
			event = logger.Error()
		} else if status >= 400 {
			event = logger.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Str("request_id", RequestID(c)).
			Msg("http_request")
	}
}

// RequestMetricsMiddleware feeds the per-route request counter.
func RequestMetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		RecordRequest(route, c.Writer.Status())
	}
}
