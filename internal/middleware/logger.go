package middleware

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	logx "github.com/oreana/assistant-server/pkg/logger"
)

// RequestIDKey is the header carrying the per-request correlation ID.
const RequestIDKey = "X-Request-ID"

// Logger logs one line per completed request, tagged with a request ID that
// is either propagated from the caller or generated here.
func Logger() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		start := time.Now()
		path := string(c.Path())

		skipLogging := path == "/ping"

		requestID := string(c.Request.Header.Peek(RequestIDKey))
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Response.Header.Set(RequestIDKey, requestID)

		c.Next(ctx)

		if skipLogging {
			return
		}

		latency := time.Since(start)
		status := c.Response.StatusCode()

		var evt *zerolog.Event
		switch {
		case status >= 500:
			evt = logx.Error()
		case status >= 400:
			evt = logx.Warn()
		default:
			evt = logx.Info()
		}
		evt.
			Str("request_id", requestID).
			Str("method", string(c.Method())).
			Str("path", path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("request completed")
	}
}

// GetRequestID returns the request ID assigned to this request.
func GetRequestID(c *app.RequestContext) string {
	return string(c.Response.Header.Peek(RequestIDKey))
}
