// Package request holds the per-request plumbing shared by every route:
// correlation ids, the access log and the central error handler
package request

import (
	"bytes"
	"fmt"
	"io"
	"regexp"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/xid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/totegamma/charsheet/core"
)

var requestIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

func skipInfra(c echo.Context) bool {
	return c.Path() == "/metrics" || c.Path() == "/health"
}

// RequestID attaches a correlation id to every request.
// A well-formed incoming X-Request-ID is reused, otherwise a new one is generated.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(core.RequestIDHeader)
			if !requestIDPattern.MatchString(id) {
				id = xid.New().String()
			}

			ctx := core.WithRequestID(c.Request().Context(), id)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Set(core.RequestIDCtxKey, id)
			c.Response().Header().Set(core.RequestIDHeader, id)

			span := trace.SpanFromContext(ctx)
			span.SetAttributes(attribute.String("request.id", id))
			if span.SpanContext().IsValid() {
				c.Response().Header().Set(core.TraceIDHeader, span.SpanContext().TraceID().String())
			}

			return next(c)
		}
	}
}

// IDOf returns the correlation id of the current request
func IDOf(c echo.Context) string {
	id, _ := c.Get(core.RequestIDCtxKey).(string)
	return id
}

// AccessLog writes one json line per request to w
func AccessLog(w io.Writer) echo.MiddlewareFunc {
	return middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: skipInfra,
		Format: `{"time":"${time_rfc3339_nano}","type":"access",${custom},"remote_ip":"${remote_ip}",` +
			`"host":"${host}","method":"${method}","uri":"${uri}","status":${status},` +
			`"error":"${error}","latency":${latency},"latency_human":"${latency_human}",` +
			`"bytes_in":${bytes_in},"bytes_out":${bytes_out}}` + "\n",
		CustomTagFunc: func(c echo.Context, buf *bytes.Buffer) (int, error) {
			span := trace.SpanFromContext(c.Request().Context())
			buf.WriteString(fmt.Sprintf("\"%s\":\"%s\"", "requestID", IDOf(c)))
			buf.WriteString(fmt.Sprintf(",\"%s\":\"%s\"", "traceID", span.SpanContext().TraceID().String()))
			buf.WriteString(fmt.Sprintf(",\"%s\":\"%s\"", "spanID", span.SpanContext().SpanID().String()))
			return 0, nil
		},
		Output: w,
	})
}
