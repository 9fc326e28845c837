package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"scholarstream/internal/apperror"
)

// AccessLog writes one structured entry per request. A request-scoped logger
// carrying request_id is attached to the user context so handlers can use
// zerolog.Ctx.
func AccessLog(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		reqLog := log.With().Str("request_id", RequestIDFrom(c)).Logger()
		c.SetUserContext(reqLog.WithContext(c.UserContext()))

		err := c.Next()

		status := responseStatus(c, err)
		var ev *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = reqLog.Error().Err(err)
		case status >= fiber.StatusBadRequest:
			ev = reqLog.Warn()
		default:
			ev = reqLog.Info()
		}

		if sc := trace.SpanContextFromContext(c.UserContext()); sc.HasTraceID() {
			ev = ev.Str("trace_id", sc.TraceID().String())
		}

		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Str("ip", c.IP()).
			Float64("latency_ms", float64(time.Since(start).Microseconds())/1000).
			Msg("http_request")

		return err
	}
}

// responseStatus is the status the client will see. When the chain returned an
// error the app's error handler has not written it yet.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return apperror.StatusOf(apperror.KindOf(err))
}
