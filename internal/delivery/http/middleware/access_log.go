package middleware

import (
	"time"

	"placement-engine/internal/pkg/logger"
	"placement-engine/internal/pkg/metrics"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

type AccessLogMiddleware struct {
	log     logger.Logger
	metrics *metrics.Manager
}

func NewAccessLogMiddleware(log logger.Logger, m *metrics.Manager) *AccessLogMiddleware {
	if log == nil {
		log = logger.Nop()
	}
	return &AccessLogMiddleware{log: log.Named("access"), metrics: m}
}

// Middleware tags each request with an id, logs it once it completes and
// records the request counters. It must be registered before the error
// middleware so the final status is visible.
func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(HeaderRequestID, rid)

		err := c.Next()

		dur := time.Since(start)
		status := c.Response().StatusCode()
		route := c.Route().Path
		if route == "" {
			route = "unmatched"
		}

		m.metrics.RecordHTTP(c.Method(), route, status, dur)
		m.log.Info(c.Context(), "http access",
			logger.String("rid", rid),
			logger.String("ip", c.IP()),
			logger.String("method", c.Method()),
			logger.String("path", c.OriginalURL()),
			logger.String("route", route),
			logger.Int("status", status),
			logger.Duration("latency", dur),
			logger.Int("resp_bytes", len(c.Response().Body())),
			logger.String("ua", c.Get("User-Agent")),
		)
		return err
	}
}
