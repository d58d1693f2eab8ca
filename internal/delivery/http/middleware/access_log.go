package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

type AccessLogMiddleware struct {
	logger *zap.SugaredLogger
}

func NewAccessLogMiddleware(logger *zap.SugaredLogger) *AccessLogMiddleware {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &AccessLogMiddleware{logger: logger}
}

// Middleware assigns a request id when the caller did not send one and logs
// one line per request after the handler chain ran.
func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDHeader, rid)

		err := c.Next()

		m.logger.Infow("http access",
			"rid", rid,
			"ip", c.IP(),
			"method", c.Method(),
			"path", c.OriginalURL(),
			"status", c.Response().StatusCode(),
			"latency", time.Since(start),
			"req_bytes", c.Request().Header.ContentLength(),
			"resp_bytes", len(c.Response().Body()),
			"ua", c.Get("User-Agent"),
		)

		return err
	}
}
