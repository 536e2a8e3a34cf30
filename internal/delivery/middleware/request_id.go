package middleware

import (
	"log/slog"

	deliverycontext "marketbot/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// maxInboundRequestIDLen caps ids accepted from callers.
const maxInboundRequestIDLen = 64

// RequestIDMiddleware gives every request an id and a logger carrying it.
// Ids from the X-Request-Id header are reused when they look like ids;
// anything else is replaced so callers cannot write arbitrary text into logs.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

// Process stores the id on the echo context, the request context and the
// response header.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		inbound := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if !acceptableRequestID(inbound) {
			inbound = ""
		}
		requestID := deliverycontext.FirstRequestID(inbound)

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx, _ := deliverycontext.WithRequestScope(c.Request().Context(), m.logger, requestID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func acceptableRequestID(id string) bool {
	if id == "" || len(id) > maxInboundRequestIDLen {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == ':':
		default:
			return false
		}
	}

	return true
}
