package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketbot/config"
	deliverycontext "marketbot/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewJSONHandler(buf, nil)), buf
}

func TestRequestIDMiddleware_PropagatesHeader(t *testing.T) {
	logger, _ := newBufferLogger()
	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)

	var seen string
	e.GET("/", func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		require.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-abc")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-abc", seen)
	assert.Equal(t, "req-abc", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	logger, _ := newBufferLogger()
	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_ReplacesUnsafeHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "control characters", header: "abc\ninjected=1"},
		{name: "spaces", header: "req abc"},
		{name: "too long", header: strings.Repeat("a", maxInboundRequestIDLen+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := newBufferLogger()
			e := echo.New()
			e.Use(NewRequestIDMiddleware(logger).Process)
			e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header[deliverycontext.HeaderXRequestID] = []string{tt.header}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEqual(t, tt.header, got)
			assert.True(t, acceptableRequestID(got))
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		path    string
		status  int
		wantLog bool
	}{
		{name: "debug logs success", debug: true, path: "/api", status: http.StatusOK, wantLog: true},
		{name: "quiet skips success", debug: false, path: "/api", status: http.StatusOK, wantLog: false},
		{name: "quiet logs server errors", debug: false, path: "/api", status: http.StatusBadGateway, wantLog: true},
		{name: "health checks are skipped", debug: true, path: "/health", status: http.StatusOK, wantLog: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger()
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			e.Use(NewLoggerMiddleware(logger, cfg).Handle)
			e.GET(tt.path, func(c echo.Context) error { return c.NoContent(tt.status) })

			req := httptest.NewRequest(http.MethodGet, tt.path+"?token=secret", nil)
			e.ServeHTTP(httptest.NewRecorder(), req)

			if tt.wantLog {
				assert.Contains(t, buf.String(), "HTTP Request")
				assert.NotContains(t, buf.String(), "secret")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}
