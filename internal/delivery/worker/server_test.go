package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketbot/config"
	"marketbot/internal/delivery/worker/handler"
	"marketbot/internal/infra/metrics"
	mockSvc "marketbot/internal/mocks/service"
	mockUsecase "marketbot/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func createTestServerParams(t *testing.T) ServerParams {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	return ServerParams{
		Lc:      fxtest.NewLifecycle(t),
		Cfg:     cfg,
		Logger:  logger,
		Metrics: metrics.New(),
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config:        cfg,
			Logger:        logger,
			Notifications: mockUsecase.NewMockNotificationUsecase(t),
			Dedupe:        mockSvc.NewMockDeduplicator(t),
		}),
	}
}

func TestWorkerServer_Routes(t *testing.T) {
	params := createTestServerParams(t)
	srv, err := NewServer(params)
	require.NoError(t, err)
	require.NotNil(t, srv)

	e := newEcho(params)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`not json`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
