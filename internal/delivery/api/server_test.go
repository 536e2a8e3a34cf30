package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketbot/config"
	apimiddleware "marketbot/internal/delivery/api/middleware"
	"marketbot/internal/delivery/api/router"
	"marketbot/internal/delivery/api/router/handler"
	"marketbot/internal/domain/entity"
	"marketbot/internal/domain/service"
	"marketbot/internal/infra/metrics"
	mockSvc "marketbot/internal/mocks/service"
	mockUsecase "marketbot/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/fx/fxtest"
)

type readyBot struct{}

func (readyBot) Ready() error { return nil }

type serverFixture struct {
	e           *echo.Echo
	tokenSvc    *mockSvc.MockTokenService
	events      *mockUsecase.MockEventUsecase
	accountLink *mockUsecase.MockAccountLinkUsecase
}

func createTestServer(t *testing.T) *serverFixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Telegram: &config.TelegramConfig{BotUsername: "AutosBot"}}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	m := metrics.New()

	fx := &serverFixture{
		tokenSvc:    mockSvc.NewMockTokenService(t),
		events:      mockUsecase.NewMockEventUsecase(t),
		accountLink: mockUsecase.NewMockAccountLinkUsecase(t),
	}

	params := ServerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			WebhookHandler: handler.NewWebhookHandler(handler.WebhookHandlerParams{
				Commands: mockUsecase.NewMockCommandUsecase(t),
				Dedupe:   mockSvc.NewMockDeduplicator(t),
				Bot:      readyBot{},
				Metrics:  m,
				Config:   cfg,
				Logger:   logger,
			}),
			EventHandler:   handler.NewEventHandler(handler.EventHandlerParams{Events: fx.events, Logger: logger}),
			LinkHandler:    handler.NewLinkHandler(handler.LinkHandlerParams{AccountLink: fx.accountLink}),
			AuthMiddleware: apimiddleware.NewAuthMiddleware(fx.tokenSvc, logger),
			Metrics:        m,
		},
	}
	fx.e = newEcho(params)

	srv, err := NewServer(params)
	assert.NoError(t, err)
	assert.NotNil(t, srv)

	return fx
}

func (fx *serverFixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, req)

	return rec
}

func TestServer_PublicRoutes(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	rec = fx.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")

	rec = fx.do(httptest.NewRequest(http.MethodGet, "/telegram/webhook", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "AutosBot")
}

func TestServer_APIRequiresServiceToken(t *testing.T) {
	fx := createTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader(`{"kind":"market_summary"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := fx.do(req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	fx.events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestServer_RolesAreEnforcedPerRoute(t *testing.T) {
	fx := createTestServer(t)
	fx.tokenSvc.EXPECT().ValidateToken("publisher-token").
		Return(&service.Claims{Service: "marketplace", Roles: []string{entity.RolePublisher.String()}}, nil)
	fx.events.EXPECT().Publish(mock.Anything, mock.Anything).
		Return(&entity.NotificationEvent{ID: "evt-1", Kind: entity.EventMarketSummary}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader(`{"kind":"market_summary"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer publisher-token")
	assert.Equal(t, http.StatusAccepted, fx.do(req).Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/link/qr?token=abc123", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer publisher-token")
	assert.Equal(t, http.StatusForbidden, fx.do(req).Code)
	fx.accountLink.AssertNotCalled(t, "LinkQRCode", mock.Anything)
}
