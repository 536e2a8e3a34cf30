package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"marketbot/config"
	"marketbot/internal/domain/entity"
	"marketbot/internal/errors"
	"marketbot/internal/infra/metrics"
	mockSvc "marketbot/internal/mocks/service"
	mockUsecase "marketbot/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const messageUpdate = `{
	"update_id": 100,
	"message": {
		"message_id": 5,
		"date": 1715342400,
		"from": {"id": 777, "is_bot": false, "first_name": "Ana", "last_name": "Pérez", "username": "anap"},
		"chat": {"id": 777, "type": "private"},
		"text": "/buscar toyota"
	}
}`

type fakeBot struct {
	err error
}

func (f fakeBot) Ready() error { return f.err }

type webhookFixture struct {
	e        *echo.Echo
	handler  *WebhookHandler
	commands *mockUsecase.MockCommandUsecase
	dedupe   *mockSvc.MockDeduplicator
	metrics  *metrics.Metrics
}

func createTestWebhookHandler(t *testing.T, secret string, bot BotInitializer) *webhookFixture {
	fx := &webhookFixture{
		e:        newTestEcho(),
		commands: mockUsecase.NewMockCommandUsecase(t),
		dedupe:   mockSvc.NewMockDeduplicator(t),
		metrics:  metrics.New(),
	}

	cfg := &config.Config{Telegram: &config.TelegramConfig{
		BotUsername:   "AutosBot",
		WebhookSecret: secret,
	}}
	fx.handler = NewWebhookHandler(WebhookHandlerParams{
		Commands: fx.commands,
		Dedupe:   fx.dedupe,
		Bot:      bot,
		Metrics:  fx.metrics,
		Config:   cfg,
		Logger:   testLogger(),
	})
	fx.handler.now = func() time.Time { return time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC) }

	fx.e.POST("/telegram/webhook", fx.handler.Receive)
	fx.e.GET("/telegram/webhook", fx.handler.Status)

	return fx
}

func (fx *webhookFixture) post(body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/telegram/webhook", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, req)

	return rec
}

func TestWebhookHandler_Receive_Message(t *testing.T) {
	fx := createTestWebhookHandler(t, "", fakeBot{})

	fx.dedupe.EXPECT().FirstSeen(mock.Anything, "update:100").Return(true, nil)
	fx.commands.EXPECT().
		HandleUpdate(mock.Anything, mock.MatchedBy(func(u entity.InboundUpdate) bool {
			return u.UpdateID == 100 && u.ChatID == "777" && u.SenderID == "777" &&
				u.Text == "/buscar toyota" && u.SenderName == "Ana Pérez"
		})).
		Return()

	rec := fx.post(messageUpdate, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.UpdatesReceived.WithLabelValues("message")))
}

func TestWebhookHandler_Receive_Callback(t *testing.T) {
	fx := createTestWebhookHandler(t, "", fakeBot{})
	body := `{"update_id": 101, "callback_query": {"id": "cb-1", "from": {"id": 777, "is_bot": false, "first_name": "Ana"},
		"message": {"message_id": 9, "date": 0, "chat": {"id": 777, "type": "private"}}, "data": "latest"}}`

	fx.dedupe.EXPECT().FirstSeen(mock.Anything, "update:101").Return(true, nil)
	fx.commands.EXPECT().
		HandleUpdate(mock.Anything, mock.MatchedBy(func(u entity.InboundUpdate) bool {
			return u.IsCallback() && u.CallbackData == "latest"
		})).
		Return()

	rec := fx.post(body, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.UpdatesReceived.WithLabelValues("callback")))
}

func TestWebhookHandler_Receive_SecretToken(t *testing.T) {
	t.Run("mismatch is rejected", func(t *testing.T) {
		fx := createTestWebhookHandler(t, "s3cret", fakeBot{})

		rec := fx.post(messageUpdate, map[string]string{HeaderSecretToken: "wrong"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		fx.commands.AssertNotCalled(t, "HandleUpdate", mock.Anything, mock.Anything)
	})

	t.Run("match is accepted", func(t *testing.T) {
		fx := createTestWebhookHandler(t, "s3cret", fakeBot{})
		fx.dedupe.EXPECT().FirstSeen(mock.Anything, "update:100").Return(true, nil)
		fx.commands.EXPECT().HandleUpdate(mock.Anything, mock.Anything).Return()

		rec := fx.post(messageUpdate, map[string]string{HeaderSecretToken: "s3cret"})

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestWebhookHandler_Receive_IgnoredUpdate(t *testing.T) {
	fx := createTestWebhookHandler(t, "", fakeBot{})

	rec := fx.post(`{"update_id": 102, "edited_message": {"message_id": 1, "date": 0, "chat": {"id": 1, "type": "private"}}}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.UpdatesReceived.WithLabelValues("ignored")))
}

func TestWebhookHandler_Receive_Duplicate(t *testing.T) {
	fx := createTestWebhookHandler(t, "", fakeBot{})
	fx.dedupe.EXPECT().FirstSeen(mock.Anything, "update:100").Return(false, nil)

	rec := fx.post(messageUpdate, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.UpdatesDuplicated))
	fx.commands.AssertNotCalled(t, "HandleUpdate", mock.Anything, mock.Anything)
}

func TestWebhookHandler_Receive_DedupeFailureStillProcesses(t *testing.T) {
	fx := createTestWebhookHandler(t, "", fakeBot{})
	fx.dedupe.EXPECT().FirstSeen(mock.Anything, "update:100").Return(false, errors.New("redis down"))
	fx.commands.EXPECT().HandleUpdate(mock.Anything, mock.Anything).Return()

	rec := fx.post(messageUpdate, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhookHandler_Receive_BotUnavailable(t *testing.T) {
	fx := createTestWebhookHandler(t, "", fakeBot{err: errors.New("getMe: unauthorized")})
	fx.dedupe.EXPECT().FirstSeen(mock.Anything, "update:100").Return(true, nil)
	fx.dedupe.EXPECT().Release(mock.Anything, "update:100").Return(nil)

	rec := fx.post(messageUpdate, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestWebhookHandler_Receive_Panic(t *testing.T) {
	fx := createTestWebhookHandler(t, "", fakeBot{})
	fx.dedupe.EXPECT().FirstSeen(mock.Anything, "update:100").Return(true, nil)
	fx.dedupe.EXPECT().Release(mock.Anything, "update:100").Return(nil)
	fx.commands.EXPECT().
		HandleUpdate(mock.Anything, mock.Anything).
		Run(func(context.Context, entity.InboundUpdate) { panic("nil map") })

	rec := fx.post(messageUpdate, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestWebhookHandler_Receive_MalformedBody(t *testing.T) {
	fx := createTestWebhookHandler(t, "", fakeBot{})

	rec := fx.post(`{"update_id": "nope"`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebhookHandler_Status(t *testing.T) {
	fx := createTestWebhookHandler(t, "", fakeBot{})

	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/telegram/webhook", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","bot":"AutosBot","timestamp":"2024-05-10T12:00:00Z"}`, rec.Body.String())
}
