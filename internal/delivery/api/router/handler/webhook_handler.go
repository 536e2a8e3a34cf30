package handler

import (
	"crypto/subtle"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"marketbot/config"
	deliverycontext "marketbot/internal/delivery/context"
	"marketbot/internal/domain/entity"
	domainerrors "marketbot/internal/domain/errors"
	"marketbot/internal/domain/service"
	"marketbot/internal/infra/metrics"
	"marketbot/internal/infra/telegram"
	"marketbot/internal/usecase"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderSecretToken carries the secret registered with setWebhook.
const HeaderSecretToken = "X-Telegram-Bot-Api-Secret-Token"

// Update types reported to metrics
const (
	updateTypeMessage  = "message"
	updateTypeCallback = "callback"
	updateTypeIgnored  = "ignored"
)

// BotInitializer makes sure the shared bot client can be used.
type BotInitializer interface {
	Ready() error
}

// WebhookHandler receives Telegram updates and hands them to the command
// router.
type WebhookHandler struct {
	commands    usecase.CommandUsecase
	dedupe      service.Deduplicator
	bot         BotInitializer
	metrics     *metrics.Metrics
	secret      string
	botUsername string
	logger      *slog.Logger
	now         func() time.Time
}

// WebhookHandlerParams holds dependencies for WebhookHandler, injected by Fx.
type WebhookHandlerParams struct {
	fx.In

	Commands usecase.CommandUsecase
	Dedupe   service.Deduplicator
	Bot      BotInitializer
	Metrics  *metrics.Metrics
	Config   *config.Config
	Logger   *slog.Logger
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	h := &WebhookHandler{
		commands: params.Commands,
		dedupe:   params.Dedupe,
		bot:      params.Bot,
		metrics:  params.Metrics,
		logger:   params.Logger,
		now:      time.Now,
	}
	if tg := params.Config.Telegram; tg != nil {
		h.secret = tg.WebhookSecret
		h.botUsername = tg.BotUsername
	}

	return h
}

// Receive handles POST /telegram/webhook. Telegram only needs a 2xx to stop
// redelivering, so every handled or skipped update is answered {ok:true}.
func (h *WebhookHandler) Receive(c echo.Context) (err error) {
	log := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	if h.secret != "" {
		got := c.Request().Header.Get(HeaderSecretToken)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
			log.Warn("[Webhook] Secret token mismatch", slog.String("remote_ip", c.RealIP()))

			return domainerrors.ErrWebhookSecretMismatch
		}
	}

	var update tgbotapi.Update
	if err := c.Bind(&update); err != nil {
		log.Warn("[Webhook] Failed to decode update", slog.Any("error", err))

		return domainerrors.ErrValidationFailed.WrapMessage("malformed update")
	}

	inbound, ok := telegram.ToInboundUpdate(&update)
	if !ok {
		h.metrics.UpdatesReceived.WithLabelValues(updateTypeIgnored).Inc()

		return ok200(c)
	}

	ctx := c.Request().Context()
	log = log.With(slog.Int("update_id", inbound.UpdateID))
	ctx = deliverycontext.WithLogger(ctx, log)

	key := "update:" + strconv.Itoa(inbound.UpdateID)
	firstSeen, dedupeErr := h.dedupe.FirstSeen(ctx, key)
	if dedupeErr != nil {
		log.Warn("[Webhook] Dedupe lookup failed, processing update", slog.Any("error", dedupeErr))
		firstSeen = true
	}
	if !firstSeen {
		h.metrics.UpdatesDuplicated.Inc()
		log.Info("[Webhook] Skipping redelivered update")

		return ok200(c)
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error("[Webhook] Panic while handling update", slog.Any("panic", fmt.Sprint(r)))
			h.release(c, key)
			err = internalError(c)
		}
	}()

	h.metrics.UpdatesReceived.WithLabelValues(updateType(inbound)).Inc()

	if err := h.bot.Ready(); err != nil {
		log.Error("[Webhook] Bot client unavailable", slog.Any("error", err))
		h.release(c, key)

		return internalError(c)
	}

	h.commands.HandleUpdate(ctx, inbound)

	return ok200(c)
}

// Status handles GET /telegram/webhook.
func (h *WebhookHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "ok",
		"bot":       h.botUsername,
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}

// release lets Telegram's redelivery of a failed update through.
func (h *WebhookHandler) release(c echo.Context, key string) {
	if err := h.dedupe.Release(c.Request().Context(), key); err != nil {
		h.logger.Warn("[Webhook] Failed to release dedupe key", slog.String("key", key), slog.Any("error", err))
	}
}

func updateType(update entity.InboundUpdate) string {
	if update.IsCallback() {
		return updateTypeCallback
	}

	return updateTypeMessage
}

func ok200(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

func internalError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
}
