package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"marketbot/config"
	deliverycontext "marketbot/internal/delivery/context"
	"marketbot/internal/domain/constants"
	"marketbot/internal/domain/service"
	"marketbot/internal/errors"
	"marketbot/internal/infra/pubsub"
	"marketbot/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// classifyEventError marks every failure that a redelivery could fix as
// retryable.
func classifyEventError(err error) error {
	if err == nil || usecase.IsPermanentEventError(err) {
		return err
	}

	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// defaultDispatchTimeout applies when the broadcast section is absent.
const defaultDispatchTimeout = 30 * time.Minute

// PushHandler handles Pub/Sub push deliveries of marketplace events
type PushHandler struct {
	verifyPushAuth  bool
	verifyToken     func(req *http.Request) error
	dispatchTimeout time.Duration
	logger          *slog.Logger
	notifications   usecase.NotificationUsecase
	dedupe          service.Deduplicator
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config        *config.Config
	Logger        *slog.Logger
	Notifications usecase.NotificationUsecase
	Dedupe        service.Deduplicator
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google pushes carry an OIDC token
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	dispatchTimeout := defaultDispatchTimeout
	if params.Config.Broadcast != nil && params.Config.Broadcast.DispatchTimeout > 0 {
		dispatchTimeout = params.Config.Broadcast.DispatchTimeout
	}

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		verifyToken:     verifyPubSubToken,
		dispatchTimeout: dispatchTimeout,
		logger:          params.Logger,
		notifications:   params.Notifications,
		dedupe:          params.Dedupe,
	}
}

// HandlePush handles POST /push. A 2xx acknowledges the message; 503 asks
// Pub/Sub to redeliver it.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := envelope.DecodeEvent()
	if err != nil {
		// Redelivering an undecodable payload cannot succeed
		h.logger.Error("[Worker] Dropping undecodable event",
			slog.String("message_id", envelope.Message.MessageID),
			slog.String("kind", envelope.Message.Attributes[pubsub.AttrKind]),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	requestID := deliverycontext.FirstRequestID(
		envelope.Message.Attributes[pubsub.AttrRequestID],
		event.RequestID,
		deliverycontext.GetRequestIDFromContext(ctx),
	)
	ctx, reqLogger := deliverycontext.WithRequestScope(ctx, h.logger, requestID)
	reqLogger = reqLogger.With(
		slog.String("event_id", event.ID),
		slog.String("kind", string(event.Kind)),
	)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	key := envelope.DedupeKey(event)
	firstSeen, err := h.dedupe.FirstSeen(ctx, key)
	if err != nil {
		reqLogger.Warn("[Worker] Dedupe lookup failed, processing event", slog.Any("error", err))
		firstSeen = true
	}
	if !firstSeen {
		reqLogger.Info("[Worker] Skipping redelivered event")

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Processing notification event", slog.String("listing_id", event.ListingID))

	// Batch cool-downs outlast the ack deadline, after which Pub/Sub closes
	// the push connection. The dispatch keeps the request values but not its
	// cancellation; a redelivery meanwhile is skipped by the dedupe key.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.dispatchTimeout)
	defer cancel()

	if err := classifyEventError(h.notifications.HandleEvent(ctx, event)); err != nil {
		retryable := isRetryableError(err)
		reqLogger.Error("[Worker] Failed to process event",
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if !retryable {
			return c.NoContent(http.StatusOK)
		}

		if releaseErr := h.dedupe.Release(ctx, key); releaseErr != nil {
			reqLogger.Warn("[Worker] Failed to release dedupe key", slog.Any("error", releaseErr))
		}

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Worker] Event processed")

	return c.NoContent(http.StatusOK)
}

// verifyPubSubToken verifies the OIDC token Google attaches to push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return errors.New("invalid authorization header format")
	}

	// The audience is the push endpoint URL
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
