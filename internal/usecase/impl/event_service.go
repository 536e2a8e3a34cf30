package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "marketbot/internal/delivery/context"
	"marketbot/internal/domain/entity"
	domainerrors "marketbot/internal/domain/errors"
	"marketbot/internal/domain/service"
	"marketbot/internal/errors"
	"marketbot/internal/infra/metrics"
	"marketbot/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type eventService struct {
	publisher service.EventPublisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
	now       func() time.Time
}

// EventServiceParams holds dependencies for EventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	Publisher service.EventPublisher
	Metrics   *metrics.Metrics
	Logger    *slog.Logger
}

// NewEventService creates the intake side of marketplace events.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		publisher: params.Publisher,
		metrics:   params.Metrics,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (s *eventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Publish checks that the payload matches the kind, stamps the event and
// hands it to the publisher.
func (s *eventService) Publish(ctx context.Context, input *usecase.EventInput) (*entity.NotificationEvent, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidEvent.WrapMessage("event is required")
	}
	if err := checkEventPayload(input); err != nil {
		return nil, err
	}

	event := &entity.NotificationEvent{
		ID:         uuid.New().String(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Kind:       input.Kind,
		ListingID:  input.ListingID,
		OccurredAt: s.now().UTC(),
		Reason:     input.Reason,
		OldPrice:   input.OldPrice,
		NewPrice:   input.NewPrice,
		Payment:    input.Payment,
		Stats:      input.Stats,
		Contact:    input.Contact,
	}

	if err := s.publisher.PublishNotificationEvent(ctx, event); err != nil {
		s.log(ctx).Error("[Event] Failed to publish event",
			slog.String("event_id", event.ID),
			slog.String("kind", string(event.Kind)),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrEventPublishFailed, err.Error())
	}

	s.metrics.EventsPublished.WithLabelValues(string(event.Kind)).Inc()
	s.log(ctx).Info("[Event] Event published",
		slog.String("event_id", event.ID),
		slog.String("kind", string(event.Kind)),
		slog.String("listing_id", event.ListingID),
	)

	return event, nil
}

func checkEventPayload(input *usecase.EventInput) error {
	if !input.Kind.IsValid() {
		return domainerrors.ErrInvalidEvent.WrapMessage(fmt.Sprintf("unknown event kind %q", input.Kind))
	}
	if input.Kind.RequiresListing() && input.ListingID == "" {
		return domainerrors.ErrInvalidEvent.WrapMessage(fmt.Sprintf("%s requires listing_id", input.Kind))
	}

	switch input.Kind {
	case entity.EventContactMessage:
		if input.Contact == nil || input.Contact.Message == "" {
			return domainerrors.ErrInvalidEvent.WrapMessage("contact_message requires contact.message")
		}
	case entity.EventPaymentReceived:
		if input.Payment == nil {
			return domainerrors.ErrInvalidEvent.WrapMessage("payment_received requires payment")
		}
	case entity.EventPriceChange:
		if input.OldPrice <= 0 {
			return domainerrors.ErrInvalidEvent.WrapMessage("price_change requires old_price")
		}
	}

	return nil
}
