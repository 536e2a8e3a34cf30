package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "marketbot/internal/delivery/context"
	"marketbot/internal/domain/entity"
	domainerrors "marketbot/internal/domain/errors"
	"marketbot/internal/domain/repository"
	"marketbot/internal/errors"
	"marketbot/internal/infra/metrics"
	"marketbot/internal/usecase"

	"go.uber.org/fx"
)

// Event processing outcomes
const (
	outcomeDelivered = "delivered"
	outcomeRejected  = "rejected"
	outcomeFailed    = "failed"
)

type notificationService struct {
	composer  usecase.NotificationComposer
	broadcast usecase.BroadcastUsecase
	listings  usecase.ListingQueryUsecase
	metrics   *metrics.Metrics
	logger    *slog.Logger
	now       func() time.Time
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	Composer  usecase.NotificationComposer
	Broadcast usecase.BroadcastUsecase
	Listings  usecase.ListingQueryUsecase
	Metrics   *metrics.Metrics
	Logger    *slog.Logger
}

// NewNotificationService creates the event router used by the notifier.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		composer:  params.Composer,
		broadcast: params.Broadcast,
		listings:  params.Listings,
		metrics:   params.Metrics,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// HandleEvent composes the messages of event and dispatches each to its
// audience. An error is returned only while nothing has been sent yet;
// failures after a partial delivery are logged.
func (s *notificationService) HandleEvent(ctx context.Context, event *entity.NotificationEvent) (err error) {
	if event == nil {
		return domainerrors.ErrInvalidEvent.WrapMessage("event is required")
	}

	defer func() {
		s.metrics.EventsProcessed.WithLabelValues(string(event.Kind), eventOutcome(err)).Inc()
	}()

	if !event.Kind.IsValid() {
		return domainerrors.ErrInvalidEvent.WrapMessage(fmt.Sprintf("unknown event kind %q", event.Kind))
	}

	var listing *entity.ListingSummary
	if event.Kind.RequiresListing() {
		if listing, err = s.resolveListing(ctx, event); err != nil {
			return err
		}
	}

	switch event.Kind {
	case entity.EventNewVehicle:
		return s.toAdmins(ctx, event.Kind, s.composer.NewVehicle(listing))

	case entity.EventPaymentReceived:
		return s.toAdmins(ctx, event.Kind, s.composer.PaymentReceived(listing, event.Payment))

	case entity.EventContactMessage:
		if event.Contact == nil {
			return domainerrors.ErrInvalidEvent.WrapMessage("contact payload is required")
		}

		return s.toAdmins(ctx, event.Kind, s.composer.ContactMessage(event.Contact))

	case entity.EventVehicleApproved:
		return s.vehicleApproved(ctx, event, listing)

	case entity.EventVehicleRejected:
		owner := ownerChatID(listing)
		if owner == "" {
			s.log(ctx).Info("[Notification] Listing has no linked owner, rejection not delivered",
				slog.String("listing_id", listing.ID),
			)

			return nil
		}
		result, sendErr := s.broadcast.SendDirect(ctx, event.Kind, owner, s.composer.VehicleRejected(listing, event.Reason))

		return s.settle(ctx, event.Kind, result, sendErr)

	case entity.EventPriceChange:
		newPrice := event.NewPrice
		if newPrice <= 0 {
			newPrice = listing.Price
		}
		msg := s.composer.PriceChange(listing, event.OldPrice, newPrice)
		result, sendErr := s.broadcast.SendToInterested(ctx, event.Kind, entity.RecipientFilter{FavoriteListingID: listing.ID}, msg)

		return s.settle(ctx, event.Kind, result, sendErr)

	case entity.EventMarketSummary:
		stats := event.Stats
		if stats == nil {
			if stats, err = s.listings.Stats(ctx, s.now().Add(-statsWindow)); err != nil {
				return errors.Wrap(err, "compute market stats")
			}
		}
		result, sendErr := s.broadcast.SendToInterested(ctx, event.Kind, entity.RecipientFilter{WeeklyDigestOnly: true}, s.composer.MarketSummary(stats))

		return s.settle(ctx, event.Kind, result, sendErr)
	}

	return nil
}

// vehicleApproved congratulates the owner and then alerts every other
// interested user.
func (s *notificationService) vehicleApproved(ctx context.Context, event *entity.NotificationEvent, listing *entity.ListingSummary) error {
	owner := ownerChatID(listing)
	ownerNotified := false
	if owner != "" {
		result, err := s.broadcast.SendDirect(ctx, event.Kind, owner, s.composer.VehicleApproved(listing))
		if err = s.settle(ctx, event.Kind, result, err); err != nil {
			return err
		}
		ownerNotified = true
	}

	filter := entity.RecipientFilter{ExcludeChatID: owner}
	result, err := s.broadcast.SendToInterested(ctx, event.Kind, filter, s.composer.NewListingAlert(listing))
	if err = s.settle(ctx, event.Kind, result, err); err != nil && ownerNotified {
		s.log(ctx).Warn("[Notification] Owner notified but listing alert failed",
			slog.String("listing_id", listing.ID),
			slog.Any("error", err),
		)

		return nil
	}

	return err
}

func (s *notificationService) toAdmins(ctx context.Context, kind entity.EventKind, msg entity.OutboundMessage) error {
	result, err := s.broadcast.SendToAdmins(ctx, kind, msg)

	return s.settle(ctx, kind, result, err)
}

// settle keeps a dispatch error only when nothing was sent.
func (s *notificationService) settle(ctx context.Context, kind entity.EventKind, result *entity.BroadcastResult, err error) error {
	if err == nil {
		return nil
	}
	if result != nil && result.Batches > 0 {
		s.log(ctx).Warn("[Notification] Dispatch ended early",
			slog.String("kind", string(kind)),
			slog.Int("sent", result.Sent),
			slog.Int("recipients", result.Recipients),
			slog.Any("error", err),
		)

		return nil
	}

	return err
}

// resolveListing loads the listing by id so the owner identity comes from
// the store. An embedded listing is used only when no id is given.
func (s *notificationService) resolveListing(ctx context.Context, event *entity.NotificationEvent) (*entity.ListingSummary, error) {
	if event.ListingID == "" {
		if event.Listing != nil {
			return event.Listing, nil
		}

		return nil, domainerrors.ErrInvalidEvent.WrapMessage(fmt.Sprintf("%s requires a listing", event.Kind))
	}

	listing, err := s.listings.FindByID(ctx, event.ListingID)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound.WrapMessage(event.ListingID)
		}

		return nil, errors.Wrap(err, "resolve listing")
	}
	event.Listing = listing

	return listing, nil
}

func ownerChatID(listing *entity.ListingSummary) string {
	if listing == nil || listing.ChatOwnerID == nil {
		return ""
	}

	return *listing.ChatOwnerID
}

func eventOutcome(err error) string {
	switch {
	case err == nil:
		return outcomeDelivered
	case usecase.IsPermanentEventError(err):
		return outcomeRejected
	default:
		return outcomeFailed
	}
}
