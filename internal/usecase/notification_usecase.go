package usecase

import (
	"context"

	"marketbot/internal/domain/entity"
	domainerrors "marketbot/internal/domain/errors"
	"marketbot/internal/errors"
)

// EventInput is a marketplace event as posted by the marketplace backend.
type EventInput struct {
	Kind      entity.EventKind       `json:"kind" validate:"required"`
	ListingID string                 `json:"listing_id" validate:"omitempty,hexadecimal,len=24"`
	Reason    string                 `json:"reason" validate:"max=1000"`
	OldPrice  float64                `json:"old_price" validate:"gte=0"`
	NewPrice  float64                `json:"new_price" validate:"gte=0"`
	Payment   *entity.Payment        `json:"payment"`
	Stats     *entity.MarketStats    `json:"stats"`
	Contact   *entity.ContactMessage `json:"contact"`
}

// EventUsecase accepts marketplace events for asynchronous delivery.
type EventUsecase interface {
	// Publish validates the event, stamps its id and time and enqueues it.
	Publish(ctx context.Context, input *EventInput) (*entity.NotificationEvent, error)
}

// NotificationUsecase routes a marketplace event to its audience.
type NotificationUsecase interface {
	// HandleEvent composes the messages of the event and dispatches them.
	HandleEvent(ctx context.Context, event *entity.NotificationEvent) error
}

// IsPermanentEventError reports whether redelivering the event cannot succeed.
func IsPermanentEventError(err error) bool {
	return errors.Is(err, domainerrors.ErrInvalidEvent) || errors.Is(err, domainerrors.ErrListingNotFound)
}
