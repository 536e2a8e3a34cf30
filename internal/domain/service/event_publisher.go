package service

import (
	"context"

	"marketbot/internal/domain/entity"
)

// EventPublisher hands stamped marketplace events to the broker that feeds
// the notifier. A nil error means the broker acknowledged the event.
type EventPublisher interface {
	PublishNotificationEvent(ctx context.Context, event *entity.NotificationEvent) error
	// Close flushes pending publishes.
	Close() error
}
