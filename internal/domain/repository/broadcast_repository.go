package repository

import (
	"context"

	"marketbot/internal/domain/entity"
)

// BroadcastRepository persists the audit trail of dispatched broadcasts.
type BroadcastRepository interface {
	// CreateBroadcast persists a finished broadcast together with its delivery logs.
	CreateBroadcast(ctx context.Context, broadcast *entity.Broadcast, logs []*entity.DeliveryLog) error
}
