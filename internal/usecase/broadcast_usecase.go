package usecase

import (
	"context"

	"marketbot/internal/domain/entity"
)

// BroadcastUsecase fans a message out to a recipient set in paced batches.
// Individual send failures are counted, never returned.
type BroadcastUsecase interface {
	// SendToAdmins delivers msg to the configured admin chats.
	SendToAdmins(ctx context.Context, kind entity.EventKind, msg entity.OutboundMessage) (*entity.BroadcastResult, error)

	// SendToInterested delivers msg to the opted-in users matching filter.
	SendToInterested(ctx context.Context, kind entity.EventKind, filter entity.RecipientFilter, msg entity.OutboundMessage) (*entity.BroadcastResult, error)

	// SendDirect delivers msg to a single chat.
	SendDirect(ctx context.Context, kind entity.EventKind, chatID string, msg entity.OutboundMessage) (*entity.BroadcastResult, error)
}
