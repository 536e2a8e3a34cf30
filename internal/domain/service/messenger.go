package service

import (
	"context"

	"marketbot/internal/domain/entity"
)

// Messenger delivers composed messages to chat users.
type Messenger interface {
	// Send delivers a message to a single chat.
	Send(ctx context.Context, chatID string, msg entity.OutboundMessage) error

	// AnswerCallback acknowledges a button press so the client stops waiting.
	AnswerCallback(ctx context.Context, callbackID, text string) error
}
