package usecase

import (
	"context"

	"marketbot/internal/domain/entity"
)

// CommandUsecase turns inbound chat updates into replies.
type CommandUsecase interface {
	// HandleUpdate replies to a command, free text or button press. Failures
	// are answered in chat and logged; nothing is returned to the transport.
	HandleUpdate(ctx context.Context, update entity.InboundUpdate)
}
