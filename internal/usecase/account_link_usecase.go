package usecase

import (
	"context"

	"marketbot/internal/domain/entity"
)

// AccountLinkUsecase binds chat identities to marketplace accounts.
type AccountLinkUsecase interface {
	// HandleStart answers a /start command. A non-empty payload is treated as
	// a link token and redeemed; the reply describes the outcome.
	HandleStart(ctx context.Context, update entity.InboundUpdate, payload string) entity.OutboundMessage

	// LinkQRCode renders the deep link of a link token as a PNG QR code.
	LinkQRCode(token string) ([]byte, error)
}
