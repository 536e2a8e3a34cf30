// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"marketbot/internal/domain/entity"
)

var (
	// ErrUserNotFound is returned when no user matches a lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrLinkTokenNotFound is returned when a link token does not exist, was
	// already redeemed, or expired.
	ErrLinkTokenNotFound = errors.New("link token not found or expired")
)

// UserRepository defines the operations on marketplace users needed by the bot.
type UserRepository interface {
	// LinkChatIdentity redeems a link token. In a single conditional update it
	// matches token == token and expiry > now, sets the chat identity and
	// removes both token fields. Returns ErrLinkTokenNotFound when nothing matched.
	LinkChatIdentity(ctx context.Context, token string, identity entity.ChatIdentity, now time.Time) (*entity.User, error)

	// FindByChatUserID retrieves the user linked to a chat user id.
	FindByChatUserID(ctx context.Context, chatUserID string) (*entity.User, error)

	// SetNotificationsEnabled updates the preference of the user linked to chatUserID.
	SetNotificationsEnabled(ctx context.Context, chatUserID string, enabled bool) error

	// FindNotificationRecipients resolves the chat ids of linked users that did
	// not disable notifications and match the filter.
	FindNotificationRecipients(ctx context.Context, filter entity.RecipientFilter) ([]string, error)
}
