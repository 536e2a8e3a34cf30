package repository

import (
	"context"
	"errors"
	"time"

	"marketbot/internal/domain/entity"
)

// ErrListingNotFound is returned when no listing matches an id.
var ErrListingNotFound = errors.New("listing not found")

// ListingRepository defines read access to the vehicle listing store.
// Every result is projected to entity.ListingSummary.
type ListingRepository interface {
	// Search returns approved listings matching the filter, newest first.
	Search(ctx context.Context, filter entity.SearchFilter, limit int) ([]*entity.ListingSummary, error)

	// Latest returns the newest approved listings.
	Latest(ctx context.Context, limit int) ([]*entity.ListingSummary, error)

	// Brands returns the distinct brands of approved listings, sorted.
	Brands(ctx context.Context) ([]string, error)

	// FindByOwnerChatID returns listings of every status owned by the chat user.
	FindByOwnerChatID(ctx context.Context, chatUserID string) ([]*entity.ListingSummary, error)

	// FindByID retrieves a single listing regardless of status.
	FindByID(ctx context.Context, id string) (*entity.ListingSummary, error)

	// Stats aggregates the approved inventory; NewThisWeek counts listings created after since.
	Stats(ctx context.Context, since time.Time) (*entity.MarketStats, error)
}
