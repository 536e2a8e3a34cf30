package usecase

import (
	"context"
	"time"

	"marketbot/internal/domain/entity"
)

// ListingQueryUsecase exposes read access to the listing store. On failure
// every method returns an empty result together with the error, so callers
// can tell "nothing found" apart from "could not look".
type ListingQueryUsecase interface {
	Search(ctx context.Context, filter entity.SearchFilter) ([]*entity.ListingSummary, error)
	Latest(ctx context.Context, limit int) ([]*entity.ListingSummary, error)
	Brands(ctx context.Context) ([]string, error)
	OwnedBy(ctx context.Context, chatUserID string) ([]*entity.ListingSummary, error)
	FindByID(ctx context.Context, id string) (*entity.ListingSummary, error)
	Stats(ctx context.Context, since time.Time) (*entity.MarketStats, error)
}
