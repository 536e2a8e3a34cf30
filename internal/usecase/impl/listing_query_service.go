package impl

import (
	"context"
	"log/slog"
	"time"

	"marketbot/config"
	deliverycontext "marketbot/internal/delivery/context"
	"marketbot/internal/domain/constants"
	"marketbot/internal/domain/entity"
	"marketbot/internal/domain/repository"
	"marketbot/internal/errors"
	"marketbot/internal/usecase"

	"go.uber.org/fx"
)

type listingQueryService struct {
	listingRepo repository.ListingRepository
	latestLimit int
	logger      *slog.Logger
}

// ListingQueryServiceParams holds dependencies for ListingQueryService, injected by Fx.
type ListingQueryServiceParams struct {
	fx.In

	ListingRepo repository.ListingRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewListingQueryService creates the read side over the listing store.
// Failed lookups return an empty slice together with the error so callers
// can tell "no results" apart from "store unavailable".
func NewListingQueryService(params ListingQueryServiceParams) usecase.ListingQueryUsecase {
	latestLimit := 0
	if params.Config != nil && params.Config.Broadcast != nil {
		latestLimit = params.Config.Broadcast.LatestLimit
	}
	if latestLimit <= 0 {
		latestLimit = 5
	}

	return &listingQueryService{
		listingRepo: params.ListingRepo,
		latestLimit: latestLimit,
		logger:      params.Logger,
	}
}

func (s *listingQueryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *listingQueryService) Search(ctx context.Context, filter entity.SearchFilter) ([]*entity.ListingSummary, error) {
	listings, err := s.listingRepo.Search(ctx, filter, constants.SearchResultLimit)
	if err != nil {
		s.log(ctx).Error("[ListingQuery] Search failed", slog.Any("error", err))

		return []*entity.ListingSummary{}, errors.Wrap(err, "search listings")
	}

	return listings, nil
}

func (s *listingQueryService) Latest(ctx context.Context, limit int) ([]*entity.ListingSummary, error) {
	if limit <= 0 {
		limit = s.latestLimit
	}

	listings, err := s.listingRepo.Latest(ctx, limit)
	if err != nil {
		s.log(ctx).Error("[ListingQuery] Latest listings failed", slog.Int("limit", limit), slog.Any("error", err))

		return []*entity.ListingSummary{}, errors.Wrap(err, "latest listings")
	}

	return listings, nil
}

func (s *listingQueryService) Brands(ctx context.Context) ([]string, error) {
	brands, err := s.listingRepo.Brands(ctx)
	if err != nil {
		s.log(ctx).Error("[ListingQuery] Brand lookup failed", slog.Any("error", err))

		return []string{}, errors.Wrap(err, "list brands")
	}

	return brands, nil
}

// OwnedBy returns every listing of the chat user regardless of status.
func (s *listingQueryService) OwnedBy(ctx context.Context, chatUserID string) ([]*entity.ListingSummary, error) {
	if chatUserID == "" {
		return []*entity.ListingSummary{}, nil
	}

	listings, err := s.listingRepo.FindByOwnerChatID(ctx, chatUserID)
	if err != nil {
		s.log(ctx).Error("[ListingQuery] Owner lookup failed",
			slog.String("chat_user_id", chatUserID),
			slog.Any("error", err),
		)

		return []*entity.ListingSummary{}, errors.Wrap(err, "listings by owner")
	}

	return listings, nil
}

func (s *listingQueryService) FindByID(ctx context.Context, id string) (*entity.ListingSummary, error) {
	listing, err := s.listingRepo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrListingNotFound) {
			s.log(ctx).Error("[ListingQuery] Listing lookup failed", slog.String("listing_id", id), slog.Any("error", err))
		}

		return nil, errors.Wrap(err, "find listing")
	}

	return listing, nil
}

func (s *listingQueryService) Stats(ctx context.Context, since time.Time) (*entity.MarketStats, error) {
	stats, err := s.listingRepo.Stats(ctx, since)
	if err != nil {
		s.log(ctx).Error("[ListingQuery] Market stats failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "market stats")
	}

	return stats, nil
}
