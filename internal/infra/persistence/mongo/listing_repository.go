package mongo

import (
	"context"
	"slices"
	"time"

	"marketbot/config"
	"marketbot/internal/domain/constants"
	"marketbot/internal/domain/entity"
	"marketbot/internal/domain/repository"
	"marketbot/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

// listingRepository implements the repository.ListingRepository interface.
type listingRepository struct {
	listings *mongo.Collection
	timeout  time.Duration
	now      func() time.Time
}

// ListingRepositoryParams holds dependencies for the listing repository.
type ListingRepositoryParams struct {
	fx.In

	Collections *Collections
	Config      *config.Config
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(params ListingRepositoryParams) repository.ListingRepository {
	return newListingRepository(params.Collections.Listings, params.Config.Mongo.Timeout)
}

func newListingRepository(listings *mongo.Collection, timeout time.Duration) *listingRepository {
	return &listingRepository{listings: listings, timeout: timeout, now: time.Now}
}

// Search returns approved listings matching the filter, newest first.
func (repo *listingRepository) Search(ctx context.Context, filter entity.SearchFilter, limit int) ([]*entity.ListingSummary, error) {
	return repo.find(ctx, searchFilter(filter), limit)
}

// Latest returns the newest approved listings.
func (repo *listingRepository) Latest(ctx context.Context, limit int) ([]*entity.ListingSummary, error) {
	return repo.find(ctx, approvedFilter(), limit)
}

// FindByOwnerChatID returns listings of every status owned by the chat user.
func (repo *listingRepository) FindByOwnerChatID(ctx context.Context, chatUserID string) ([]*entity.ListingSummary, error) {
	return repo.find(ctx, ownerFilter(chatUserID), 0)
}

// Brands returns the distinct brands of approved listings, sorted.
func (repo *listingRepository) Brands(ctx context.Context) ([]string, error) {
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	values, err := repo.listings.Distinct(ctx, fieldBrand, approvedFilter())
	if err != nil {
		return nil, errors.Wrap(err, "distinct brands")
	}

	brands := make([]string, 0, len(values))
	for _, value := range values {
		if brand, ok := value.(string); ok && brand != "" {
			brands = append(brands, brand)
		}
	}
	slices.Sort(brands)

	return slices.Compact(brands), nil
}

// FindByID retrieves a single listing regardless of status.
func (repo *listingRepository) FindByID(ctx context.Context, id string) (*entity.ListingSummary, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrListingNotFound
	}

	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	var doc listingDocument
	if err := repo.listings.FindOne(ctx, bson.M{fieldID: oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "find listing by id")
	}

	return toListingSummary(&doc, repo.now()), nil
}

type statsFacet struct {
	Totals []struct {
		Count    int      `bson:"count"`
		AvgPrice *float64 `bson:"avgPrice"`
	} `bson:"totals"`
	Recent []struct {
		Count int `bson:"count"`
	} `bson:"recent"`
	Brands []entity.BrandCount `bson:"brands"`
}

// Stats aggregates the approved inventory in a single round trip.
func (repo *listingRepository) Stats(ctx context.Context, since time.Time) (*entity.MarketStats, error) {
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	cursor, err := repo.listings.Aggregate(ctx, statsPipeline(since, constants.TopBrandsLimit))
	if err != nil {
		return nil, errors.Wrap(err, "aggregate market stats")
	}

	var facets []statsFacet
	if err := cursor.All(ctx, &facets); err != nil {
		return nil, errors.Wrap(err, "decode market stats")
	}

	stats := &entity.MarketStats{}
	if len(facets) == 0 {
		return stats, nil
	}

	facet := facets[0]
	if len(facet.Totals) > 0 {
		stats.TotalListings = facet.Totals[0].Count
		if facet.Totals[0].AvgPrice != nil {
			stats.AveragePrice = *facet.Totals[0].AvgPrice
		}
	}
	if len(facet.Recent) > 0 {
		stats.NewThisWeek = facet.Recent[0].Count
	}
	for _, brand := range facet.Brands {
		if brand.Brand != "" {
			stats.TopBrands = append(stats.TopBrands, brand)
		}
	}

	return stats, nil
}

func (repo *listingRepository) find(ctx context.Context, filter bson.M, limit int) ([]*entity.ListingSummary, error) {
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(newestFirst())
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := repo.listings.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(err, "find listings")
	}

	var docs []*listingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decode listings")
	}

	return toListingSummaries(docs, repo.now()), nil
}

func (repo *listingRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if repo.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, repo.timeout)
}
