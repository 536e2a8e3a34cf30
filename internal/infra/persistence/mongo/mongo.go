// Package mongo holds the marketplace document store adapters: users and
// vehicle listings are read (and, for chat linking, updated) here.
package mongo

import (
	"context"
	"log/slog"

	"marketbot/config"
	"marketbot/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

const (
	defaultUsersCollection    = "users"
	defaultListingsCollection = "vehicles"
)

// Params holds dependencies for the document store connection
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Collections are the handles the repositories work on.
type Collections struct {
	Users    *mongo.Collection
	Listings *mongo.Collection
}

// New connects the client and registers ping / disconnect hooks.
func New(params Params) (*Collections, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo uri is required")
	}
	if cfg.Database == "" {
		return nil, errors.New("mongo database is required")
	}

	client, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.Timeout).
		SetServerSelectionTimeout(cfg.Timeout))
	if err != nil {
		return nil, errors.Wrap(err, "connect mongo")
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
			defer cancel()

			if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "ping mongo")
			}
			params.Logger.Info("Mongo connection established", slog.String("database", cfg.Database))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.WithStack(client.Disconnect(stopCtx))
		},
	})

	db := client.Database(cfg.Database)

	return &Collections{
		Users:    db.Collection(orDefault(cfg.UsersCollection, defaultUsersCollection)),
		Listings: db.Collection(orDefault(cfg.ListingsCollection, defaultListingsCollection)),
	}, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}

// Module provides the Mongo FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
	fx.Provide(NewUserRepository),
	fx.Provide(NewListingRepository),
)
