// Package dedupe suppresses redelivered webhook updates and Pub/Sub pushes.
package dedupe

import (
	"context"
	"log/slog"
	"time"

	"marketbot/config"
	"marketbot/internal/domain/lifecycle"
	"marketbot/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	keyPrefix  = "marketbot:seen:"
	defaultTTL = 24 * time.Hour
)

type redisDeduplicator struct {
	client *redis.Client
	ttl    time.Duration
}

func newRedisDeduplicator(client *redis.Client, ttl time.Duration) *redisDeduplicator {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &redisDeduplicator{client: client, ttl: ttl}
}

// FirstSeen claims key with SET NX so only the first delivery proceeds
func (d *redisDeduplicator) FirstSeen(ctx context.Context, key string) (bool, error) {
	ok, err := d.client.SetNX(ctx, keyPrefix+key, 1, d.ttl).Result()
	if err != nil {
		return true, errors.Wrap(err, "redis setnx")
	}

	return ok, nil
}

// Release forgets key so a later delivery is processed again
func (d *redisDeduplicator) Release(ctx context.Context, key string) error {
	return errors.Wrap(d.client.Del(ctx, keyPrefix+key).Err(), "redis del")
}

// noopDeduplicator treats every key as new; used when redis is not configured
type noopDeduplicator struct{}

func (noopDeduplicator) FirstSeen(context.Context, string) (bool, error) {
	return true, nil
}

func (noopDeduplicator) Release(context.Context, string) error {
	return nil
}

// Params holds dependencies for the Deduplicator, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New creates a redis backed Deduplicator, or a no-op one without redis config
func New(params Params) service.Deduplicator {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, update deduplication disabled")

		return noopDeduplicator{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// Dedupe is best effort; an unreachable redis only logs.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, duplicates may be processed", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return newRedisDeduplicator(client, cfg.DedupeTTL)
}
