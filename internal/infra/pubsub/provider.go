package pubsub

import (
	"context"
	"log/slog"

	"marketbot/config"
	"marketbot/internal/domain/constants"
	"marketbot/internal/domain/entity"
	"marketbot/internal/domain/service"
	"marketbot/internal/errors"

	"go.uber.org/fx"
)

// noopPublisher accepts events and drops them. Used when no provider is set.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishNotificationEvent(ctx context.Context, event *entity.NotificationEvent) error {
	p.logger.WarnContext(ctx, "[NoopPubSub] Publishing disabled, event dropped",
		slog.String("event_id", event.ID),
		slog.String("kind", string(event.Kind)),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher named by pubsub.provider. An empty
// provider yields a no-op publisher so the bot can run without a broker.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Warn("[PubSub] No provider configured, marketplace events will be dropped")

		return &noopPublisher{logger: params.Logger}, nil
	}

	if err := validatePubSubConfig(cfg); err != nil {
		return nil, err
	}

	publisher, err := openPublisher(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("[PubSub] Closing publisher", slog.String("provider", cfg.Provider))

			return publisher.Close()
		},
	})

	return publisher, nil
}

func validatePubSubConfig(cfg *config.PubSubConfig) error {
	var required map[string]string
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		required = map[string]string{"pubsub.localEndpoint": cfg.LocalEndpoint}
	case constants.PubSubProviderGoogle:
		required = map[string]string{"pubsub.projectId": cfg.ProjectID, "pubsub.topicId": cfg.TopicID}
	default:
		return errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}

	for key, value := range required {
		if value == "" {
			return errors.Errorf("%s is required for the %s provider", key, cfg.Provider)
		}
	}

	return nil
}

func openPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.Provider == constants.PubSubProviderLocal {
		logger.Info("[PubSub] Using local push loopback", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	}

	logger.Info("[PubSub] Using Google Pub/Sub",
		slog.String("project_id", cfg.ProjectID),
		slog.String("topic_id", cfg.TopicID),
		slog.Bool("order_by_listing", cfg.OrderByListing),
	)

	return NewGooglePubSubPublisher(ctx, GoogleTopic{
		ProjectID:      cfg.ProjectID,
		TopicID:        cfg.TopicID,
		OrderByListing: cfg.OrderByListing,
	}, logger)
}

//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
