package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"marketbot/internal/domain/entity"
	"marketbot/internal/domain/service"
	"marketbot/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// GoogleTopic names the topic marketplace events are published to.
type GoogleTopic struct {
	ProjectID string
	TopicID   string
	// OrderByListing publishes with the listing id as ordering key, so an
	// approval is never delivered after a later price change of the same
	// listing. The push subscription must have message ordering enabled.
	OrderByListing bool
}

func (t GoogleTopic) path() string {
	return fmt.Sprintf("projects/%s/topics/%s", t.ProjectID, t.TopicID)
}

type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	ordered   bool
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to topic and fails when it does not exist.
func NewGooglePubSubPublisher(ctx context.Context, topic GoogleTopic, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, topic.ProjectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic.path()}); err != nil {
		_ = client.Close()

		return nil, errors.Wrap(err, "get topic "+topic.TopicID)
	}

	publisher := client.Publisher(topic.TopicID)
	publisher.EnableMessageOrdering = topic.OrderByListing

	logger.Info("[GooglePubSub] Publisher ready", slog.String("topic", topic.path()))

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		ordered:   topic.OrderByListing,
		logger:    logger,
	}, nil
}

// PublishNotificationEvent publishes event and waits for the server ack.
func (p *googlePubSubPublisher) PublishNotificationEvent(ctx context.Context, event *entity.NotificationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	}
	if p.ordered {
		msg.OrderingKey = event.ListingID
	}

	serverID, err := p.publisher.Publish(ctx, msg).Get(ctx)
	if err != nil {
		if msg.OrderingKey != "" {
			// A failed ordered publish pauses its key until resumed.
			p.publisher.ResumePublish(msg.OrderingKey)
		}

		return errors.Wrap(err, fmt.Sprintf("publish %s event", event.Kind))
	}

	p.logger.InfoContext(ctx, "[GooglePubSub] Event published",
		slog.String("event_id", event.ID),
		slog.String("kind", string(event.Kind)),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending publishes and releases the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
