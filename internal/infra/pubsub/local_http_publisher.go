package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"marketbot/internal/domain/entity"
	"marketbot/internal/domain/service"
	"marketbot/internal/errors"
)

const localPublishTimeout = 30 * time.Second

// localHTTPPublisher posts push envelopes straight to the notifier, standing
// in for a push subscription during development.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPublishTimeout},
		logger:     logger,
		now:        time.Now,
	}
}

// PublishNotificationEvent delivers the envelope and treats any non-2xx as failure
func (p *localHTTPPublisher) PublishNotificationEvent(ctx context.Context, event *entity.NotificationEvent) error {
	envelope, err := NewPushEnvelope(event, p.now())
	if err != nil {
		return err
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("notifier returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Info("[LocalPubSub] Event delivered",
		slog.String("endpoint", p.endpoint),
		slog.String("event_id", event.ID),
		slog.String("kind", string(event.Kind)),
	)

	return nil
}

// Close is a no-op; the HTTP client holds no resources worth releasing
func (p *localHTTPPublisher) Close() error {
	return nil
}
