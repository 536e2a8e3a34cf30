// Package pubsub carries marketplace events from the bot process to the notifier.
package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"marketbot/internal/domain/entity"
	"marketbot/internal/errors"
)

const (
	AttrEventID   = "event_id"
	AttrKind      = "kind"
	AttrRequestID = "request_id"

	localSubscription = "projects/local/subscriptions/marketbot-notifier"
)

// PushEnvelope is the body Pub/Sub posts to a push subscription endpoint.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// DecodeEvent unpacks the base64 payload of a push envelope.
func (e *PushEnvelope) DecodeEvent() (*entity.NotificationEvent, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event entity.NotificationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "unmarshal notification event")
	}

	return &event, nil
}

// DedupeKey identifies the delivery for redelivery detection. The event id
// wins over the broker message id since local publishing reuses it anyway.
func (e *PushEnvelope) DedupeKey(event *entity.NotificationEvent) string {
	if event != nil && event.ID != "" {
		return "event:" + event.ID
	}

	return "message:" + e.Message.MessageID
}

// NewPushEnvelope wraps an event the way a push subscription would deliver it.
func NewPushEnvelope(event *entity.NotificationEvent, publishedAt time.Time) (*PushEnvelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	envelope := &PushEnvelope{Subscription: localSubscription}
	envelope.Message.Data = base64.StdEncoding.EncodeToString(data)
	envelope.Message.Attributes = eventAttributes(event)
	envelope.Message.MessageID = event.ID
	envelope.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)

	return envelope, nil
}

func eventAttributes(event *entity.NotificationEvent) map[string]string {
	attributes := map[string]string{
		AttrEventID: event.ID,
		AttrKind:    string(event.Kind),
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return attributes
}
