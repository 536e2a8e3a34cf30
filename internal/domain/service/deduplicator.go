package service

import "context"

// Deduplicator remembers recently processed delivery ids so that webhook
// retries and Pub/Sub redeliveries are handled once.
type Deduplicator interface {
	// FirstSeen records key and reports whether it had not been seen before.
	FirstSeen(ctx context.Context, key string) (bool, error)

	// Release forgets key so that a redelivery is processed again.
	Release(ctx context.Context, key string) error
}
