package entity

import (
	"time"

	"github.com/google/uuid"
)

// Broadcast audiences
const (
	AudienceAdmins     = "admins"
	AudienceInterested = "interested"
	AudienceDirect     = "direct"
)

// Delivery statuses
const (
	DeliveryStatusSent   = "sent"
	DeliveryStatusFailed = "failed"
)

// Broadcast records one dispatch of a message to a resolved recipient set.
type Broadcast struct {
	ID          uuid.UUID `json:"id"`
	Kind        EventKind `json:"kind"`
	Audience    string    `json:"audience"`
	Recipients  int       `json:"recipients"`
	TotalSent   int       `json:"total_sent"`
	TotalFailed int       `json:"total_failed"`
	Batches     int       `json:"batches"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
}

// DeliveryLog records the outcome of a single send within a broadcast.
type DeliveryLog struct {
	ID           uuid.UUID `json:"id"`
	BroadcastID  uuid.UUID `json:"broadcast_id"`
	ChatID       string    `json:"chat_id"`
	Batch        int       `json:"batch"`
	Status       string    `json:"status"`
	ErrorMessage string    `json:"error_message"`
	SentAt       time.Time `json:"sent_at"`
}

// BroadcastResult summarises a finished dispatch.
type BroadcastResult struct {
	Recipients int
	Sent       int
	Failed     int
	Batches    int
}
