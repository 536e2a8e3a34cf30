// Package model holds the GORM table mappings of the audit store.
package model

import (
	"time"

	"github.com/google/uuid"
)

// BroadcastModel is the GORM-specific struct for the 'broadcasts' table.
type BroadcastModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Kind        string    `gorm:"type:text;not null;index"`
	Audience    string    `gorm:"type:text;not null"`
	Recipients  int       `gorm:"not null"`
	TotalSent   int       `gorm:"not null"`
	TotalFailed int       `gorm:"not null"`
	Batches     int       `gorm:"not null"`
	StartedAt   time.Time `gorm:"not null;index"`
	CompletedAt time.Time `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BroadcastModel) TableName() string {
	return "broadcasts"
}

// DeliveryLogModel is the GORM-specific struct for the 'delivery_logs' table.
type DeliveryLogModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	BroadcastID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ChatID       string    `gorm:"type:text;not null;index"`
	Batch        int       `gorm:"not null"`
	Status       string    `gorm:"type:text;not null"`
	ErrorMessage string    `gorm:"type:text"`
	SentAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryLogModel) TableName() string {
	return "delivery_logs"
}
