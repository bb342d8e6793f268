package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ReviewEvent is the append-only audit trail of review decisions. Last-write
// -wins races on the record row are reconstructable from these rows.
type ReviewEvent struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RecordKind string         `gorm:"type:varchar(40);not null;index"`
	RecordId   uuid.UUID      `gorm:"type:uuid;not null;index"`
	FromStatus string         `gorm:"type:varchar(30);not null"`
	ToStatus   string         `gorm:"type:varchar(30);not null"`
	Actor      string         `gorm:"type:varchar(100);not null"`
	Note       string         `gorm:"type:text"`
	Override   datatypes.JSON `gorm:"type:jsonb"` // kind-specific payload (custom replacement, target faq)
	CreatedAt  time.Time      `gorm:"autoCreateTime;index"`
}

func (ReviewEvent) TableName() string {
	return "review_events"
}
