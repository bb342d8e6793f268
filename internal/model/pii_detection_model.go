package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PIIDetection stores one hit from the automatic PII scanner, awaiting
// reviewer triage.
type PIIDetection struct {
	Id                uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OriginalText      string         `gorm:"type:text;not null"`
	ReplacementText   string         `gorm:"type:text"`
	PiiType           string         `gorm:"type:varchar(50);index"` // email, phone, ssn, ...
	Status            string         `gorm:"type:varchar(30);not null;default:'PENDING_REVIEW';index"`
	ReviewedBy        string         `gorm:"type:varchar(100)"`
	ReviewNote        string         `gorm:"type:text"`
	ReviewedAt        *time.Time     ``
	CustomReplacement string         `gorm:"type:text"` // reviewer override used downstream
	CreatedAt         time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime"`
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

func (PIIDetection) TableName() string {
	return "pii_detections"
}
