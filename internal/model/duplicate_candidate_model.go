package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DuplicateCandidate is a would-be FAQ that the generation-time duplicate
// check found ambiguous. It is parked here for reviewer resolution instead
// of being auto-created or auto-discarded.
type DuplicateCandidate struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Question     string         `gorm:"type:text;not null"`
	Answer       string         `gorm:"type:text;not null"`
	Category     string         `gorm:"type:varchar(100)"`
	MatchedFaqId uuid.UUID      `gorm:"type:uuid;index"` // best existing match at detection time
	MatchScore   float64        ``
	Status       string         `gorm:"type:varchar(30);not null;default:'DETECTED';index"`
	ReviewedBy   string         `gorm:"type:varchar(100)"`
	ReviewNote   string         `gorm:"type:text"`
	ReviewedAt   *time.Time     ``
	TargetFaqId  *uuid.UUID     `gorm:"type:uuid"` // set by ENHANCE_EXISTING decisions
	CreatedAt    time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (DuplicateCandidate) TableName() string {
	return "duplicate_candidates"
}
