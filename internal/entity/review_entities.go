package entity

import (
	"time"

	"github.com/google/uuid"
)

type PIIDetection struct {
	Id                uuid.UUID
	OriginalText      string
	ReplacementText   string
	PiiType           string
	Status            string
	ReviewedBy        string
	ReviewNote        string
	ReviewedAt        *time.Time
	CustomReplacement string
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

type DuplicateCandidate struct {
	Id           uuid.UUID
	Question     string
	Answer       string
	Category     string
	MatchedFaqId uuid.UUID
	MatchScore   float64
	Status       string
	ReviewedBy   string
	ReviewNote   string
	ReviewedAt   *time.Time
	TargetFaqId  *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

type ReviewEvent struct {
	Id         uuid.UUID
	RecordKind string
	RecordId   uuid.UUID
	FromStatus string
	ToStatus   string
	Actor      string
	Note       string
	Override   map[string]interface{}
	CreatedAt  time.Time
}
