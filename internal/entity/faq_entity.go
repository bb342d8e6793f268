package entity

import (
	"time"

	"github.com/google/uuid"
)

type FAQ struct {
	Id         uuid.UUID
	Question   string
	Answer     string
	Category   string
	Status     string
	ReviewedBy string
	ReviewNote string
	ReviewedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
	IsDeleted  bool
}

type FAQDocumentLink struct {
	Id         uuid.UUID
	FaqId      uuid.UUID
	DocumentId uuid.UUID
	CreatedAt  time.Time
}

type FAQMessageLink struct {
	Id        uuid.UUID
	FaqId     uuid.UUID
	MessageId string
	ChannelId string
	CreatedAt time.Time
}
