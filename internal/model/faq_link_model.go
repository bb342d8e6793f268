package model

import (
	"time"

	"github.com/google/uuid"
)

// FAQDocumentLink ties an FAQ to the knowledge-base document it was derived
// from. Link rows must be deleted before their FAQ row.
type FAQDocumentLink struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FaqId      uuid.UUID `gorm:"type:uuid;not null;index"`
	DocumentId uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (FAQDocumentLink) TableName() string {
	return "faq_document_links"
}

// FAQMessageLink ties an FAQ to the Slack message it was derived from.
type FAQMessageLink struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FaqId     uuid.UUID `gorm:"type:uuid;not null;index"`
	MessageId string    `gorm:"type:varchar(64);not null;index"` // Slack message ts
	ChannelId string    `gorm:"type:varchar(32)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (FAQMessageLink) TableName() string {
	return "faq_message_links"
}
