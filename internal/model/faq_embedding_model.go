package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// FAQEmbedding is an FAQ's entry in the similarity index, keyed by FAQ id.
// Its lifecycle is independent of the faqs row: it can outlive or predate it,
// which is what the cleanup's stale-reference path reconciles.
type FAQEmbedding struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Document       string          `gorm:"type:text"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(768)"` // Gemini text-embedding-004 uses 768 dimensions
	FaqId          uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt  `gorm:"index"`
}

func (FAQEmbedding) TableName() string {
	return "faq_embeddings"
}
