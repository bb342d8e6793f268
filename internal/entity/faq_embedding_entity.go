package entity

import (
	"time"

	"github.com/google/uuid"
)

type FAQEmbedding struct {
	Id             uuid.UUID
	Document       string
	EmbeddingValue []float32
	FaqId          uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
