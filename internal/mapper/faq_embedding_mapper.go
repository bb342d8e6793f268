package mapper

import (
	"time"

	"faq-knowledge-be/internal/entity"
	"faq-knowledge-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type FAQEmbeddingMapper struct{}

func NewFAQEmbeddingMapper() *FAQEmbeddingMapper {
	return &FAQEmbeddingMapper{}
}

func (m *FAQEmbeddingMapper) ToEntity(e *model.FAQEmbedding) *entity.FAQEmbedding {
	if e == nil {
		return nil
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.FAQEmbedding{
		Id:             e.Id,
		Document:       e.Document,
		EmbeddingValue: e.EmbeddingValue.Slice(),
		FaqId:          e.FaqId,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *FAQEmbeddingMapper) ToModel(e *entity.FAQEmbedding) *model.FAQEmbedding {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.FAQEmbedding{
		Id:             e.Id,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		FaqId:          e.FaqId,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}
