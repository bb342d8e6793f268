package contract

import (
	"context"

	"faq-knowledge-be/internal/entity"
	"faq-knowledge-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredFAQEmbedding wraps FAQEmbedding with its similarity score
type ScoredFAQEmbedding struct {
	Embedding  *entity.FAQEmbedding
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type FAQEmbeddingRepository interface {
	Create(ctx context.Context, embedding *entity.FAQEmbedding) error
	// DeleteByFaqIdUnscoped hard-deletes the FAQ's index entry; deleting a
	// missing entry is a no-op.
	DeleteByFaqIdUnscoped(ctx context.Context, faqId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FAQEmbedding, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchSimilarWithScore returns embeddings with their cosine
	// similarity scores, filtered by threshold, most similar first.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*ScoredFAQEmbedding, error)
}
