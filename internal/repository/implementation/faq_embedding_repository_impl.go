package implementation

import (
	"context"
	"errors"

	"faq-knowledge-be/internal/entity"
	"faq-knowledge-be/internal/mapper"
	"faq-knowledge-be/internal/model"
	"faq-knowledge-be/internal/repository/contract"
	"faq-knowledge-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type FAQEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FAQEmbeddingMapper
}

func NewFAQEmbeddingRepository(db *gorm.DB) contract.FAQEmbeddingRepository {
	return &FAQEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewFAQEmbeddingMapper(),
	}
}

func (r *FAQEmbeddingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FAQEmbeddingRepositoryImpl) Create(ctx context.Context, embedding *entity.FAQEmbedding) error {
	m := r.mapper.ToModel(embedding)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*embedding = *r.mapper.ToEntity(m)
	return nil
}

func (r *FAQEmbeddingRepositoryImpl) DeleteByFaqIdUnscoped(ctx context.Context, faqId uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().Where("faq_id = ?", faqId).Delete(&model.FAQEmbedding{}).Error
}

func (r *FAQEmbeddingRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FAQEmbedding, error) {
	var m model.FAQEmbedding
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FAQEmbeddingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.FAQEmbedding{}).Count(&count).Error
	return count, err
}

// SearchSimilarWithScore returns embeddings with similarity scores, filtered by threshold.
// Cosine distance in pgvector is: 1 - cosine_similarity
// So we compute: 1 - (embedding_value <=> query_vector) = cosine_similarity
func (r *FAQEmbeddingRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*contract.ScoredFAQEmbedding, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.FAQEmbedding
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("faq_embeddings").
		Select("faq_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Joins("JOIN faqs ON faqs.id = faq_embeddings.faq_id").
		Where("faqs.deleted_at IS NULL").
		Where("1 - (embedding_value <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scoredEmbeddings := make([]*contract.ScoredFAQEmbedding, len(results))
	for i, res := range results {
		e := r.mapper.ToEntity(&res.FAQEmbedding)
		scoredEmbeddings[i] = &contract.ScoredFAQEmbedding{
			Embedding:  e,
			Similarity: res.Similarity,
		}
	}
	return scoredEmbeddings, nil
}
