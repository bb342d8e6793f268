package unitofwork

import (
	"context"

	"faq-knowledge-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	FAQRepository() contract.FAQRepository
	FAQLinkRepository() contract.FAQLinkRepository
	FAQEmbeddingRepository() contract.FAQEmbeddingRepository
	PIIDetectionRepository() contract.PIIDetectionRepository
	DuplicateCandidateRepository() contract.DuplicateCandidateRepository
	ReviewEventRepository() contract.ReviewEventRepository
}
