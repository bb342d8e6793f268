package contract

import (
	"context"

	"faq-knowledge-be/internal/entity"
	"faq-knowledge-be/internal/repository/specification"
)

type DuplicateCandidateRepository interface {
	Create(ctx context.Context, candidate *entity.DuplicateCandidate) error
	Update(ctx context.Context, candidate *entity.DuplicateCandidate) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DuplicateCandidate, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DuplicateCandidate, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
