package contract

import (
	"context"

	"faq-knowledge-be/internal/entity"
	"faq-knowledge-be/internal/repository/specification"
)

type PIIDetectionRepository interface {
	Create(ctx context.Context, detection *entity.PIIDetection) error
	Update(ctx context.Context, detection *entity.PIIDetection) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PIIDetection, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PIIDetection, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
