package contract

import (
	"context"

	"faq-knowledge-be/internal/entity"
	"faq-knowledge-be/internal/repository/specification"
)

type ReviewEventRepository interface {
	Create(ctx context.Context, event *entity.ReviewEvent) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReviewEvent, error)
}
