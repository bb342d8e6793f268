package contract

import (
	"context"

	"faq-knowledge-be/internal/entity"
	"faq-knowledge-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FAQRepository interface {
	Create(ctx context.Context, faq *entity.FAQ) error
	Update(ctx context.Context, faq *entity.FAQ) error
	// DeleteUnscoped hard-deletes the row and reports how many rows were
	// affected; zero means the row was already gone (a lost race, not an
	// error).
	DeleteUnscoped(ctx context.Context, id uuid.UUID) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FAQ, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FAQ, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
