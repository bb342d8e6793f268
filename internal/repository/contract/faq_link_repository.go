package contract

import (
	"context"

	"faq-knowledge-be/internal/entity"

	"github.com/google/uuid"
)

type FAQLinkRepository interface {
	CreateDocumentLink(ctx context.Context, link *entity.FAQDocumentLink) error
	CreateMessageLink(ctx context.Context, link *entity.FAQMessageLink) error
	// DeleteAllByFaqId removes every link row (both kinds) referencing the
	// FAQ. Must run before the FAQ row itself is removed.
	DeleteAllByFaqId(ctx context.Context, faqId uuid.UUID) error
	CountByFaqId(ctx context.Context, faqId uuid.UUID) (int64, error)
}
