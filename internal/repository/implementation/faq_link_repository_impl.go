package implementation

import (
	"context"

	"faq-knowledge-be/internal/entity"
	"faq-knowledge-be/internal/mapper"
	"faq-knowledge-be/internal/model"
	"faq-knowledge-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FAQLinkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FAQLinkMapper
}

func NewFAQLinkRepository(db *gorm.DB) contract.FAQLinkRepository {
	return &FAQLinkRepositoryImpl{
		db:     db,
		mapper: mapper.NewFAQLinkMapper(),
	}
}

func (r *FAQLinkRepositoryImpl) CreateDocumentLink(ctx context.Context, link *entity.FAQDocumentLink) error {
	m := r.mapper.DocumentLinkToModel(link)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*link = *r.mapper.DocumentLinkToEntity(m)
	return nil
}

func (r *FAQLinkRepositoryImpl) CreateMessageLink(ctx context.Context, link *entity.FAQMessageLink) error {
	m := r.mapper.MessageLinkToModel(link)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*link = *r.mapper.MessageLinkToEntity(m)
	return nil
}

// DeleteAllByFaqId clears both link tables. Order between the two tables
// does not matter; both must be gone before the FAQ row is removed.
func (r *FAQLinkRepositoryImpl) DeleteAllByFaqId(ctx context.Context, faqId uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("faq_id = ?", faqId).Delete(&model.FAQDocumentLink{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("faq_id = ?", faqId).Delete(&model.FAQMessageLink{}).Error
}

func (r *FAQLinkRepositoryImpl) CountByFaqId(ctx context.Context, faqId uuid.UUID) (int64, error) {
	var docCount, msgCount int64
	if err := r.db.WithContext(ctx).Model(&model.FAQDocumentLink{}).Where("faq_id = ?", faqId).Count(&docCount).Error; err != nil {
		return 0, err
	}
	if err := r.db.WithContext(ctx).Model(&model.FAQMessageLink{}).Where("faq_id = ?", faqId).Count(&msgCount).Error; err != nil {
		return 0, err
	}
	return docCount + msgCount, nil
}
