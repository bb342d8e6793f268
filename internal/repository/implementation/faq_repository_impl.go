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
	"gorm.io/gorm"
)

type FAQRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FAQMapper
}

func NewFAQRepository(db *gorm.DB) contract.FAQRepository {
	return &FAQRepositoryImpl{
		db:     db,
		mapper: mapper.NewFAQMapper(),
	}
}

func (r *FAQRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FAQRepositoryImpl) Create(ctx context.Context, faq *entity.FAQ) error {
	m := r.mapper.ToModel(faq)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*faq = *r.mapper.ToEntity(m)
	return nil
}

func (r *FAQRepositoryImpl) Update(ctx context.Context, faq *entity.FAQ) error {
	m := r.mapper.ToModel(faq)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*faq = *r.mapper.ToEntity(m)
	return nil
}

func (r *FAQRepositoryImpl) DeleteUnscoped(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Unscoped().Delete(&model.FAQ{}, id)
	return res.RowsAffected, res.Error
}

func (r *FAQRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FAQ, error) {
	var m model.FAQ
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FAQRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FAQ, error) {
	var models []*model.FAQ
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *FAQRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.FAQ{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
