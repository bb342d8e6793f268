package implementation

import (
	"context"
	"errors"

	"faq-knowledge-be/internal/entity"
	"faq-knowledge-be/internal/mapper"
	"faq-knowledge-be/internal/model"
	"faq-knowledge-be/internal/repository/contract"
	"faq-knowledge-be/internal/repository/specification"

	"gorm.io/gorm"
)

type PIIDetectionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReviewMapper
}

func NewPIIDetectionRepository(db *gorm.DB) contract.PIIDetectionRepository {
	return &PIIDetectionRepositoryImpl{
		db:     db,
		mapper: mapper.NewReviewMapper(),
	}
}

func (r *PIIDetectionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PIIDetectionRepositoryImpl) Create(ctx context.Context, detection *entity.PIIDetection) error {
	m := r.mapper.PIIDetectionToModel(detection)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*detection = *r.mapper.PIIDetectionToEntity(m)
	return nil
}

func (r *PIIDetectionRepositoryImpl) Update(ctx context.Context, detection *entity.PIIDetection) error {
	m := r.mapper.PIIDetectionToModel(detection)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*detection = *r.mapper.PIIDetectionToEntity(m)
	return nil
}

func (r *PIIDetectionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PIIDetection, error) {
	var m model.PIIDetection
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PIIDetectionToEntity(&m), nil
}

func (r *PIIDetectionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PIIDetection, error) {
	var models []*model.PIIDetection
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.PIIDetectionsToEntities(models), nil
}

func (r *PIIDetectionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.PIIDetection{}).Count(&count).Error
	return count, err
}
