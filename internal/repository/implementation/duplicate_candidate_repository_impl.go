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

type DuplicateCandidateRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReviewMapper
}

func NewDuplicateCandidateRepository(db *gorm.DB) contract.DuplicateCandidateRepository {
	return &DuplicateCandidateRepositoryImpl{
		db:     db,
		mapper: mapper.NewReviewMapper(),
	}
}

func (r *DuplicateCandidateRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DuplicateCandidateRepositoryImpl) Create(ctx context.Context, candidate *entity.DuplicateCandidate) error {
	m := r.mapper.CandidateToModel(candidate)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*candidate = *r.mapper.CandidateToEntity(m)
	return nil
}

func (r *DuplicateCandidateRepositoryImpl) Update(ctx context.Context, candidate *entity.DuplicateCandidate) error {
	m := r.mapper.CandidateToModel(candidate)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*candidate = *r.mapper.CandidateToEntity(m)
	return nil
}

func (r *DuplicateCandidateRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DuplicateCandidate, error) {
	var m model.DuplicateCandidate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CandidateToEntity(&m), nil
}

func (r *DuplicateCandidateRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DuplicateCandidate, error) {
	var models []*model.DuplicateCandidate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.CandidatesToEntities(models), nil
}

func (r *DuplicateCandidateRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.DuplicateCandidate{}).Count(&count).Error
	return count, err
}
