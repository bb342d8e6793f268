package unitofwork

import (
	"context"
	"fmt"

	"faq-knowledge-be/internal/repository/contract"
	"faq-knowledge-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil when operating outside one
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FAQRepository() contract.FAQRepository {
	return implementation.NewFAQRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FAQLinkRepository() contract.FAQLinkRepository {
	return implementation.NewFAQLinkRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FAQEmbeddingRepository() contract.FAQEmbeddingRepository {
	return implementation.NewFAQEmbeddingRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PIIDetectionRepository() contract.PIIDetectionRepository {
	return implementation.NewPIIDetectionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DuplicateCandidateRepository() contract.DuplicateCandidateRepository {
	return implementation.NewDuplicateCandidateRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ReviewEventRepository() contract.ReviewEventRepository {
	return implementation.NewReviewEventRepository(u.getDB())
}
