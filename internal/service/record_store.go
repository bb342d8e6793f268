package service

import (
	"context"

	"faq-knowledge-be/internal/repository/specification"
	"faq-knowledge-be/internal/repository/unitofwork"
	"faq-knowledge-be/pkg/dedup"

	"github.com/google/uuid"
)

// faqRecordStore adapts the FAQ repositories to the dedup.RecordStore
// contract the cleanup orchestrator works against.
type faqRecordStore struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewFAQRecordStore(uowFactory unitofwork.RepositoryFactory) dedup.RecordStore {
	return &faqRecordStore{
		uowFactory: uowFactory,
	}
}

func (s *faqRecordStore) GetRecord(ctx context.Context, id uuid.UUID) (*dedup.Record, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	faq, err := uow.FAQRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if faq == nil {
		return nil, nil
	}
	return &dedup.Record{
		Id:        faq.Id,
		Question:  faq.Question,
		Answer:    faq.Answer,
		Category:  faq.Category,
		CreatedAt: faq.CreatedAt,
	}, nil
}

func (s *faqRecordStore) DeleteLinks(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.FAQLinkRepository().DeleteAllByFaqId(ctx, id)
}

func (s *faqRecordStore) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.FAQRepository().DeleteUnscoped(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		// Someone else removed the row between our existence check and the
		// delete. Already satisfied.
		return dedup.ErrRecordGone
	}
	return nil
}
