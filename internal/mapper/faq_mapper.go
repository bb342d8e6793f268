package mapper

import (
	"time"

	"faq-knowledge-be/internal/entity"
	"faq-knowledge-be/internal/model"

	"gorm.io/gorm"
)

type FAQMapper struct{}

func NewFAQMapper() *FAQMapper {
	return &FAQMapper{}
}

func (m *FAQMapper) ToEntity(f *model.FAQ) *entity.FAQ {
	if f == nil {
		return nil
	}

	var deletedAt *time.Time
	if f.DeletedAt.Valid {
		t := f.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !f.UpdatedAt.IsZero() {
		t := f.UpdatedAt
		updatedAt = &t
	}

	return &entity.FAQ{
		Id:         f.Id,
		Question:   f.Question,
		Answer:     f.Answer,
		Category:   f.Category,
		Status:     f.Status,
		ReviewedBy: f.ReviewedBy,
		ReviewNote: f.ReviewNote,
		ReviewedAt: f.ReviewedAt,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
		IsDeleted:  f.DeletedAt.Valid,
	}
}

func (m *FAQMapper) ToModel(f *entity.FAQ) *model.FAQ {
	if f == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if f.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *f.DeletedAt, Valid: true}
	} else if f.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if f.UpdatedAt != nil {
		updatedAt = *f.UpdatedAt
	}

	return &model.FAQ{
		Id:         f.Id,
		Question:   f.Question,
		Answer:     f.Answer,
		Category:   f.Category,
		Status:     f.Status,
		ReviewedBy: f.ReviewedBy,
		ReviewNote: f.ReviewNote,
		ReviewedAt: f.ReviewedAt,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
	}
}

func (m *FAQMapper) ToEntities(faqs []*model.FAQ) []*entity.FAQ {
	entities := make([]*entity.FAQ, len(faqs))
	for i, f := range faqs {
		entities[i] = m.ToEntity(f)
	}
	return entities
}

type FAQLinkMapper struct{}

func NewFAQLinkMapper() *FAQLinkMapper {
	return &FAQLinkMapper{}
}

func (m *FAQLinkMapper) DocumentLinkToEntity(l *model.FAQDocumentLink) *entity.FAQDocumentLink {
	if l == nil {
		return nil
	}
	return &entity.FAQDocumentLink{
		Id:         l.Id,
		FaqId:      l.FaqId,
		DocumentId: l.DocumentId,
		CreatedAt:  l.CreatedAt,
	}
}

func (m *FAQLinkMapper) DocumentLinkToModel(l *entity.FAQDocumentLink) *model.FAQDocumentLink {
	if l == nil {
		return nil
	}
	return &model.FAQDocumentLink{
		Id:         l.Id,
		FaqId:      l.FaqId,
		DocumentId: l.DocumentId,
		CreatedAt:  l.CreatedAt,
	}
}

func (m *FAQLinkMapper) MessageLinkToEntity(l *model.FAQMessageLink) *entity.FAQMessageLink {
	if l == nil {
		return nil
	}
	return &entity.FAQMessageLink{
		Id:        l.Id,
		FaqId:     l.FaqId,
		MessageId: l.MessageId,
		ChannelId: l.ChannelId,
		CreatedAt: l.CreatedAt,
	}
}

func (m *FAQLinkMapper) MessageLinkToModel(l *entity.FAQMessageLink) *model.FAQMessageLink {
	if l == nil {
		return nil
	}
	return &model.FAQMessageLink{
		Id:        l.Id,
		FaqId:     l.FaqId,
		MessageId: l.MessageId,
		ChannelId: l.ChannelId,
		CreatedAt: l.CreatedAt,
	}
}
