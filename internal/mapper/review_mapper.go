package mapper

import (
	"encoding/json"
	"time"

	"faq-knowledge-be/internal/entity"
	"faq-knowledge-be/internal/model"

	"gorm.io/datatypes"
)

type ReviewMapper struct{}

func NewReviewMapper() *ReviewMapper {
	return &ReviewMapper{}
}

func (m *ReviewMapper) PIIDetectionToEntity(d *model.PIIDetection) *entity.PIIDetection {
	if d == nil {
		return nil
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	return &entity.PIIDetection{
		Id:                d.Id,
		OriginalText:      d.OriginalText,
		ReplacementText:   d.ReplacementText,
		PiiType:           d.PiiType,
		Status:            d.Status,
		ReviewedBy:        d.ReviewedBy,
		ReviewNote:        d.ReviewNote,
		ReviewedAt:        d.ReviewedAt,
		CustomReplacement: d.CustomReplacement,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         updatedAt,
	}
}

func (m *ReviewMapper) PIIDetectionToModel(d *entity.PIIDetection) *model.PIIDetection {
	if d == nil {
		return nil
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	return &model.PIIDetection{
		Id:                d.Id,
		OriginalText:      d.OriginalText,
		ReplacementText:   d.ReplacementText,
		PiiType:           d.PiiType,
		Status:            d.Status,
		ReviewedBy:        d.ReviewedBy,
		ReviewNote:        d.ReviewNote,
		ReviewedAt:        d.ReviewedAt,
		CustomReplacement: d.CustomReplacement,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         updatedAt,
	}
}

func (m *ReviewMapper) PIIDetectionsToEntities(ds []*model.PIIDetection) []*entity.PIIDetection {
	entities := make([]*entity.PIIDetection, len(ds))
	for i, d := range ds {
		entities[i] = m.PIIDetectionToEntity(d)
	}
	return entities
}

func (m *ReviewMapper) CandidateToEntity(c *model.DuplicateCandidate) *entity.DuplicateCandidate {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.DuplicateCandidate{
		Id:           c.Id,
		Question:     c.Question,
		Answer:       c.Answer,
		Category:     c.Category,
		MatchedFaqId: c.MatchedFaqId,
		MatchScore:   c.MatchScore,
		Status:       c.Status,
		ReviewedBy:   c.ReviewedBy,
		ReviewNote:   c.ReviewNote,
		ReviewedAt:   c.ReviewedAt,
		TargetFaqId:  c.TargetFaqId,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *ReviewMapper) CandidateToModel(c *entity.DuplicateCandidate) *model.DuplicateCandidate {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.DuplicateCandidate{
		Id:           c.Id,
		Question:     c.Question,
		Answer:       c.Answer,
		Category:     c.Category,
		MatchedFaqId: c.MatchedFaqId,
		MatchScore:   c.MatchScore,
		Status:       c.Status,
		ReviewedBy:   c.ReviewedBy,
		ReviewNote:   c.ReviewNote,
		ReviewedAt:   c.ReviewedAt,
		TargetFaqId:  c.TargetFaqId,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *ReviewMapper) CandidatesToEntities(cs []*model.DuplicateCandidate) []*entity.DuplicateCandidate {
	entities := make([]*entity.DuplicateCandidate, len(cs))
	for i, c := range cs {
		entities[i] = m.CandidateToEntity(c)
	}
	return entities
}

func (m *ReviewMapper) EventToModel(e *entity.ReviewEvent) *model.ReviewEvent {
	if e == nil {
		return nil
	}

	var override datatypes.JSON
	if len(e.Override) > 0 {
		raw, err := json.Marshal(e.Override)
		if err == nil {
			override = datatypes.JSON(raw)
		}
	}

	return &model.ReviewEvent{
		Id:         e.Id,
		RecordKind: e.RecordKind,
		RecordId:   e.RecordId,
		FromStatus: e.FromStatus,
		ToStatus:   e.ToStatus,
		Actor:      e.Actor,
		Note:       e.Note,
		Override:   override,
		CreatedAt:  e.CreatedAt,
	}
}

func (m *ReviewMapper) EventToEntity(e *model.ReviewEvent) *entity.ReviewEvent {
	if e == nil {
		return nil
	}

	var override map[string]interface{}
	if len(e.Override) > 0 {
		_ = json.Unmarshal(e.Override, &override)
	}

	return &entity.ReviewEvent{
		Id:         e.Id,
		RecordKind: e.RecordKind,
		RecordId:   e.RecordId,
		FromStatus: e.FromStatus,
		ToStatus:   e.ToStatus,
		Actor:      e.Actor,
		Note:       e.Note,
		Override:   override,
		CreatedAt:  e.CreatedAt,
	}
}
