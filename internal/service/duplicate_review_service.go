package service

import (
	"context"
	"encoding/json"
	"time"

	"faq-knowledge-be/internal/dto"
	"faq-knowledge-be/internal/entity"
	"faq-knowledge-be/internal/pkg/logger"
	"faq-knowledge-be/internal/repository/memory"
	"faq-knowledge-be/internal/repository/specification"
	"faq-knowledge-be/internal/repository/unitofwork"
	"faq-knowledge-be/pkg/events"
	pktNats "faq-knowledge-be/pkg/nats"
	"faq-knowledge-be/pkg/review"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDuplicateReviewService interface {
	UpdateCandidate(ctx context.Context, req *dto.UpdateDuplicateCandidateRequest) (*dto.UpdateDuplicateCandidateResponse, error)
	PendingCandidates(ctx context.Context) ([]*dto.DuplicateCandidateResponse, error)
}

type duplicateReviewService struct {
	uowFactory       unitofwork.RepositoryFactory
	machine          *review.Machine
	logger           logger.ILogger
	pending          *memory.PendingCache
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewDuplicateReviewService(
	uowFactory unitofwork.RepositoryFactory,
	machine *review.Machine,
	log logger.ILogger,
	pending *memory.PendingCache,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) IDuplicateReviewService {
	return &duplicateReviewService{
		uowFactory:       uowFactory,
		machine:          machine,
		logger:           log,
		pending:          pending,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

func (s *duplicateReviewService) UpdateCandidate(ctx context.Context, req *dto.UpdateDuplicateCandidateRequest) (*dto.UpdateDuplicateCandidateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	cand, err := uow.DuplicateCandidateRepository().FindOne(ctx, specification.ByID{ID: req.CandidateId})
	if err != nil {
		return nil, err
	}
	if cand == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Duplicate candidate not found")
	}

	fromStatus := cand.Status
	toStatus := review.Status(req.Status)

	outcome, err := s.machine.Check(review.KindDuplicateCandidate, review.Status(fromStatus), toStatus)
	if err != nil {
		return nil, err
	}
	if outcome == review.OutcomeNoOp {
		return &dto.UpdateDuplicateCandidateResponse{Id: cand.Id}, nil
	}

	override := map[string]interface{}{}

	if s.machine.RequiresTarget(review.KindDuplicateCandidate, toStatus) {
		if req.TargetFaqId == nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "targetFaqId is required for ENHANCE_EXISTING")
		}
		target, err := uow.FAQRepository().FindOne(ctx, specification.ByID{ID: *req.TargetFaqId})
		if err != nil {
			return nil, err
		}
		if target == nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "target FAQ does not exist")
		}
		cand.TargetFaqId = req.TargetFaqId
		override["targetFaqId"] = req.TargetFaqId.String()
	}

	now := time.Now()
	cand.Status = req.Status
	cand.ReviewedBy = req.ReviewedBy
	cand.ReviewNote = req.ReviewNote
	cand.ReviewedAt = &now

	var createdFaq *entity.FAQ
	if toStatus == review.StatusCreateNew {
		createdFaq = &entity.FAQ{
			Question: cand.Question,
			Answer:   cand.Answer,
			Category: cand.Category,
			Status:   "ACTIVE",
		}
		override["createdFaq"] = true
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if createdFaq != nil {
		if err := uow.FAQRepository().Create(ctx, createdFaq); err != nil {
			return nil, err
		}
		override["createdFaqId"] = createdFaq.Id.String()
	}

	if err := uow.DuplicateCandidateRepository().Update(ctx, cand); err != nil {
		return nil, err
	}

	event := &entity.ReviewEvent{
		RecordKind: string(review.KindDuplicateCandidate),
		RecordId:   cand.Id,
		FromStatus: fromStatus,
		ToStatus:   req.Status,
		Actor:      req.ReviewedBy,
		Note:       req.ReviewNote,
		Override:   override,
	}
	if err := uow.ReviewEventRepository().Create(ctx, event); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.pending.InvalidateCandidates()

	res := &dto.UpdateDuplicateCandidateResponse{Id: cand.Id}
	if createdFaq != nil {
		res.CreatedFaqId = &createdFaq.Id
		s.queueEmbed(ctx, createdFaq)
	}

	s.publishDecision(ctx, cand.Id, fromStatus, req.Status, req.ReviewedBy)

	return res, nil
}

func (s *duplicateReviewService) PendingCandidates(ctx context.Context) ([]*dto.DuplicateCandidateResponse, error) {
	candidates, cached := s.pending.GetPendingCandidates()
	if !cached {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		var err error
		candidates, err = uow.DuplicateCandidateRepository().FindAll(ctx,
			specification.ByStatus{Status: string(review.StatusDetected)},
			specification.OldestFirst{},
			specification.Pagination{Limit: pendingPageLimit},
		)
		if err != nil {
			return nil, err
		}
		s.pending.SavePendingCandidates(candidates)
	}

	res := make([]*dto.DuplicateCandidateResponse, len(candidates))
	for i, c := range candidates {
		res[i] = toDuplicateCandidateResponse(c)
	}
	return res, nil
}

// queueEmbed publishes the embed message for a freshly materialized FAQ.
// Best effort: the FAQ row is already committed, the index catches up.
func (s *duplicateReviewService) queueEmbed(ctx context.Context, faq *entity.FAQ) {
	msgPayload := dto.PublishEmbedFAQMessage{FaqId: faq.Id}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		s.logger.Warn("review", "Failed to queue embed for created FAQ", map[string]interface{}{
			"faq_id": faq.Id,
			"error":  err.Error(),
		})
	}

	if s.eventPublisher != nil {
		evt := events.NewFAQCreated(faq.Id.String(), faq.Question)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("review", "Failed to publish FAQ created event", map[string]interface{}{
				"faq_id": faq.Id,
				"error":  err.Error(),
			})
		}
	}
}

func (s *duplicateReviewService) publishDecision(ctx context.Context, id uuid.UUID, from, to, actor string) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.NewReviewDecision(string(review.KindDuplicateCandidate), id.String(), from, to, actor)
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("review", "Failed to publish review decision event", map[string]interface{}{
			"candidate_id": id,
			"error":        err.Error(),
		})
	}
}

func toDuplicateCandidateResponse(c *entity.DuplicateCandidate) *dto.DuplicateCandidateResponse {
	return &dto.DuplicateCandidateResponse{
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
	}
}
