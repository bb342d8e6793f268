package service

import (
	"context"
	"encoding/json"

	"faq-knowledge-be/internal/dto"
	"faq-knowledge-be/internal/entity"
	"faq-knowledge-be/internal/pkg/logger"
	"faq-knowledge-be/internal/repository/memory"
	"faq-knowledge-be/internal/repository/unitofwork"
	"faq-knowledge-be/pkg/dedup"
	"faq-knowledge-be/pkg/events"
	pktNats "faq-knowledge-be/pkg/nats"
	"faq-knowledge-be/pkg/review"

	"github.com/google/uuid"
)

type IFAQService interface {
	// Create runs the generation-time duplicate check. A candidate that
	// looks like an existing FAQ is parked as a DuplicateCandidate for
	// human review instead of being inserted.
	Create(ctx context.Context, req *dto.CreateFAQRequest) (*dto.CreateFAQResponse, error)
}

type faqService struct {
	uowFactory       unitofwork.RepositoryFactory
	gateway          dedup.Gateway
	threshold        float64
	logger           logger.ILogger
	pending          *memory.PendingCache
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewFAQService(
	uowFactory unitofwork.RepositoryFactory,
	gateway dedup.Gateway,
	threshold float64,
	log logger.ILogger,
	pending *memory.PendingCache,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) IFAQService {
	if threshold <= 0 || threshold > 1 {
		threshold = dedup.DefaultThreshold
	}
	return &faqService{
		uowFactory:       uowFactory,
		gateway:          gateway,
		threshold:        threshold,
		logger:           log,
		pending:          pending,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

func (s *faqService) Create(ctx context.Context, req *dto.CreateFAQRequest) (*dto.CreateFAQResponse, error) {
	rec := &dedup.Record{
		Question: req.Question,
		Answer:   req.Answer,
		Category: req.Category,
	}

	best := s.bestMatch(ctx, rec)
	if best != nil && best.Score >= s.threshold {
		return s.routeToReview(ctx, req, best)
	}

	return s.materialize(ctx, req)
}

// bestMatch returns the highest-scoring existing FAQ, or nil when nothing
// matched or the index was unreachable. An index failure must not block
// knowledge capture; worst case a duplicate slips in and the next cleanup
// run folds it.
func (s *faqService) bestMatch(ctx context.Context, rec *dedup.Record) *dedup.Match {
	res, err := s.gateway.FindSimilar(ctx, rec)
	if err != nil {
		s.logger.Warn("faq", "Similarity check failed; creating without duplicate check", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	if res == nil || len(res.Matches) == 0 {
		return nil
	}

	best := res.Matches[0]
	for _, m := range res.Matches[1:] {
		if m.Score > best.Score {
			best = m
		}
	}
	return &best
}

func (s *faqService) routeToReview(ctx context.Context, req *dto.CreateFAQRequest, best *dedup.Match) (*dto.CreateFAQResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	cand := &entity.DuplicateCandidate{
		Question:     req.Question,
		Answer:       req.Answer,
		Category:     req.Category,
		MatchedFaqId: best.Id,
		MatchScore:   best.Score,
		Status:       string(review.StatusDetected),
	}
	if err := uow.DuplicateCandidateRepository().Create(ctx, cand); err != nil {
		return nil, err
	}

	s.pending.InvalidateCandidates()

	s.logger.Info("faq", "Candidate routed to duplicate review", map[string]interface{}{
		"candidate_id": cand.Id,
		"matched_faq":  best.Id,
		"score":        best.Score,
	})

	return &dto.CreateFAQResponse{
		RoutedToReview: true,
		CandidateId:    &cand.Id,
		MatchedFaqId:   &best.Id,
		MatchScore:     best.Score,
	}, nil
}

func (s *faqService) materialize(ctx context.Context, req *dto.CreateFAQRequest) (*dto.CreateFAQResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	faq := &entity.FAQ{
		Question: req.Question,
		Answer:   req.Answer,
		Category: req.Category,
		Status:   "ACTIVE",
	}
	if err := uow.FAQRepository().Create(ctx, faq); err != nil {
		return nil, err
	}

	docIds := make([]uuid.UUID, 0, len(req.SourceIds)+1)
	if req.DocumentId != nil && *req.DocumentId != uuid.Nil {
		docIds = append(docIds, *req.DocumentId)
	}
	docIds = append(docIds, req.SourceIds...)

	for _, docId := range docIds {
		link := &entity.FAQDocumentLink{
			FaqId:      faq.Id,
			DocumentId: docId,
		}
		if err := uow.FAQLinkRepository().CreateDocumentLink(ctx, link); err != nil {
			return nil, err
		}
	}

	if req.MessageId != nil && *req.MessageId != "" {
		link := &entity.FAQMessageLink{
			FaqId:     faq.Id,
			MessageId: *req.MessageId,
			ChannelId: req.ChannelId,
		}
		if err := uow.FAQLinkRepository().CreateMessageLink(ctx, link); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.queueEmbed(ctx, faq)

	return &dto.CreateFAQResponse{
		Id: faq.Id,
	}, nil
}

func (s *faqService) queueEmbed(ctx context.Context, faq *entity.FAQ) {
	msgPayload := dto.PublishEmbedFAQMessage{FaqId: faq.Id}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		s.logger.Warn("faq", "Failed to queue embed message", map[string]interface{}{
			"faq_id": faq.Id,
			"error":  err.Error(),
		})
	}

	if s.eventPublisher != nil {
		evt := events.NewFAQCreated(faq.Id.String(), faq.Question)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("faq", "Failed to publish FAQ created event", map[string]interface{}{
				"faq_id": faq.Id,
				"error":  err.Error(),
			})
		}
	}
}
