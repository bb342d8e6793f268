package service

import (
	"context"
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

// pendingPageLimit caps the pending working set returned to the dashboard.
const pendingPageLimit = 200

type IPIIReviewService interface {
	UpdateDetection(ctx context.Context, req *dto.UpdatePIIDetectionRequest) error
	BulkUpdateDetections(ctx context.Context, req *dto.BulkUpdatePIIDetectionsRequest) (*dto.BulkUpdateResponse, error)
	PendingDetections(ctx context.Context) ([]*dto.PIIDetectionResponse, error)
}

type piiReviewService struct {
	uowFactory     unitofwork.RepositoryFactory
	machine        *review.Machine
	logger         logger.ILogger
	pending        *memory.PendingCache
	eventPublisher *pktNats.Publisher
}

func NewPIIReviewService(
	uowFactory unitofwork.RepositoryFactory,
	machine *review.Machine,
	log logger.ILogger,
	pending *memory.PendingCache,
	eventPublisher *pktNats.Publisher,
) IPIIReviewService {
	return &piiReviewService{
		uowFactory:     uowFactory,
		machine:        machine,
		logger:         log,
		pending:        pending,
		eventPublisher: eventPublisher,
	}
}

func (s *piiReviewService) UpdateDetection(ctx context.Context, req *dto.UpdatePIIDetectionRequest) error {
	return s.applyDecision(ctx, req.DetectionId, req.Status, req.ReviewedBy, req.ReviewNote, req.CustomReplacement)
}

// BulkUpdateDetections applies each decision independently: one bad id never
// blocks the rest of the batch.
func (s *piiReviewService) BulkUpdateDetections(ctx context.Context, req *dto.BulkUpdatePIIDetectionsRequest) (*dto.BulkUpdateResponse, error) {
	res := &dto.BulkUpdateResponse{
		Failed: make([]dto.BulkFailure, 0),
	}

	for _, item := range req.Updates {
		err := s.applyDecision(ctx, item.DetectionId, item.Status, req.ReviewedBy, req.ReviewNote, "")
		if err != nil {
			res.Failed = append(res.Failed, dto.BulkFailure{
				Id:     item.DetectionId,
				Reason: err.Error(),
			})
			continue
		}
		res.Succeeded++
	}

	return res, nil
}

func (s *piiReviewService) PendingDetections(ctx context.Context) ([]*dto.PIIDetectionResponse, error) {
	detections, cached := s.pending.GetPendingPII()
	if !cached {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		var err error
		detections, err = uow.PIIDetectionRepository().FindAll(ctx,
			specification.ByStatus{Status: string(review.StatusPendingReview)},
			specification.OldestFirst{},
			specification.Pagination{Limit: pendingPageLimit},
		)
		if err != nil {
			return nil, err
		}
		s.pending.SavePendingPII(detections)
	}

	res := make([]*dto.PIIDetectionResponse, len(detections))
	for i, d := range detections {
		res[i] = toPIIDetectionResponse(d)
	}
	return res, nil
}

func (s *piiReviewService) applyDecision(ctx context.Context, id uuid.UUID, status, reviewedBy, note, customReplacement string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	det, err := uow.PIIDetectionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if det == nil {
		return fiber.NewError(fiber.StatusNotFound, "PII detection not found")
	}

	fromStatus := det.Status

	outcome, err := s.machine.Check(review.KindPIIDetection, review.Status(fromStatus), review.Status(status))
	if err != nil {
		return err
	}
	if outcome == review.OutcomeNoOp {
		// Retried request; the decision already stands.
		return nil
	}

	now := time.Now()
	det.Status = status
	det.ReviewedBy = reviewedBy
	det.ReviewNote = note
	det.ReviewedAt = &now
	if customReplacement != "" {
		det.CustomReplacement = customReplacement
	}

	override := map[string]interface{}{}
	if customReplacement != "" {
		override["customReplacement"] = customReplacement
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.PIIDetectionRepository().Update(ctx, det); err != nil {
		return err
	}

	event := &entity.ReviewEvent{
		RecordKind: string(review.KindPIIDetection),
		RecordId:   det.Id,
		FromStatus: fromStatus,
		ToStatus:   status,
		Actor:      reviewedBy,
		Note:       note,
		Override:   override,
	}
	if err := uow.ReviewEventRepository().Create(ctx, event); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.pending.InvalidatePII()
	s.publishDecision(ctx, det.Id, fromStatus, status, reviewedBy)

	return nil
}

func (s *piiReviewService) publishDecision(ctx context.Context, id uuid.UUID, from, to, actor string) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.NewReviewDecision(string(review.KindPIIDetection), id.String(), from, to, actor)
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("review", "Failed to publish review decision event", map[string]interface{}{
			"detection_id": id,
			"error":        err.Error(),
		})
	}
}

func toPIIDetectionResponse(d *entity.PIIDetection) *dto.PIIDetectionResponse {
	return &dto.PIIDetectionResponse{
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
	}
}
