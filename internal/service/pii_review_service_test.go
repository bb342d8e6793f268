package service

import (
	"context"
	"errors"
	"testing"

	"faq-knowledge-be/internal/dto"
	"faq-knowledge-be/internal/entity"
	"faq-knowledge-be/internal/pkg/logger"
	"faq-knowledge-be/internal/repository/memory"
	"faq-knowledge-be/pkg/review"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newPIIReviewFixture() (*fakeState, *memory.PendingCache, IPIIReviewService) {
	state := newFakeState()
	pending := memory.NewPendingCache()
	svc := NewPIIReviewService(
		state,
		review.NewMachine(review.DefaultConfig()),
		logger.NewNopLogger(),
		pending,
		nil,
	)
	return state, pending, svc
}

func seedDetection(state *fakeState, status string) uuid.UUID {
	det := &entity.PIIDetection{
		OriginalText:    "john@example.com",
		ReplacementText: "[EMAIL]",
		PiiType:         "email",
		Status:          status,
	}
	_ = (&fakePIIRepo{state: state}).Create(context.Background(), det)
	return det.Id
}

func TestPIIReviewUpdateDetectionApplies(t *testing.T) {
	state, _, svc := newPIIReviewFixture()
	id := seedDetection(state, string(review.StatusPendingReview))

	err := svc.UpdateDetection(context.Background(), &dto.UpdatePIIDetectionRequest{
		DetectionId:       id,
		Status:            string(review.StatusAutoReplaced),
		ReviewedBy:        "reviewer@corp.test",
		CustomReplacement: "[REDACTED]",
		ReviewNote:        "confirmed personal email",
	})
	assert.NoError(t, err)

	det, _ := (&fakePIIRepo{state: state}).FindOne(context.Background())
	assert.Equal(t, string(review.StatusAutoReplaced), det.Status)
	assert.Equal(t, "reviewer@corp.test", det.ReviewedBy)
	assert.Equal(t, "[REDACTED]", det.CustomReplacement)
	assert.NotNil(t, det.ReviewedAt)

	events, _ := (&fakeEventRepo{state: state}).FindAll(context.Background())
	assert.Len(t, events, 1)
	assert.Equal(t, string(review.StatusPendingReview), events[0].FromStatus)
	assert.Equal(t, string(review.StatusAutoReplaced), events[0].ToStatus)
	assert.Equal(t, "[REDACTED]", events[0].Override["customReplacement"])
}

func TestPIIReviewUpdateDetectionCannotReopen(t *testing.T) {
	state, _, svc := newPIIReviewFixture()
	id := seedDetection(state, string(review.StatusWhitelisted))

	err := svc.UpdateDetection(context.Background(), &dto.UpdatePIIDetectionRequest{
		DetectionId: id,
		Status:      string(review.StatusPendingReview),
		ReviewedBy:  "reviewer@corp.test",
	})
	assert.ErrorIs(t, err, review.ErrInvalidTransition)

	// No audit row for a rejected decision.
	events, _ := (&fakeEventRepo{state: state}).FindAll(context.Background())
	assert.Empty(t, events)
}

func TestPIIReviewUpdateDetectionIdempotentNoOp(t *testing.T) {
	state, _, svc := newPIIReviewFixture()
	id := seedDetection(state, string(review.StatusWhitelisted))

	err := svc.UpdateDetection(context.Background(), &dto.UpdatePIIDetectionRequest{
		DetectionId: id,
		Status:      string(review.StatusWhitelisted),
		ReviewedBy:  "reviewer@corp.test",
	})
	assert.NoError(t, err)

	det, _ := (&fakePIIRepo{state: state}).FindOne(context.Background())
	// The retry must not overwrite the original decision metadata.
	assert.Empty(t, det.ReviewedBy)

	events, _ := (&fakeEventRepo{state: state}).FindAll(context.Background())
	assert.Empty(t, events)
}

func TestPIIReviewUpdateDetectionNotFound(t *testing.T) {
	_, _, svc := newPIIReviewFixture()

	err := svc.UpdateDetection(context.Background(), &dto.UpdatePIIDetectionRequest{
		DetectionId: uuid.New(),
		Status:      string(review.StatusWhitelisted),
		ReviewedBy:  "reviewer@corp.test",
	})

	var fiberErr *fiber.Error
	assert.True(t, errors.As(err, &fiberErr))
	assert.Equal(t, fiber.StatusNotFound, fiberErr.Code)
}

func TestPIIReviewBulkUpdatePartialSuccess(t *testing.T) {
	state, _, svc := newPIIReviewFixture()
	okId := seedDetection(state, string(review.StatusPendingReview))
	terminalId := seedDetection(state, string(review.StatusFlagged))
	missingId := uuid.New()

	res, err := svc.BulkUpdateDetections(context.Background(), &dto.BulkUpdatePIIDetectionsRequest{
		Updates: []dto.BulkPIIUpdateItem{
			{DetectionId: okId, Status: string(review.StatusWhitelisted)},
			// Re-opening a terminal record is never allowed.
			{DetectionId: terminalId, Status: string(review.StatusPendingReview)},
			{DetectionId: missingId, Status: string(review.StatusWhitelisted)},
		},
		ReviewedBy: "reviewer@corp.test",
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, res.Succeeded)
	assert.Len(t, res.Failed, 2)

	failedIds := []uuid.UUID{res.Failed[0].Id, res.Failed[1].Id}
	assert.Contains(t, failedIds, terminalId)
	assert.Contains(t, failedIds, missingId)
}

func TestPIIReviewPendingDetections(t *testing.T) {
	state, pending, svc := newPIIReviewFixture()
	seedDetection(state, string(review.StatusPendingReview))
	seedDetection(state, string(review.StatusWhitelisted))

	res, err := svc.PendingDetections(context.Background())
	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, string(review.StatusPendingReview), res[0].Status)

	// Second read is served from the working set cache.
	cached, ok := pending.GetPendingPII()
	assert.True(t, ok)
	assert.Len(t, cached, 1)
}

func TestPIIReviewDecisionInvalidatesPendingCache(t *testing.T) {
	state, pending, svc := newPIIReviewFixture()
	id := seedDetection(state, string(review.StatusPendingReview))

	_, err := svc.PendingDetections(context.Background())
	assert.NoError(t, err)

	err = svc.UpdateDetection(context.Background(), &dto.UpdatePIIDetectionRequest{
		DetectionId: id,
		Status:      string(review.StatusFlagged),
		ReviewedBy:  "reviewer@corp.test",
	})
	assert.NoError(t, err)

	_, ok := pending.GetPendingPII()
	assert.False(t, ok)

	res, err := svc.PendingDetections(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, res)
}
