package service

import (
	"context"
	"testing"
	"time"

	"faq-knowledge-be/internal/entity"
	"faq-knowledge-be/internal/pkg/logger"
	"faq-knowledge-be/pkg/dedup"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newCleanupFixture() (*fakeState, *fakeGateway, ICleanupService) {
	state := newFakeState()
	gw := newFakeGateway()
	svc := NewCleanupService(
		state,
		gw,
		NewFAQRecordStore(state),
		dedup.DefaultThreshold,
		logger.NewNopLogger(),
		nil,
		nil,
		nil,
		"",
	)
	return state, gw, svc
}

func seedFAQ(state *fakeState, question string, createdAt time.Time) uuid.UUID {
	faq := &entity.FAQ{
		Question:  question,
		Answer:    "answer for " + question,
		Status:    "ACTIVE",
		CreatedAt: createdAt,
	}
	_ = (&fakeFAQRepo{state: state}).Create(context.Background(), faq)
	return faq.Id
}

func TestCleanupRunRemovesDuplicatesKeepsOldest(t *testing.T) {
	state, gw, svc := newCleanupFixture()

	base := time.Now().Add(-time.Hour)
	oldest := seedFAQ(state, "What is the deploy process?", base)
	newer := seedFAQ(state, "What is the deploy process?", base.Add(time.Minute))
	unique := seedFAQ(state, "How do I request VPN access?", base.Add(2*time.Minute))

	// Link rows must disappear along with the duplicate.
	_ = (&fakeFAQLinkRepo{state: state}).CreateDocumentLink(context.Background(), &entity.FAQDocumentLink{
		FaqId:      newer,
		DocumentId: uuid.New(),
	})

	staleId := uuid.New()
	gw.results["What is the deploy process?"] = &dedup.QueryResult{
		IsDuplicate: true,
		Matches: []dedup.Match{
			{Id: oldest, Score: 1.0},
			{Id: newer, Score: 0.92},
			{Id: staleId, Score: 0.9},
		},
	}

	res, err := svc.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, res.DuplicatesRemoved)
	assert.Equal(t, 2, res.TotalFAQs)
	assert.Equal(t, 1, res.StaleReferences)
	assert.Len(t, res.DuplicateGroups, 1)

	group := res.DuplicateGroups[0]
	assert.Equal(t, oldest, group.KeptFAQ)
	assert.Equal(t, []uuid.UUID{newer}, group.RemovedFAQs)
	assert.Equal(t, 2, group.DuplicateCount)

	// The oldest member and the unrelated FAQ survive, the newer copy is gone.
	faqs, _ := (&fakeFAQRepo{state: state}).FindAll(context.Background())
	assert.Len(t, faqs, 2)
	ids := []uuid.UUID{faqs[0].Id, faqs[1].Id}
	assert.Contains(t, ids, oldest)
	assert.Contains(t, ids, unique)

	links, _ := (&fakeFAQLinkRepo{state: state}).CountByFaqId(context.Background(), newer)
	assert.Equal(t, int64(0), links)

	// Both the removed row's embedding and the stale reference are cleaned.
	assert.Contains(t, gw.deleted, newer)
	assert.Contains(t, gw.deleted, staleId)
}

func TestCleanupRunNoDuplicates(t *testing.T) {
	state, _, svc := newCleanupFixture()

	base := time.Now().Add(-time.Hour)
	seedFAQ(state, "How do I file an expense report?", base)
	seedFAQ(state, "How do I request VPN access?", base.Add(time.Minute))

	res, err := svc.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, res.DuplicatesRemoved)
	assert.Equal(t, 2, res.TotalFAQs)
	assert.Empty(t, res.DuplicateGroups)

	faqs, _ := (&fakeFAQRepo{state: state}).FindAll(context.Background())
	assert.Len(t, faqs, 2)
}

func TestCleanupRunGatewayErrorSkipsRecord(t *testing.T) {
	state, gw, svc := newCleanupFixture()
	gw.findErr = assert.AnError

	base := time.Now().Add(-time.Hour)
	seedFAQ(state, "What is the deploy process?", base)
	seedFAQ(state, "What is the deploy process?", base.Add(time.Minute))

	res, err := svc.Run(context.Background())
	assert.NoError(t, err)
	// An unreachable index means no removals, not a failed run.
	assert.Equal(t, 0, res.DuplicatesRemoved)
	assert.Equal(t, 2, res.TotalFAQs)

	faqs, _ := (&fakeFAQRepo{state: state}).FindAll(context.Background())
	assert.Len(t, faqs, 2)
}

func TestCleanupLastRunWithoutRedis(t *testing.T) {
	_, _, svc := newCleanupFixture()

	res, err := svc.LastRun(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, res)
}
