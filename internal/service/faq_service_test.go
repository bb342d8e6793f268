package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"faq-knowledge-be/internal/dto"
	"faq-knowledge-be/internal/pkg/logger"
	"faq-knowledge-be/internal/repository/memory"
	"faq-knowledge-be/pkg/dedup"
	"faq-knowledge-be/pkg/review"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newFAQFixture() (*fakeState, *fakeGateway, *fakePublisher, IFAQService) {
	state := newFakeState()
	gw := newFakeGateway()
	pub := &fakePublisher{}
	svc := NewFAQService(
		state,
		gw,
		dedup.DefaultThreshold,
		logger.NewNopLogger(),
		memory.NewPendingCache(),
		pub,
		nil,
	)
	return state, gw, pub, svc
}

func TestFAQCreateRoutesToReviewOnStrongMatch(t *testing.T) {
	state, gw, pub, svc := newFAQFixture()

	existing := uuid.New()
	gw.results["How do I reset my password?"] = &dedup.QueryResult{
		IsDuplicate: true,
		Matches: []dedup.Match{
			{Id: existing, Score: 0.93},
			{Id: uuid.New(), Score: 0.87},
		},
	}

	res, err := svc.Create(context.Background(), &dto.CreateFAQRequest{
		Question: "How do I reset my password?",
		Answer:   "Use the forgot password link.",
		Category: "account",
	})
	assert.NoError(t, err)
	assert.True(t, res.RoutedToReview)
	assert.NotNil(t, res.CandidateId)
	assert.Equal(t, existing, *res.MatchedFaqId)
	assert.Equal(t, 0.93, res.MatchScore)

	cand, _ := (&fakeCandidateRepo{state: state}).FindOne(context.Background())
	assert.NotNil(t, cand)
	assert.Equal(t, string(review.StatusDetected), cand.Status)
	assert.Equal(t, existing, cand.MatchedFaqId)

	// Nothing was created, so nothing gets embedded.
	faq, _ := (&fakeFAQRepo{state: state}).FindOne(context.Background())
	assert.Nil(t, faq)
	assert.Empty(t, pub.payloads)
}

func TestFAQCreateBelowThreshold(t *testing.T) {
	state, gw, pub, svc := newFAQFixture()

	gw.results["How do I reset my password?"] = &dedup.QueryResult{
		Matches: []dedup.Match{{Id: uuid.New(), Score: 0.72}},
	}

	docId := uuid.New()
	sourceId := uuid.New()
	messageId := "1693412345.000100"

	res, err := svc.Create(context.Background(), &dto.CreateFAQRequest{
		Question:   "How do I reset my password?",
		Answer:     "Use the forgot password link.",
		Category:   "account",
		DocumentId: &docId,
		MessageId:  &messageId,
		ChannelId:  "C0123APP",
		SourceIds:  []uuid.UUID{sourceId},
	})
	assert.NoError(t, err)
	assert.False(t, res.RoutedToReview)
	assert.NotEqual(t, uuid.Nil, res.Id)

	faq, _ := (&fakeFAQRepo{state: state}).FindOne(context.Background())
	assert.NotNil(t, faq)
	assert.Equal(t, "ACTIVE", faq.Status)

	links, _ := (&fakeFAQLinkRepo{state: state}).CountByFaqId(context.Background(), faq.Id)
	assert.Equal(t, int64(3), links) // two document links plus the message link

	assert.Len(t, pub.payloads, 1)
	var msg dto.PublishEmbedFAQMessage
	assert.NoError(t, json.Unmarshal(pub.payloads[0], &msg))
	assert.Equal(t, faq.Id, msg.FaqId)
}

func TestFAQCreateFailsOpenOnGatewayError(t *testing.T) {
	state, gw, _, svc := newFAQFixture()
	gw.findErr = errors.New("index unreachable")

	res, err := svc.Create(context.Background(), &dto.CreateFAQRequest{
		Question: "How do I reset my password?",
		Answer:   "Use the forgot password link.",
	})
	assert.NoError(t, err)
	assert.False(t, res.RoutedToReview)

	faq, _ := (&fakeFAQRepo{state: state}).FindOne(context.Background())
	assert.NotNil(t, faq)
}

func TestFAQCreateNoMatches(t *testing.T) {
	state, _, _, svc := newFAQFixture()

	res, err := svc.Create(context.Background(), &dto.CreateFAQRequest{
		Question: "Where is the office wifi password?",
		Answer:   "Ask IT on #helpdesk.",
	})
	assert.NoError(t, err)
	assert.False(t, res.RoutedToReview)

	faq, _ := (&fakeFAQRepo{state: state}).FindOne(context.Background())
	assert.NotNil(t, faq)

	cand, _ := (&fakeCandidateRepo{state: state}).FindOne(context.Background())
	assert.Nil(t, cand)
}
