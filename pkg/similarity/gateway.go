// Package similarity adapts the pgvector-backed embedding table plus an
// embedding provider into the dedup.Gateway contract.
package similarity

import (
	"context"
	"fmt"
	"time"

	"faq-knowledge-be/internal/entity"
	"faq-knowledge-be/internal/pkg/logger"
	"faq-knowledge-be/internal/repository/unitofwork"
	"faq-knowledge-be/pkg/dedup"
	"faq-knowledge-be/pkg/embedding"

	"github.com/google/uuid"
)

const (
	// DefaultFloor is the gateway's own score pre-filter. It sits well below
	// the dedup threshold so callers see borderline matches and apply their
	// own cutoff.
	DefaultFloor = 0.5

	// DefaultTimeout bounds each external call. The index is treated as
	// unreliable; a timeout is a transient failure, not a fatal one.
	DefaultTimeout = 10 * time.Second

	defaultLimit = 10
)

type Gateway struct {
	provider embedding.Provider
	factory  unitofwork.RepositoryFactory
	logger   logger.ILogger
	floor    float64
	timeout  time.Duration
	limit    int
}

func NewGateway(provider embedding.Provider, factory unitofwork.RepositoryFactory, log logger.ILogger, floor float64, timeout time.Duration) *Gateway {
	if floor <= 0 || floor >= 1 {
		floor = DefaultFloor
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Gateway{
		provider: provider,
		factory:  factory,
		logger:   log,
		floor:    floor,
		timeout:  timeout,
		limit:    defaultLimit,
	}
}

// FindSimilar embeds the record's content and runs a scored cosine search.
// The query record's own index entry counts as a match of itself, so
// IsDuplicate is set only when something OTHER than the query id matched.
func (g *Gateway) FindSimilar(ctx context.Context, record *dedup.Record) (*dedup.QueryResult, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	vec, err := g.provider.Generate(ctx, embedText(record), embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("embedding query text: %w", err)
	}

	uow := g.factory.NewUnitOfWork(ctx)
	scored, err := uow.FAQEmbeddingRepository().SearchSimilarWithScore(ctx, vec, g.limit, g.floor)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}

	matches := make([]dedup.Match, 0, len(scored))
	isDuplicate := false
	for _, s := range scored {
		matches = append(matches, dedup.Match{
			Id:    s.Embedding.FaqId,
			Score: s.Similarity,
		})
		if s.Embedding.FaqId != record.Id {
			isDuplicate = true
		}
	}

	return &dedup.QueryResult{
		IsDuplicate: isDuplicate,
		Matches:     matches,
	}, nil
}

// DeleteEmbedding hard-deletes the record's index entry. Deleting a missing
// entry is a no-op, which keeps cleanup retries idempotent.
func (g *Gateway) DeleteEmbedding(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	uow := g.factory.NewUnitOfWork(ctx)
	return uow.FAQEmbeddingRepository().DeleteByFaqIdUnscoped(ctx, id)
}

// UpsertEmbedding replaces the record's index entry with a freshly embedded
// one. Delete-then-create runs in one transaction so the index never holds
// two entries for the same record.
func (g *Gateway) UpsertEmbedding(ctx context.Context, record *dedup.Record) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	vec, err := g.provider.Generate(ctx, embedText(record), embedding.TaskRetrievalDocument)
	if err != nil {
		return fmt.Errorf("embedding document text: %w", err)
	}

	uow := g.factory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	repo := uow.FAQEmbeddingRepository()
	if err := repo.DeleteByFaqIdUnscoped(ctx, record.Id); err != nil {
		_ = uow.Rollback()
		return err
	}

	e := &entity.FAQEmbedding{
		Document:       embedText(record),
		EmbeddingValue: vec,
		FaqId:          record.Id,
	}
	if err := repo.Create(ctx, e); err != nil {
		_ = uow.Rollback()
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	g.logger.Debug("similarity", "Upserted embedding", map[string]interface{}{
		"faq_id": record.Id,
	})
	return nil
}

func embedText(record *dedup.Record) string {
	return record.Question + "\n" + record.Answer
}
