package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"faq-knowledge-be/internal/dto"
	"faq-knowledge-be/internal/pkg/logger"
	"faq-knowledge-be/internal/pkg/mailer"
	"faq-knowledge-be/internal/repository/specification"
	"faq-knowledge-be/internal/repository/unitofwork"
	"faq-knowledge-be/pkg/dedup"
	"faq-knowledge-be/pkg/events"
	pktNats "faq-knowledge-be/pkg/nats"

	"github.com/redis/go-redis/v9"
)

const lastRunKey = "cleanup:last_run"

type ICleanupService interface {
	// Run scans the whole FAQ table oldest first, groups near-duplicates
	// and removes all non-canonical members.
	Run(ctx context.Context) (*dto.CleanupRunResponse, error)
	// LastRun returns the most recent run summary, or nil when no run has
	// been recorded yet.
	LastRun(ctx context.Context) (*dto.CleanupRunResponse, error)
}

type cleanupService struct {
	uowFactory       unitofwork.RepositoryFactory
	grouper          *dedup.Grouper
	cleaner          *dedup.Cleaner
	logger           logger.ILogger
	rdb              *redis.Client
	eventPublisher   *pktNats.Publisher
	emailService     mailer.IEmailService
	summaryRecipient string
}

func NewCleanupService(
	uowFactory unitofwork.RepositoryFactory,
	gateway dedup.Gateway,
	store dedup.RecordStore,
	threshold float64,
	log logger.ILogger,
	rdb *redis.Client,
	eventPublisher *pktNats.Publisher,
	emailService mailer.IEmailService,
	summaryRecipient string,
) ICleanupService {
	return &cleanupService{
		uowFactory:       uowFactory,
		grouper:          dedup.NewGrouper(gateway, threshold, log),
		cleaner:          dedup.NewCleaner(store, gateway, log),
		logger:           log,
		rdb:              rdb,
		eventPublisher:   eventPublisher,
		emailService:     emailService,
		summaryRecipient: summaryRecipient,
	}
}

func (s *cleanupService) Run(ctx context.Context) (*dto.CleanupRunResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	faqs, err := uow.FAQRepository().FindAll(ctx, specification.OldestFirst{})
	if err != nil {
		return nil, err
	}

	records := make([]*dedup.Record, len(faqs))
	for i, f := range faqs {
		records[i] = &dedup.Record{
			Id:        f.Id,
			Question:  f.Question,
			Answer:    f.Answer,
			Category:  f.Category,
			CreatedAt: f.CreatedAt,
		}
	}

	s.logger.Info("cleanup", "Starting duplicate cleanup run", map[string]interface{}{
		"scanned": len(records),
	})

	clusters := s.grouper.Group(ctx, records)

	summary, err := s.cleaner.Cleanup(ctx, clusters, len(records))
	if err != nil {
		// A cancelled run still produced a valid partial summary; report it
		// rather than throwing the work away.
		s.logger.Warn("cleanup", "Cleanup run interrupted", map[string]interface{}{
			"error":   err.Error(),
			"removed": summary.Removed,
		})
	}

	s.persistLastRun(ctx, summary)
	s.announce(ctx, summary)

	s.logger.Info("cleanup", "Cleanup run finished", map[string]interface{}{
		"duplicatesRemoved": summary.Removed,
		"totalFAQs":         summary.RemainingTotal,
		"staleReferences":   summary.StaleReferences,
		"duplicateGroups":   len(summary.Groups),
	})

	return dto.NewCleanupRunResponse(summary), nil
}

func (s *cleanupService) LastRun(ctx context.Context) (*dto.CleanupRunResponse, error) {
	if s.rdb == nil {
		return nil, nil
	}

	raw, err := s.rdb.Get(ctx, lastRunKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var res dto.CleanupRunResponse
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// persistLastRun stores the summary for the dashboard's last-run endpoint.
// Best effort: a dead redis must not fail the run that already happened.
func (s *cleanupService) persistLastRun(ctx context.Context, summary *dedup.Summary) {
	if s.rdb == nil {
		return
	}

	raw, err := json.Marshal(dto.NewCleanupRunResponse(summary))
	if err != nil {
		return
	}

	if err := s.rdb.Set(ctx, lastRunKey, raw, 7*24*time.Hour).Err(); err != nil {
		s.logger.Warn("cleanup", "Failed to persist last-run summary", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// announce publishes the audit event and mails the summary. Both best effort.
func (s *cleanupService) announce(ctx context.Context, summary *dedup.Summary) {
	if s.eventPublisher != nil {
		evt := events.NewCleanupCompleted(summary.Removed, summary.RemainingTotal, summary.StaleReferences, len(summary.Groups))
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("cleanup", "Failed to publish cleanup event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	if s.emailService != nil && s.summaryRecipient != "" {
		if err := s.emailService.SendCleanupSummary(s.summaryRecipient, summary.Removed, summary.RemainingTotal, summary.StaleReferences, len(summary.Groups)); err != nil {
			s.logger.Warn("cleanup", "Failed to send summary mail", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}
