package dedup

import (
	"context"
	"errors"

	"faq-knowledge-be/internal/pkg/logger"

	"github.com/google/uuid"
)

// Cleaner removes the losers of duplicate clusters from the record store and
// the similarity index. Deletions follow referential-integrity order: link
// rows first, then the record row, then the embedding. The two stores are
// allowed to drift momentarily; a later run's stale-reference path reconciles
// an embedding that outlived its row.
type Cleaner struct {
	store   RecordStore
	gateway Gateway
	logger  logger.ILogger
}

func NewCleaner(store RecordStore, gateway Gateway, log logger.ILogger) *Cleaner {
	return &Cleaner{
		store:   store,
		gateway: gateway,
		logger:  log,
	}
}

// Cleanup processes clusters in emission order. Failures are contained to a
// single loser: a loser that cannot be removed is logged and left in place
// without aborting its cluster or the run. scanned is the number of records
// the run evaluated; RemainingTotal is scanned minus actual removals.
//
// The only error returned is context cancellation, with the partial summary
// accumulated so far.
func (c *Cleaner) Cleanup(ctx context.Context, clusters []Cluster, scanned int) (*Summary, error) {
	summary := &Summary{
		Groups: make([]ClusterDetail, 0, len(clusters)),
	}

	for _, cluster := range clusters {
		detail := ClusterDetail{
			Question:    cluster.Preview,
			KeptFAQ:     cluster.Canonical,
			RemovedFAQs: make([]uuid.UUID, 0, len(cluster.Losers)),
		}

		for _, loserId := range cluster.Losers {
			if err := ctx.Err(); err != nil {
				detail.DuplicateCount = len(detail.RemovedFAQs) + 1
				summary.Groups = append(summary.Groups, detail)
				summary.Removed = countRemoved(summary.Groups)
				summary.RemainingTotal = scanned - summary.Removed
				return summary, err
			}
			if c.removeLoser(ctx, loserId, summary) {
				detail.RemovedFAQs = append(detail.RemovedFAQs, loserId)
			}
		}

		detail.DuplicateCount = len(detail.RemovedFAQs) + 1
		summary.Groups = append(summary.Groups, detail)
	}

	summary.Removed = countRemoved(summary.Groups)
	summary.RemainingTotal = scanned - summary.Removed
	return summary, nil
}

// removeLoser applies the ordered removal procedure for one loser id and
// reports whether the relational row was actually removed.
func (c *Cleaner) removeLoser(ctx context.Context, id uuid.UUID, summary *Summary) bool {
	rec, err := c.store.GetRecord(ctx, id)
	if err != nil {
		c.logger.Error("dedup", "Failed to look up duplicate record; leaving it in place", map[string]interface{}{
			"record_id": id,
			"error":     err.Error(),
		})
		return false
	}

	if rec == nil {
		// Stale index reference: no relational row behind the match.
		// Clean the embedding only; not counted as a removed duplicate.
		if err := c.gateway.DeleteEmbedding(ctx, id); err != nil {
			c.logger.Warn("dedup", "Failed to clean stale embedding reference", map[string]interface{}{
				"record_id": id,
				"error":     err.Error(),
			})
		} else {
			c.logger.Warn("dedup", "Cleaned stale embedding reference with no relational row", map[string]interface{}{
				"record_id": id,
			})
		}
		summary.StaleReferences++
		return false
	}

	// Link rows must go before the record row. Crashing between the two
	// leaves orphaned links otherwise.
	if err := c.store.DeleteLinks(ctx, id); err != nil {
		c.logger.Error("dedup", "Failed to delete link rows; leaving duplicate in place", map[string]interface{}{
			"record_id": id,
			"error":     err.Error(),
		})
		return false
	}

	if err := c.store.DeleteRecord(ctx, id); err != nil {
		if errors.Is(err, ErrRecordGone) {
			// Lost a race with a concurrent cleanup or a manual delete.
			// Expected under concurrent runs; already satisfied.
			c.logger.Warn("dedup", "Record already deleted by a concurrent run", map[string]interface{}{
				"record_id": id,
			})
			return false
		}
		c.logger.Error("dedup", "Failed to delete duplicate record", map[string]interface{}{
			"record_id": id,
			"error":     err.Error(),
		})
		return false
	}

	// Best-effort. The relational delete is never rolled back for an index
	// failure; the stale-reference path picks the leftover up next run.
	if err := c.gateway.DeleteEmbedding(ctx, id); err != nil {
		c.logger.Warn("dedup", "Failed to delete embedding after record removal", map[string]interface{}{
			"record_id": id,
			"error":     err.Error(),
		})
	}

	return true
}

func countRemoved(groups []ClusterDetail) int {
	total := 0
	for _, g := range groups {
		total += len(g.RemovedFAQs)
	}
	return total
}
