// Package dedup implements duplicate detection over FAQ-like records and the
// safe removal of non-canonical duplicates from the relational store and the
// similarity index.
package dedup

import (
	"context"

	"faq-knowledge-be/internal/pkg/logger"

	"github.com/google/uuid"
)

// DefaultThreshold is the minimum similarity score for two records to be
// considered duplicates of one another.
const DefaultThreshold = 0.85

const previewRunes = 80

// Grouper clusters near-duplicate records. Canonical selection is a pure
// function of input order: records must arrive oldest first, and the oldest
// unprocessed member of a cluster always survives.
type Grouper struct {
	gateway   Gateway
	threshold float64
	logger    logger.ILogger
}

func NewGrouper(gateway Gateway, threshold float64, log logger.ILogger) *Grouper {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Grouper{
		gateway:   gateway,
		threshold: threshold,
		logger:    log,
	}
}

// Group consumes records ordered oldest to newest and emits disjoint
// clusters. Every id is evaluated at most once per call: the processed set
// is local to the call, so concurrent runs stay independent.
//
// A record whose similarity query fails is marked processed and skipped with
// a warning; it neither forms nor joins a cluster this run.
func (g *Grouper) Group(ctx context.Context, records []*Record) []Cluster {
	processed := make(map[uuid.UUID]bool, len(records))
	clusters := make([]Cluster, 0)

	for _, rec := range records {
		if processed[rec.Id] {
			continue
		}

		res, err := g.gateway.FindSimilar(ctx, rec)
		if err != nil {
			processed[rec.Id] = true
			g.logger.Warn("dedup", "Similarity query failed; skipping record this run", map[string]interface{}{
				"record_id": rec.Id,
				"error":     err.Error(),
			})
			continue
		}

		if res == nil || !res.IsDuplicate || len(res.Matches) <= 1 {
			processed[rec.Id] = true
			continue
		}

		// Keep matches above the threshold that nobody has claimed yet.
		// The query record's own index entry normally shows up in the
		// matches; make sure it is in the set either way so the member
		// count reflects the full cluster.
		filtered := make([]uuid.UUID, 0, len(res.Matches))
		seenSelf := false
		for _, m := range res.Matches {
			if m.Score < g.threshold || processed[m.Id] {
				continue
			}
			if m.Id == rec.Id {
				seenSelf = true
			}
			filtered = append(filtered, m.Id)
		}
		if !seenSelf {
			filtered = append([]uuid.UUID{rec.Id}, filtered...)
		}

		if len(filtered) > 1 {
			losers := make([]uuid.UUID, 0, len(filtered)-1)
			for _, id := range filtered {
				if id != rec.Id {
					losers = append(losers, id)
				}
			}
			clusters = append(clusters, Cluster{
				Canonical: rec.Id,
				Losers:    losers,
				Preview:   truncatePreview(rec.Question),
			})
		}

		// Mark the whole filtered set regardless of whether a cluster was
		// emitted, so each id is evaluated at most once per run.
		for _, id := range filtered {
			processed[id] = true
		}
		processed[rec.Id] = true
	}

	return clusters
}

func truncatePreview(s string) string {
	runes := []rune(s)
	if len(runes) <= previewRunes {
		return s
	}
	return string(runes[:previewRunes]) + "..."
}
