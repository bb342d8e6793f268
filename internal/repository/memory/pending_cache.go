package memory

import (
	"time"

	"faq-knowledge-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

const (
	keyPendingPII        = "pending:pii"
	keyPendingCandidates = "pending:candidates"
)

// PendingCache holds the review dashboard's pending working sets so repeated
// polling does not hammer the database. Entries are short lived and are
// evicted the moment a decision lands.
type PendingCache struct {
	cache *cache.Cache
}

func NewPendingCache() *PendingCache {
	// Pending sets go stale fast; keep them for 30 seconds and purge
	// leftovers every minute.
	c := cache.New(30*time.Second, 1*time.Minute)
	return &PendingCache{
		cache: c,
	}
}

func (r *PendingCache) SavePendingPII(detections []*entity.PIIDetection) {
	r.cache.Set(keyPendingPII, detections, cache.DefaultExpiration)
}

func (r *PendingCache) GetPendingPII() ([]*entity.PIIDetection, bool) {
	if x, found := r.cache.Get(keyPendingPII); found {
		return x.([]*entity.PIIDetection), true
	}
	return nil, false
}

func (r *PendingCache) SavePendingCandidates(candidates []*entity.DuplicateCandidate) {
	r.cache.Set(keyPendingCandidates, candidates, cache.DefaultExpiration)
}

func (r *PendingCache) GetPendingCandidates() ([]*entity.DuplicateCandidate, bool) {
	if x, found := r.cache.Get(keyPendingCandidates); found {
		return x.([]*entity.DuplicateCandidate), true
	}
	return nil, false
}

// InvalidatePII drops the cached PII working set after a decision.
func (r *PendingCache) InvalidatePII() {
	r.cache.Delete(keyPendingPII)
}

// InvalidateCandidates drops the cached candidate working set after a decision.
func (r *PendingCache) InvalidateCandidates() {
	r.cache.Delete(keyPendingCandidates)
}
