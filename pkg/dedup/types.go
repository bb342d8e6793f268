package dedup

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrRecordGone is returned by RecordStore.DeleteRecord when the row was
// already removed by someone else (concurrent cleanup run or manual delete).
// Callers treat it as already-satisfied, not as a failure.
var ErrRecordGone = errors.New("record already deleted")

// Record is an FAQ-like row subject to deduplication.
type Record struct {
	Id        uuid.UUID
	Question  string
	Answer    string
	Category  string
	CreatedAt time.Time
}

// Match is a single hit from the similarity index.
type Match struct {
	Id    uuid.UUID
	Score float64 // 0.0 to 1.0 (1.0 = identical)
}

// QueryResult is the similarity index's answer for one record.
// Matches may include the query record's own index entry.
type QueryResult struct {
	IsDuplicate bool
	Matches     []Match
}

// Gateway wraps the external similarity index. The index is unversioned and
// may be stale, slow or unreachable; callers never assume it is in sync with
// the relational store.
type Gateway interface {
	FindSimilar(ctx context.Context, record *Record) (*QueryResult, error)
	// DeleteEmbedding is best-effort; a failure must not abort the caller.
	DeleteEmbedding(ctx context.Context, id uuid.UUID) error
	UpsertEmbedding(ctx context.Context, record *Record) error
}

// RecordStore is the relational side the cleanup orchestrator works against.
type RecordStore interface {
	// GetRecord returns nil, nil when the row does not exist.
	GetRecord(ctx context.Context, id uuid.UUID) (*Record, error)
	// DeleteLinks removes every link row (document and message links)
	// referencing the record. Must be called before DeleteRecord.
	DeleteLinks(ctx context.Context, id uuid.UUID) error
	// DeleteRecord removes the record row. Returns ErrRecordGone when the
	// row no longer exists.
	DeleteRecord(ctx context.Context, id uuid.UUID) error
}

// Cluster groups near-duplicate record ids. Canonical is kept, Losers are
// slated for removal. Clusters are computed per run and never persisted.
type Cluster struct {
	Canonical uuid.UUID
	Losers    []uuid.UUID
	// Preview is a truncated copy of the canonical question, for reporting.
	Preview string
}

// ClusterDetail reports one cleaned cluster.
type ClusterDetail struct {
	Question       string      `json:"question"`
	DuplicateCount int         `json:"duplicateCount"`
	KeptFAQ        uuid.UUID   `json:"keptFAQ"`
	RemovedFAQs    []uuid.UUID `json:"removedFAQs"`
}

// Summary is the outcome of one cleanup run. RemainingTotal is the number
// of records scanned minus the duplicates actually removed; stale-reference
// cleanups are counted separately and never inflate Removed.
type Summary struct {
	Removed         int             `json:"duplicatesRemoved"`
	RemainingTotal  int             `json:"totalFAQs"`
	StaleReferences int             `json:"staleReferences"`
	Groups          []ClusterDetail `json:"duplicateGroups"`
}
