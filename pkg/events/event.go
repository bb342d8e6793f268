package events

import "time"

// Event type codes published on the bus.
const (
	TypeReviewDecision   = "REVIEW_DECISION"
	TypeCleanupCompleted = "CLEANUP_COMPLETED"
	TypeFAQCreated       = "FAQ_CREATED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "REVIEW_DECISION").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the common implementation used for publishing.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewReviewDecision builds the audit event emitted after a review decision
// is applied to a PII detection or duplicate candidate.
func NewReviewDecision(recordKind, recordId, fromStatus, toStatus, actor string) Event {
	return BaseEvent{
		Type: TypeReviewDecision,
		Data: map[string]interface{}{
			"recordKind": recordKind,
			"recordId":   recordId,
			"fromStatus": fromStatus,
			"toStatus":   toStatus,
			"actor":      actor,
		},
		OccurredAt: time.Now(),
	}
}

// NewCleanupCompleted reports the outcome of a duplicate-cleanup run.
func NewCleanupCompleted(removed, remaining, staleReferences, groups int) Event {
	return BaseEvent{
		Type: TypeCleanupCompleted,
		Data: map[string]interface{}{
			"duplicatesRemoved": removed,
			"totalFAQs":         remaining,
			"staleReferences":   staleReferences,
			"duplicateGroups":   groups,
		},
		OccurredAt: time.Now(),
	}
}

// NewFAQCreated announces a freshly materialized FAQ so downstream
// consumers (index, dashboards) can react.
func NewFAQCreated(faqId, question string) Event {
	return BaseEvent{
		Type: TypeFAQCreated,
		Data: map[string]interface{}{
			"faqId":    faqId,
			"question": question,
		},
		OccurredAt: time.Now(),
	}
}
