package review

// Kind discriminates the record variants that share the review shape.
type Kind string

const (
	KindPIIDetection       Kind = "pii_detection"
	KindDuplicateCandidate Kind = "duplicate_candidate"
)

// Status is a record's review state. The reachable set is fixed per Kind.
type Status string

const (
	// PII detection states.
	StatusPendingReview Status = "PENDING_REVIEW"
	StatusWhitelisted   Status = "WHITELISTED"
	StatusAutoReplaced  Status = "AUTO_REPLACED"
	StatusFlagged       Status = "FLAGGED"

	// Duplicate-FAQ candidate states (pre-insertion).
	StatusDetected        Status = "DETECTED"
	StatusSkipped         Status = "SKIPPED"
	StatusCreateNew       Status = "CREATE_NEW"
	StatusEnhanceExisting Status = "ENHANCE_EXISTING"
)

// transitions maps each kind's initial state to its reachable terminals.
// Terminal states have no outgoing entries; re-review between terminals is a
// policy decision handled by the Machine, not a table entry.
var transitions = map[Kind]map[Status][]Status{
	KindPIIDetection: {
		StatusPendingReview: {StatusWhitelisted, StatusAutoReplaced, StatusFlagged},
	},
	KindDuplicateCandidate: {
		StatusDetected: {StatusSkipped, StatusCreateNew, StatusEnhanceExisting},
	},
}

// initialStatus is the entry state per kind; everything else is terminal.
var initialStatus = map[Kind]Status{
	KindPIIDetection:       StatusPendingReview,
	KindDuplicateCandidate: StatusDetected,
}

// InitialStatus returns the entry state for a record kind.
func InitialStatus(kind Kind) Status {
	return initialStatus[kind]
}

// knownStatuses returns every status valid for a kind.
func knownStatuses(kind Kind) map[Status]bool {
	known := make(map[Status]bool)
	init, ok := initialStatus[kind]
	if !ok {
		return known
	}
	known[init] = true
	for _, targets := range transitions[kind] {
		for _, s := range targets {
			known[s] = true
		}
	}
	return known
}

// IsTerminal reports whether a status has no outgoing transitions for the
// given kind.
func IsTerminal(kind Kind, s Status) bool {
	_, hasOutgoing := transitions[kind][s]
	return !hasOutgoing
}
