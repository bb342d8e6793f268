// Package review implements the decision state machine that governs
// human-in-the-loop resolution of PII detections and duplicate-FAQ
// candidates. The machine is pure: it validates transitions and reports the
// outcome, while persistence and audit are the caller's job.
package review

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is returned when the target status is not
	// reachable from the record's current status.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrUnknownStatus is returned when the target status does not belong
	// to the record kind at all.
	ErrUnknownStatus = errors.New("unknown status for record kind")

	// ErrUnknownKind is returned for a kind with no transition table.
	ErrUnknownKind = errors.New("unknown record kind")
)

// Outcome classifies a validated decision.
type Outcome int

const (
	// OutcomeApplied means the status should be written.
	OutcomeApplied Outcome = iota
	// OutcomeNoOp means the record already carries the target terminal
	// status; the decision is an idempotent success (retried client
	// requests) and nothing should be written.
	OutcomeNoOp
)

// Config holds the policy knobs of the state machine.
type Config struct {
	// AllowRereview permits a fresh decision on a record already in a
	// terminal status, moving it to a different terminal status. Whether
	// terminal PII statuses are permanently locked is an open product
	// question, so it is a policy switch rather than a table entry.
	// Re-opening back to the initial status is never allowed.
	AllowRereview bool
}

// DefaultConfig matches the observed product behavior: terminal statuses can
// be revised by an explicit reviewer action.
func DefaultConfig() Config {
	return Config{AllowRereview: true}
}

// Machine validates review decisions against per-kind transition tables.
type Machine struct {
	cfg Config
}

func NewMachine(cfg Config) *Machine {
	return &Machine{cfg: cfg}
}

// Check validates moving a record of the given kind from its current status
// to the target status. It never mutates anything.
func (m *Machine) Check(kind Kind, from, to Status) (Outcome, error) {
	table, ok := transitions[kind]
	if !ok {
		return OutcomeApplied, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	known := knownStatuses(kind)
	if !known[to] {
		return OutcomeApplied, fmt.Errorf("%w: %q for kind %q", ErrUnknownStatus, to, kind)
	}
	if !known[from] {
		return OutcomeApplied, fmt.Errorf("%w: %q for kind %q", ErrUnknownStatus, from, kind)
	}

	if from == to && IsTerminal(kind, from) {
		return OutcomeNoOp, nil
	}

	for _, reachable := range table[from] {
		if reachable == to {
			return OutcomeApplied, nil
		}
	}

	// Terminal-to-terminal revision, behind the re-review policy. The
	// initial status is excluded above: table entries never point back to
	// it and IsTerminal(initial) is false.
	if m.cfg.AllowRereview && IsTerminal(kind, from) && IsTerminal(kind, to) {
		return OutcomeApplied, nil
	}

	return OutcomeApplied, fmt.Errorf("%w: %s -> %s for kind %q", ErrInvalidTransition, from, to, kind)
}

// RequiresTarget reports whether a decision needs a target canonical record
// id (ENHANCE_EXISTING points the candidate at the surviving FAQ).
func (m *Machine) RequiresTarget(kind Kind, to Status) bool {
	return kind == KindDuplicateCandidate && to == StatusEnhanceExisting
}
