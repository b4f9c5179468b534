// Package lifecycle defines the status state machines for job postings
// and their dependent records.
//
// Valid job status graph:
//
//	open ──► scheduled ──► completed
//	  │  ▲        │  ▲         │
//	  │  │        ▼  │         │
//	  │  └── action_needed ◄───┘ (completed ──► open reopens a job)
//	  └────────► completed
//
// Every state except completed can reach every other state; completed can
// only be reopened.
package lifecycle

import "fmt"

// Status values for a job posting.
type Status string

const (
	StatusOpen         Status = "open"
	StatusScheduled    Status = "scheduled"
	StatusActionNeeded Status = "action_needed"
	StatusCompleted    Status = "completed"
)

// validTransitions lists every allowed (from → to) pair.
var validTransitions = map[Status][]Status{
	StatusOpen:         {StatusScheduled, StatusActionNeeded, StatusCompleted},
	StatusScheduled:    {StatusActionNeeded, StatusCompleted, StatusOpen},
	StatusActionNeeded: {StatusScheduled, StatusCompleted, StatusOpen},
	StatusCompleted:    {StatusOpen},
}

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusOpen, StatusScheduled, StatusActionNeeded, StatusCompleted:
		return st, nil
	}
	return "", fmt.Errorf("unknown job status %q", s)
}

// IsTransitionAllowed returns true when moving from → to is permitted by
// the state machine. Self-transitions are never allowed.
func IsTransitionAllowed(from, to Status) bool {
	allowed, ok := validTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}
