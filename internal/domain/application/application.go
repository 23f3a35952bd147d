package application

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusApplied     Status = "applied"
	StatusShortlisted Status = "shortlisted"
	StatusInterview   Status = "interview"
	StatusRejected    Status = "rejected"
	StatusHired       Status = "hired"
)

// ParseStatus normalizes and validates a status value.
func ParseStatus(s string) (Status, bool) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case StatusApplied, StatusShortlisted, StatusInterview, StatusRejected, StatusHired:
		return st, true
	default:
		return "", false
	}
}

// Terminal reports whether no further transition is permitted from st.
func (st Status) Terminal() bool {
	return st == StatusRejected || st == StatusHired
}

// CanTransition reports whether the status graph permits moving from st to
// next. Each stage may advance one step or be rejected; rejected and hired
// are terminal.
func (st Status) CanTransition(next Status) bool {
	switch st {
	case StatusApplied:
		return next == StatusShortlisted || next == StatusRejected
	case StatusShortlisted:
		return next == StatusInterview || next == StatusRejected
	case StatusInterview:
		return next == StatusHired || next == StatusRejected
	default:
		return false
	}
}

// Application is a seeker's submission against a job posting. At most one
// exists per (job, seeker) pair.
type Application struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	SeekerID    uuid.UUID
	CoverLetter string
	ResumeURL   string
	Status      Status
	AppliedAt   time.Time
}
