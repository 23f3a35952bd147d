package job

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeFullTime   Type = "full-time"
	TypePartTime   Type = "part-time"
	TypeRemote     Type = "remote"
	TypeContract   Type = "contract"
	TypeInternship Type = "internship"
)

func ParseType(s string) (Type, bool) {
	switch Type(s) {
	case TypeFullTime, TypePartTime, TypeRemote, TypeContract, TypeInternship:
		return Type(s), true
	default:
		return "", false
	}
}

// Posting is a job listing owned by exactly one employer profile. It is not
// visible to public search or recommendations until Approved is set by an
// admin.
type Posting struct {
	ID             uuid.UUID
	EmployerID     uuid.UUID
	Title          string
	Description    string
	Location       string
	Salary         string
	Type           Type
	SkillsRequired []string
	Approved       bool
	CreatedAt      time.Time
}
