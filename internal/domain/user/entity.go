package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleSeeker   Role = "seeker"
	RoleEmployer Role = "employer"
	RoleAdmin    Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleSeeker, RoleEmployer, RoleAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         Role
	Blocked      bool
	CreatedAt    time.Time
}
