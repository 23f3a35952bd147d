package employer

import (
	"strings"

	"github.com/google/uuid"
)

// Profile is an employer's company profile. Exactly one per user.
type Profile struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CompanyName string
	Description string
	Website     string
	LogoURL     string
}

func (p Profile) Complete() bool {
	return strings.TrimSpace(p.CompanyName) != ""
}
