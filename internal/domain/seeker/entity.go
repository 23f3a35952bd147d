package seeker

import (
	"strings"

	"github.com/google/uuid"
)

// Profile is a job seeker's public profile. Exactly one per user.
type Profile struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	Skills     []string
	Experience string
	Education  string
	ResumeURL  string
	SavedJobs  []uuid.UUID
}

// Complete reports whether the profile is filled in enough to apply for jobs.
func (p Profile) Complete() bool {
	return strings.TrimSpace(p.Name) != "" && len(p.Skills) > 0
}

// NormalizeSkills trims, lowercases and de-duplicates a skill list, keeping
// first-seen order.
func NormalizeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
