package dto

import (
	"time"

	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

type JobResponse struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	Salary         string    `json:"salary"`
	Type           string    `json:"type"`
	SkillsRequired []string  `json:"skills_required"`
	Approved       bool      `json:"approved"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewJobResponse(p job.Posting) JobResponse {
	return JobResponse{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		Location:       p.Location,
		Salary:         p.Salary,
		Type:           string(p.Type),
		SkillsRequired: emptyIfNil(p.SkillsRequired),
		Approved:       p.Approved,
		CreatedAt:      p.CreatedAt,
	}
}

func NewJobListResponse(postings []job.Posting) []JobResponse {
	out := make([]JobResponse, 0, len(postings))
	for _, p := range postings {
		out = append(out, NewJobResponse(p))
	}
	return out
}
