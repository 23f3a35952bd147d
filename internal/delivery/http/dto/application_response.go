package dto

import (
	"time"

	"jobboard/internal/domain/application"

	"github.com/google/uuid"
)

type ApplicationResponse struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"job_id"`
	SeekerID    uuid.UUID `json:"seeker_id"`
	CoverLetter string    `json:"cover_letter"`
	ResumeURL   string    `json:"resume_url"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		SeekerID:    a.SeekerID,
		CoverLetter: a.CoverLetter,
		ResumeURL:   a.ResumeURL,
		Status:      string(a.Status),
		AppliedAt:   a.AppliedAt,
	}
}

func NewApplicationListResponse(apps []application.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, NewApplicationResponse(a))
	}
	return out
}
