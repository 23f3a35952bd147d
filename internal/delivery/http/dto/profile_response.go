package dto

import (
	"jobboard/internal/domain/employer"
	"jobboard/internal/domain/seeker"

	"github.com/google/uuid"
)

type SeekerProfileResponse struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	Skills     []string    `json:"skills"`
	Experience string      `json:"experience"`
	Education  string      `json:"education"`
	ResumeURL  string      `json:"resume_url"`
	SavedJobs  []uuid.UUID `json:"saved_jobs"`
	Complete   bool        `json:"complete"`
}

func NewSeekerProfileResponse(p seeker.Profile) SeekerProfileResponse {
	return SeekerProfileResponse{
		ID:         p.ID,
		Name:       p.Name,
		Skills:     emptyIfNil(p.Skills),
		Experience: p.Experience,
		Education:  p.Education,
		ResumeURL:  p.ResumeURL,
		SavedJobs:  p.SavedJobs,
		Complete:   p.Complete(),
	}
}

func NewSeekerProfileListResponse(profiles []seeker.Profile) []SeekerProfileResponse {
	out := make([]SeekerProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, NewSeekerProfileResponse(p))
	}
	return out
}

type EmployerProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	CompanyName string    `json:"company_name"`
	Description string    `json:"description"`
	Website     string    `json:"website"`
	LogoURL     string    `json:"logo_url"`
}

func NewEmployerProfileResponse(p employer.Profile) EmployerProfileResponse {
	return EmployerProfileResponse{
		ID:          p.ID,
		CompanyName: p.CompanyName,
		Description: p.Description,
		Website:     p.Website,
		LogoURL:     p.LogoURL,
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
