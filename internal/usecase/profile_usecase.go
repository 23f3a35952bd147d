package usecase

import (
	"context"
	"errors"
	"strings"

	"jobboard/internal/domain/employer"
	"jobboard/internal/domain/seeker"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrSeekerProfileNotFound   = errors.New("seeker profile not found")
	ErrEmployerProfileNotFound = errors.New("employer profile not found")
)

type UpdateSeekerProfileInput struct {
	Name       string
	Skills     []string
	Experience string
	Education  string
	ResumeURL  string
	SavedJobs  []uuid.UUID
}

type UpdateEmployerProfileInput struct {
	CompanyName string
	Description string
	Website     string
	LogoURL     string
}

type ProfileUsecase interface {
	GetSeekerProfile(ctx context.Context, userID uuid.UUID) (seeker.Profile, error)
	UpdateSeekerProfile(ctx context.Context, userID uuid.UUID, in UpdateSeekerProfileInput) (seeker.Profile, error)
	SaveJob(ctx context.Context, userID, jobID uuid.UUID) (seeker.Profile, error)
	GetEmployerProfile(ctx context.Context, userID uuid.UUID) (employer.Profile, error)
	UpdateEmployerProfile(ctx context.Context, userID uuid.UUID, in UpdateEmployerProfileInput) (employer.Profile, error)
}

type Profile struct {
	seekers   repository.SeekerRepository
	employers repository.EmployerRepository
	jobs      repository.JobRepository
}

func NewProfileUsecase(seekers repository.SeekerRepository, employers repository.EmployerRepository, jobs repository.JobRepository) *Profile {
	return &Profile{seekers: seekers, employers: employers, jobs: jobs}
}

func (u *Profile) GetSeekerProfile(ctx context.Context, userID uuid.UUID) (seeker.Profile, error) {
	if userID == uuid.Nil {
		return seeker.Profile{}, ErrUnauthorized
	}
	p, err := u.seekers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSeekerNotFound) {
			return seeker.Profile{}, ErrSeekerProfileNotFound
		}
		return seeker.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *Profile) UpdateSeekerProfile(ctx context.Context, userID uuid.UUID, in UpdateSeekerProfileInput) (seeker.Profile, error) {
	if userID == uuid.Nil {
		return seeker.Profile{}, ErrUnauthorized
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return seeker.Profile{}, ErrInvalidInput
	}

	p := seeker.Profile{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		Skills:     seeker.NormalizeSkills(in.Skills),
		Experience: strings.TrimSpace(in.Experience),
		Education:  strings.TrimSpace(in.Education),
		ResumeURL:  strings.TrimSpace(in.ResumeURL),
		SavedJobs:  in.SavedJobs,
	}
	if p.SavedJobs == nil {
		p.SavedJobs = []uuid.UUID{}
	}

	saved, err := u.seekers.Upsert(ctx, p)
	if err != nil {
		return seeker.Profile{}, ErrInternal
	}
	return saved, nil
}

// SaveJob bookmarks an approved posting on the seeker's profile. Saving the
// same job again is a no-op.
func (u *Profile) SaveJob(ctx context.Context, userID, jobID uuid.UUID) (seeker.Profile, error) {
	if userID == uuid.Nil {
		return seeker.Profile{}, ErrUnauthorized
	}

	p, err := u.seekers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSeekerNotFound) {
			return seeker.Profile{}, ErrSeekerProfileNotFound
		}
		return seeker.Profile{}, ErrInternal
	}

	posting, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return seeker.Profile{}, ErrJobNotFound
		}
		return seeker.Profile{}, ErrInternal
	}
	if !posting.Approved {
		return seeker.Profile{}, ErrJobNotFound
	}

	for _, saved := range p.SavedJobs {
		if saved == jobID {
			return p, nil
		}
	}
	p.SavedJobs = append(p.SavedJobs, jobID)

	saved, err := u.seekers.Upsert(ctx, p)
	if err != nil {
		return seeker.Profile{}, ErrInternal
	}
	return saved, nil
}

func (u *Profile) GetEmployerProfile(ctx context.Context, userID uuid.UUID) (employer.Profile, error) {
	if userID == uuid.Nil {
		return employer.Profile{}, ErrUnauthorized
	}
	p, err := u.employers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployerNotFound) {
			return employer.Profile{}, ErrEmployerProfileNotFound
		}
		return employer.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *Profile) UpdateEmployerProfile(ctx context.Context, userID uuid.UUID, in UpdateEmployerProfileInput) (employer.Profile, error) {
	if userID == uuid.Nil {
		return employer.Profile{}, ErrUnauthorized
	}
	name := strings.TrimSpace(in.CompanyName)
	if name == "" {
		return employer.Profile{}, ErrInvalidInput
	}

	p := employer.Profile{
		ID:          uuid.New(),
		UserID:      userID,
		CompanyName: name,
		Description: strings.TrimSpace(in.Description),
		Website:     strings.TrimSpace(in.Website),
		LogoURL:     strings.TrimSpace(in.LogoURL),
	}

	saved, err := u.employers.Upsert(ctx, p)
	if err != nil {
		return employer.Profile{}, ErrInternal
	}
	return saved, nil
}
