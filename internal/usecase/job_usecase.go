package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"jobboard/internal/domain/job"
	"jobboard/internal/domain/seeker"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound = errors.New("job not found")
	ErrNotJobOwner = errors.New("job belongs to another employer")
)

type JobInput struct {
	Title          string
	Description    string
	Location       string
	Salary         string
	Type           string
	SkillsRequired []string
}

type JobUsecase interface {
	Create(ctx context.Context, employerUserID uuid.UUID, in JobInput) (job.Posting, error)
	Update(ctx context.Context, employerUserID, jobID uuid.UUID, in JobInput) (job.Posting, error)
	Delete(ctx context.Context, employerUserID, jobID uuid.UUID) error
	GetApproved(ctx context.Context, jobID uuid.UUID) (job.Posting, error)
	ListApproved(ctx context.Context) ([]job.Posting, error)
	ListMine(ctx context.Context, employerUserID uuid.UUID) ([]job.Posting, error)
}

type Job struct {
	jobs      repository.JobRepository
	employers repository.EmployerRepository

	now func() time.Time
}

func NewJobUsecase(jobs repository.JobRepository, employers repository.EmployerRepository) *Job {
	return &Job{jobs: jobs, employers: employers, now: time.Now}
}

func (u *Job) Create(ctx context.Context, employerUserID uuid.UUID, in JobInput) (job.Posting, error) {
	empID, err := u.ownProfile(ctx, employerUserID)
	if err != nil {
		return job.Posting{}, err
	}

	p, err := buildPosting(in)
	if err != nil {
		return job.Posting{}, err
	}
	p.ID = uuid.New()
	p.EmployerID = empID
	p.Approved = false // every posting waits for admin approval
	p.CreatedAt = u.now().UTC()

	if err := u.jobs.Create(ctx, p); err != nil {
		return job.Posting{}, ErrInternal
	}
	return p, nil
}

func (u *Job) Update(ctx context.Context, employerUserID, jobID uuid.UUID, in JobInput) (job.Posting, error) {
	current, err := u.ownedJob(ctx, employerUserID, jobID)
	if err != nil {
		return job.Posting{}, err
	}

	p, err := buildPosting(in)
	if err != nil {
		return job.Posting{}, err
	}
	p.ID = current.ID
	p.EmployerID = current.EmployerID
	p.Approved = current.Approved
	p.CreatedAt = current.CreatedAt

	if err := u.jobs.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Posting{}, ErrJobNotFound
		}
		return job.Posting{}, ErrInternal
	}
	return p, nil
}

func (u *Job) Delete(ctx context.Context, employerUserID, jobID uuid.UUID) error {
	if _, err := u.ownedJob(ctx, employerUserID, jobID); err != nil {
		return err
	}
	if err := u.jobs.Delete(ctx, jobID); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ErrJobNotFound
		}
		return ErrInternal
	}
	return nil
}

// GetApproved fetches a single posting for the public job page. Unapproved
// postings stay invisible here even when fetched by id.
func (u *Job) GetApproved(ctx context.Context, jobID uuid.UUID) (job.Posting, error) {
	p, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Posting{}, ErrJobNotFound
		}
		return job.Posting{}, ErrInternal
	}
	if !p.Approved {
		return job.Posting{}, ErrJobNotFound
	}
	return p, nil
}

func (u *Job) ListApproved(ctx context.Context) ([]job.Posting, error) {
	out, err := u.jobs.ListApproved(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Job) ListMine(ctx context.Context, employerUserID uuid.UUID) ([]job.Posting, error) {
	empID, err := u.ownProfile(ctx, employerUserID)
	if err != nil {
		return nil, err
	}
	out, err := u.jobs.ListByEmployer(ctx, empID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

// ownProfile resolves the employer profile id for an authenticated user.
func (u *Job) ownProfile(ctx context.Context, employerUserID uuid.UUID) (uuid.UUID, error) {
	if employerUserID == uuid.Nil {
		return uuid.Nil, ErrUnauthorized
	}
	emp, err := u.employers.GetByUserID(ctx, employerUserID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployerNotFound) {
			return uuid.Nil, ErrEmployerProfileNotFound
		}
		return uuid.Nil, ErrInternal
	}
	return emp.ID, nil
}

func (u *Job) ownedJob(ctx context.Context, employerUserID, jobID uuid.UUID) (job.Posting, error) {
	empID, err := u.ownProfile(ctx, employerUserID)
	if err != nil {
		return job.Posting{}, err
	}
	current, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Posting{}, ErrJobNotFound
		}
		return job.Posting{}, ErrInternal
	}
	if current.EmployerID != empID {
		return job.Posting{}, ErrNotJobOwner
	}
	return current, nil
}

func buildPosting(in JobInput) (job.Posting, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return job.Posting{}, ErrInvalidInput
	}
	jobType := job.TypeFullTime
	if t := strings.TrimSpace(in.Type); t != "" {
		parsed, ok := job.ParseType(t)
		if !ok {
			return job.Posting{}, ErrInvalidInput
		}
		jobType = parsed
	}

	return job.Posting{
		Title:          title,
		Description:    strings.TrimSpace(in.Description),
		Location:       strings.TrimSpace(in.Location),
		Salary:         strings.TrimSpace(in.Salary),
		Type:           jobType,
		SkillsRequired: seeker.NormalizeSkills(in.SkillsRequired),
	}, nil
}
