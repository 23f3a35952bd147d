package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"jobboard/internal/domain/application"
	"jobboard/internal/notify"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrJobNotApproved       = errors.New("job is not open for applications")
	ErrProfileIncomplete    = errors.New("seeker profile is incomplete")
	ErrDuplicateApplication = errors.New("already applied for this job")
	ErrInvalidStatus        = errors.New("invalid status value")
	ErrInvalidTransition    = errors.New("status transition not permitted")
)

type ApplicationUsecase interface {
	Apply(ctx context.Context, jobID, seekerUserID uuid.UUID, coverLetter string) (application.Application, error)
	UpdateStatus(ctx context.Context, applicationID, employerUserID uuid.UUID, newStatus string) (application.Application, error)
	ListForJob(ctx context.Context, jobID, employerUserID uuid.UUID) ([]application.Application, error)
	ListForEmployer(ctx context.Context, employerUserID uuid.UUID) ([]application.Application, error)
	ListMine(ctx context.Context, seekerUserID uuid.UUID) ([]application.Application, error)
}

// Application orchestrates the application lifecycle: the single creation
// path with its preconditions, and employer-driven status transitions through
// the state machine. Every successful mutation emits one event to the
// dispatcher after the write has committed.
type Application struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	seekers      repository.SeekerRepository
	employers    repository.EmployerRepository
	dispatcher   notify.Dispatcher

	now func() time.Time
}

func NewApplicationUsecase(
	applications repository.ApplicationRepository,
	jobs repository.JobRepository,
	seekers repository.SeekerRepository,
	employers repository.EmployerRepository,
	dispatcher notify.Dispatcher,
) *Application {
	if dispatcher == nil {
		dispatcher = notify.Discard{}
	}
	return &Application{
		applications: applications,
		jobs:         jobs,
		seekers:      seekers,
		employers:    employers,
		dispatcher:   dispatcher,
		now:          time.Now,
	}
}

// Apply is the only application-creation path. Preconditions, in order: the
// job exists, the job is approved, the actor has a completed seeker profile,
// and no application exists yet for this (job, seeker) pair. The advisory
// existence check keeps the common duplicate friendly; the unique index in
// storage catches the race.
func (u *Application) Apply(ctx context.Context, jobID, seekerUserID uuid.UUID, coverLetter string) (application.Application, error) {
	if seekerUserID == uuid.Nil {
		return application.Application{}, ErrUnauthorized
	}

	posting, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return application.Application{}, ErrJobNotFound
		}
		return application.Application{}, ErrInternal
	}
	if !posting.Approved {
		return application.Application{}, ErrJobNotApproved
	}

	profile, err := u.seekers.GetByUserID(ctx, seekerUserID)
	if err != nil {
		if errors.Is(err, repository.ErrSeekerNotFound) {
			return application.Application{}, ErrProfileIncomplete
		}
		return application.Application{}, ErrInternal
	}
	if !profile.Complete() {
		return application.Application{}, ErrProfileIncomplete
	}

	exists, err := u.applications.ExistsByJobAndSeeker(ctx, jobID, profile.ID)
	if err != nil {
		return application.Application{}, ErrInternal
	}
	if exists {
		return application.Application{}, ErrDuplicateApplication
	}

	app := application.Application{
		ID:          uuid.New(),
		JobID:       jobID,
		SeekerID:    profile.ID,
		CoverLetter: strings.TrimSpace(coverLetter),
		ResumeURL:   profile.ResumeURL,
		Status:      application.StatusApplied,
		AppliedAt:   u.now().UTC(),
	}
	if err := u.applications.Create(ctx, app); err != nil {
		if errors.Is(err, repository.ErrDuplicateApplication) {
			return application.Application{}, ErrDuplicateApplication
		}
		return application.Application{}, ErrInternal
	}

	// New-applicant event to the job's owning employer identity.
	if emp, err := u.employers.GetByID(ctx, posting.EmployerID); err == nil {
		u.dispatcher.Dispatch(ctx, notify.Event{
			Recipient: emp.UserID,
			Message:   "New applicant for " + posting.Title,
			Link:      "/applications/" + posting.ID.String(),
		})
	}

	return app, nil
}

// UpdateStatus applies one transition of the state machine. Only the employer
// owning the job referenced by the application may trigger it; everything
// else is rejected before any state changes.
func (u *Application) UpdateStatus(ctx context.Context, applicationID, employerUserID uuid.UUID, newStatus string) (application.Application, error) {
	if employerUserID == uuid.Nil {
		return application.Application{}, ErrUnauthorized
	}

	next, ok := application.ParseStatus(newStatus)
	if !ok {
		return application.Application{}, ErrInvalidStatus
	}

	app, err := u.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, ErrInternal
	}

	posting, err := u.jobs.GetByID(ctx, app.JobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return application.Application{}, ErrJobNotFound
		}
		return application.Application{}, ErrInternal
	}

	emp, err := u.employers.GetByUserID(ctx, employerUserID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployerNotFound) {
			return application.Application{}, ErrUnauthorized
		}
		return application.Application{}, ErrInternal
	}
	if posting.EmployerID != emp.ID {
		return application.Application{}, ErrUnauthorized
	}

	if !app.Status.CanTransition(next) {
		return application.Application{}, ErrInvalidTransition
	}

	// Conditional on the status we just read: a concurrent transition makes
	// this a conflict instead of a lost update.
	if err := u.applications.UpdateStatus(ctx, app.ID, app.Status, next); err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return application.Application{}, ErrInvalidTransition
		}
		return application.Application{}, ErrInternal
	}
	app.Status = next

	// Status-changed event to the seeker's identity.
	if profile, err := u.seekers.GetByID(ctx, app.SeekerID); err == nil {
		u.dispatcher.Dispatch(ctx, notify.Event{
			Recipient: profile.UserID,
			Message:   "Your application for " + posting.Title + " has been " + string(next) + ".",
			Link:      "/applications",
		})
	}

	return app, nil
}

func (u *Application) ListForJob(ctx context.Context, jobID, employerUserID uuid.UUID) ([]application.Application, error) {
	if employerUserID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	posting, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, ErrInternal
	}
	emp, err := u.employers.GetByUserID(ctx, employerUserID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployerNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, ErrInternal
	}
	if posting.EmployerID != emp.ID {
		return nil, ErrUnauthorized
	}

	out, err := u.applications.ListByJob(ctx, jobID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

// ListForEmployer returns the applications across every posting the actor
// owns. An employer without a profile owns no postings, so the list is empty.
func (u *Application) ListForEmployer(ctx context.Context, employerUserID uuid.UUID) ([]application.Application, error) {
	if employerUserID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	emp, err := u.employers.GetByUserID(ctx, employerUserID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployerNotFound) {
			return []application.Application{}, nil
		}
		return nil, ErrInternal
	}
	out, err := u.applications.ListByEmployer(ctx, emp.ID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Application) ListMine(ctx context.Context, seekerUserID uuid.UUID) ([]application.Application, error) {
	if seekerUserID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	profile, err := u.seekers.GetByUserID(ctx, seekerUserID)
	if err != nil {
		if errors.Is(err, repository.ErrSeekerNotFound) {
			return []application.Application{}, nil
		}
		return nil, ErrInternal
	}
	out, err := u.applications.ListBySeeker(ctx, profile.ID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}
