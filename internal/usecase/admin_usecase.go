package usecase

import (
	"context"
	"errors"
	"log"

	"jobboard/internal/notify"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

var ErrTargetUserNotFound = errors.New("target user not found")

type PlatformStats struct {
	Users       int64
	Jobs        int64
	PendingJobs int64
}

type AdminUsecase interface {
	ApproveJob(ctx context.Context, jobID uuid.UUID) error
	BlockUser(ctx context.Context, userID uuid.UUID) error
	Stats(ctx context.Context) (PlatformStats, error)
}

// invalidator is the cache slice the admin path needs: approving a job
// changes the public corpus, so cached recommendation lists go stale.
type invalidator interface {
	DeleteByPattern(ctx context.Context, pattern string) error
}

type Admin struct {
	jobs       repository.JobRepository
	users      repository.UserRepository
	employers  repository.EmployerRepository
	dispatcher notify.Dispatcher
	cache      invalidator
	logger     *log.Logger
}

func NewAdminUsecase(
	jobs repository.JobRepository,
	users repository.UserRepository,
	employers repository.EmployerRepository,
	dispatcher notify.Dispatcher,
	cache invalidator,
	logger *log.Logger,
) *Admin {
	if dispatcher == nil {
		dispatcher = notify.Discard{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Admin{jobs: jobs, users: users, employers: employers, dispatcher: dispatcher, cache: cache, logger: logger}
}

// ApproveJob flips the approval flag and tells the owning employer. The
// posting enters public search and recommendations from here on.
func (u *Admin) ApproveJob(ctx context.Context, jobID uuid.UUID) error {
	posting, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ErrJobNotFound
		}
		return ErrInternal
	}

	if err := u.jobs.SetApproved(ctx, jobID); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ErrJobNotFound
		}
		return ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, "recs:jobs:*"); err != nil {
			u.logger.Printf("Recommendation cache invalidation failed | job=%s err=%v", jobID, err)
		}
	}

	if emp, err := u.employers.GetByID(ctx, posting.EmployerID); err == nil {
		u.dispatcher.Dispatch(ctx, notify.Event{
			Recipient: emp.UserID,
			Message:   `Your job "` + posting.Title + `" has been approved.`,
			Link:      "/my-jobs",
		})
	}
	return nil
}

func (u *Admin) BlockUser(ctx context.Context, userID uuid.UUID) error {
	if err := u.users.SetBlocked(ctx, userID, true); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrTargetUserNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Admin) Stats(ctx context.Context) (PlatformStats, error) {
	users, err := u.users.Count(ctx)
	if err != nil {
		return PlatformStats{}, ErrInternal
	}
	jobs, err := u.jobs.Count(ctx)
	if err != nil {
		return PlatformStats{}, ErrInternal
	}
	pending, err := u.jobs.CountPending(ctx)
	if err != nil {
		return PlatformStats{}, ErrInternal
	}
	return PlatformStats{Users: users, Jobs: jobs, PendingJobs: pending}, nil
}
