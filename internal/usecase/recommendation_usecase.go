package usecase

import (
	"context"
	"errors"
	"log"

	"jobboard/internal/domain/corpus"
	"jobboard/internal/domain/job"
	"jobboard/internal/domain/seeker"
	"jobboard/internal/domain/similarity"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

// maxRecommendations caps both recommendation lists.
const maxRecommendations = 10

// RecommendationCache is the slice of the redis cache the recommendation
// path uses. A nil cache disables caching entirely.
type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
}

type RecommendationUsecase interface {
	JobsForSeeker(ctx context.Context, seekerUserID uuid.UUID) ([]job.Posting, error)
	CandidatesForJob(ctx context.Context, employerUserID, jobID uuid.UUID) ([]seeker.Profile, error)
}

type Recommendation struct {
	seekers   repository.SeekerRepository
	jobs      repository.JobRepository
	employers repository.EmployerRepository
	cache     RecommendationCache
	logger    *log.Logger
}

func NewRecommendationUsecase(
	seekers repository.SeekerRepository,
	jobs repository.JobRepository,
	employers repository.EmployerRepository,
	cache RecommendationCache,
	logger *log.Logger,
) *Recommendation {
	if logger == nil {
		logger = log.Default()
	}
	return &Recommendation{seekers: seekers, jobs: jobs, employers: employers, cache: cache, logger: logger}
}

// JobsForSeeker ranks approved postings against the seeker's profile text and
// returns the top matches. This feeds a dashboard widget, so it never fails:
// a seeker without skills gets an empty list (description-only profiles
// produce noise, not signal), and any lookup or scoring failure degrades to
// an empty list as well.
func (u *Recommendation) JobsForSeeker(ctx context.Context, seekerUserID uuid.UUID) ([]job.Posting, error) {
	if seekerUserID == uuid.Nil {
		return []job.Posting{}, nil
	}

	cacheKey := "recs:jobs:" + seekerUserID.String()
	if u.cache != nil {
		var cached []job.Posting
		if hit, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	profile, err := u.seekers.GetByUserID(ctx, seekerUserID)
	if err != nil {
		u.logger.Printf("Recommend jobs degraded | user=%s err=%v", seekerUserID, err)
		return []job.Posting{}, nil
	}
	if len(profile.Skills) == 0 {
		return []job.Posting{}, nil
	}

	jobs, err := u.jobs.ListApproved(ctx)
	if err != nil {
		u.logger.Printf("Recommend jobs degraded | user=%s err=%v", seekerUserID, err)
		return []job.Posting{}, nil
	}

	query := corpus.FromSeeker(profile)
	docs := make([]corpus.Document, len(jobs))
	for i, j := range jobs {
		docs[i] = corpus.FromJob(j)
	}

	out := make([]job.Posting, 0, maxRecommendations)
	for _, r := range similarity.Rank(query, docs) {
		if len(out) == maxRecommendations {
			break
		}
		out = append(out, jobs[r.Index])
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, out); err != nil {
			u.logger.Printf("Recommend jobs cache write failed | user=%s err=%v", seekerUserID, err)
		}
	}
	return out, nil
}

// CandidatesForJob ranks the whole seeker population against one of the
// employer's postings. Unlike the seeker path this is allowed to fail loudly:
// the caller is an employer tool, not a public dashboard.
func (u *Recommendation) CandidatesForJob(ctx context.Context, employerUserID, jobID uuid.UUID) ([]seeker.Profile, error) {
	if employerUserID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if jobID == uuid.Nil {
		return nil, ErrJobNotFound
	}

	emp, err := u.employers.GetByUserID(ctx, employerUserID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployerNotFound) {
			return nil, ErrEmployerProfileNotFound
		}
		return nil, ErrInternal
	}

	posting, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, ErrInternal
	}
	if posting.EmployerID != emp.ID {
		return nil, ErrNotJobOwner
	}

	// No approval filter: employers match against the full population.
	seekers, err := u.seekers.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	query := corpus.FromJob(posting)
	docs := make([]corpus.Document, len(seekers))
	for i, p := range seekers {
		docs[i] = corpus.FromSeeker(p)
	}

	out := make([]seeker.Profile, 0, maxRecommendations)
	for _, r := range similarity.Rank(query, docs) {
		if len(out) == maxRecommendations {
			break
		}
		out = append(out, seekers[r.Index])
	}
	return out, nil
}
