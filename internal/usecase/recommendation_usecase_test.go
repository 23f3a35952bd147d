package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"jobboard/internal/domain/employer"
	"jobboard/internal/domain/job"
	"jobboard/internal/domain/seeker"

	"github.com/google/uuid"
)

func TestJobsForSeeker_NoSkillsReturnsEmpty(t *testing.T) {
	userID := uuid.New()
	seekers := &mockSeekerRepo{profiles: []seeker.Profile{{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       "Sam",
		Experience: "ten years of rich, detailed backend experience with go and postgres",
	}}}
	jobs := &mockJobRepo{jobs: []job.Posting{{ID: uuid.New(), Approved: true, Title: "Backend"}}}

	uc := NewRecommendationUsecase(seekers, jobs, &mockEmployerRepo{}, nil, nil)
	out, err := uc.JobsForSeeker(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty list for skill-less profile, got %d", len(out))
	}
}

func TestJobsForSeeker_DegradesToEmptyOnFailure(t *testing.T) {
	seekers := &mockSeekerRepo{err: errors.New("db down")}
	uc := NewRecommendationUsecase(seekers, &mockJobRepo{}, &mockEmployerRepo{}, nil, nil)

	out, err := uc.JobsForSeeker(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("seeker-facing path must not surface errors, got %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty list, got %d", len(out))
	}
}

func TestJobsForSeeker_NeverReturnsUnapproved(t *testing.T) {
	userID := uuid.New()
	seekers := &mockSeekerRepo{profiles: []seeker.Profile{{
		ID:     uuid.New(),
		UserID: userID,
		Name:   "Sam",
		Skills: []string{"react", "node"},
	}}}
	unapproved := job.Posting{ID: uuid.New(), Title: "Hidden", SkillsRequired: []string{"react", "node"}}
	approved := job.Posting{ID: uuid.New(), Title: "Visible", SkillsRequired: []string{"react"}, Approved: true}
	jobs := &mockJobRepo{jobs: []job.Posting{unapproved, approved}}

	uc := NewRecommendationUsecase(seekers, jobs, &mockEmployerRepo{}, nil, nil)
	out, err := uc.JobsForSeeker(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, j := range out {
		if j.ID == unapproved.ID {
			t.Fatalf("unapproved job leaked into recommendations")
		}
	}
	if len(out) != 1 || out[0].ID != approved.ID {
		t.Fatalf("expected only the approved job, got %v", out)
	}
}

func TestJobsForSeeker_RanksStrongerOverlapFirst(t *testing.T) {
	userID := uuid.New()
	seekers := &mockSeekerRepo{profiles: []seeker.Profile{{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       "Sam",
		Skills:     []string{"react", "node"},
		Experience: "building node services and react frontends",
	}}}
	weaker := job.Posting{
		ID:             uuid.New(),
		Title:          "Cloud Engineer",
		SkillsRequired: []string{"react", "aws"},
		Description:    "short description",
		Approved:       true,
	}
	stronger := job.Posting{
		ID:             uuid.New(),
		Title:          "Fullstack Engineer",
		SkillsRequired: []string{"react", "node", "mongodb"},
		Description:    "long description about building node services and react frontends at scale",
		Approved:       true,
	}
	jobs := &mockJobRepo{jobs: []job.Posting{weaker, stronger}}

	uc := NewRecommendationUsecase(seekers, jobs, &mockEmployerRepo{}, nil, nil)
	out, err := uc.JobsForSeeker(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(out))
	}
	if out[0].ID != stronger.ID {
		t.Fatalf("expected the job with skill and description overlap to rank first")
	}
}

func TestJobsForSeeker_CapsAtTen(t *testing.T) {
	userID := uuid.New()
	seekers := &mockSeekerRepo{profiles: []seeker.Profile{{
		ID:     uuid.New(),
		UserID: userID,
		Name:   "Sam",
		Skills: []string{"go"},
	}}}
	jobs := &mockJobRepo{}
	for i := 0; i < 15; i++ {
		jobs.jobs = append(jobs.jobs, job.Posting{
			ID:             uuid.New(),
			Title:          fmt.Sprintf("Job %d", i),
			SkillsRequired: []string{"go"},
			Approved:       true,
		})
	}

	uc := NewRecommendationUsecase(seekers, jobs, &mockEmployerRepo{}, nil, nil)
	out, err := uc.JobsForSeeker(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 10 {
		t.Fatalf("expected 10 recommendations, got %d", len(out))
	}
}

func TestCandidatesForJob_JobNotFound(t *testing.T) {
	empUserID := uuid.New()
	employers := &mockEmployerRepo{profiles: []employer.Profile{{ID: uuid.New(), UserID: empUserID}}}
	uc := NewRecommendationUsecase(&mockSeekerRepo{}, &mockJobRepo{}, employers, nil, nil)

	_, err := uc.CandidatesForJob(context.Background(), empUserID, uuid.New())
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestCandidatesForJob_OwnershipEnforced(t *testing.T) {
	owner := employer.Profile{ID: uuid.New(), UserID: uuid.New()}
	other := employer.Profile{ID: uuid.New(), UserID: uuid.New()}
	posting := job.Posting{ID: uuid.New(), EmployerID: owner.ID, Title: "Backend"}

	uc := NewRecommendationUsecase(
		&mockSeekerRepo{},
		&mockJobRepo{jobs: []job.Posting{posting}},
		&mockEmployerRepo{profiles: []employer.Profile{owner, other}},
		nil, nil,
	)

	_, err := uc.CandidatesForJob(context.Background(), other.UserID, posting.ID)
	if !errors.Is(err, ErrNotJobOwner) {
		t.Fatalf("expected ErrNotJobOwner, got %v", err)
	}
}

func TestCandidatesForJob_SurfacesLookupFailure(t *testing.T) {
	owner := employer.Profile{ID: uuid.New(), UserID: uuid.New()}
	posting := job.Posting{ID: uuid.New(), EmployerID: owner.ID}

	uc := NewRecommendationUsecase(
		&mockSeekerRepo{err: errors.New("db down")},
		&mockJobRepo{jobs: []job.Posting{posting}},
		&mockEmployerRepo{profiles: []employer.Profile{owner}},
		nil, nil,
	)

	// Employer-facing path reports failures instead of degrading.
	if _, err := uc.CandidatesForJob(context.Background(), owner.UserID, posting.ID); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestCandidatesForJob_RanksWholePopulation(t *testing.T) {
	owner := employer.Profile{ID: uuid.New(), UserID: uuid.New()}
	posting := job.Posting{
		ID:             uuid.New(),
		EmployerID:     owner.ID,
		SkillsRequired: []string{"go", "postgres"},
		Description:    "backend services in go",
	}
	match := seeker.Profile{ID: uuid.New(), UserID: uuid.New(), Name: "A", Skills: []string{"go", "postgres"}}
	miss := seeker.Profile{ID: uuid.New(), UserID: uuid.New(), Name: "B", Skills: []string{"photoshop"}}

	uc := NewRecommendationUsecase(
		&mockSeekerRepo{profiles: []seeker.Profile{miss, match}},
		&mockJobRepo{jobs: []job.Posting{posting}},
		&mockEmployerRepo{profiles: []employer.Profile{owner}},
		nil, nil,
	)

	out, err := uc.CandidatesForJob(context.Background(), owner.UserID, posting.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(out))
	}
	if out[0].ID != match.ID {
		t.Fatalf("expected the matching seeker to rank first")
	}
}
