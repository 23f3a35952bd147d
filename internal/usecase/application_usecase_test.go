package usecase

import (
	"context"
	"errors"
	"testing"

	"jobboard/internal/domain/application"
	"jobboard/internal/domain/employer"
	"jobboard/internal/domain/job"
	"jobboard/internal/domain/seeker"

	"github.com/google/uuid"
)

type applyFixture struct {
	seekers      *mockSeekerRepo
	jobs         *mockJobRepo
	employers    *mockEmployerRepo
	applications *mockApplicationRepo
	dispatcher   *recordingDispatcher
	uc           *Application

	seekerUserID   uuid.UUID
	employerUserID uuid.UUID
	jobID          uuid.UUID
}

func newApplyFixture(approved bool) *applyFixture {
	f := &applyFixture{
		seekerUserID:   uuid.New(),
		employerUserID: uuid.New(),
		jobID:          uuid.New(),
	}
	emp := employer.Profile{ID: uuid.New(), UserID: f.employerUserID, CompanyName: "Acme"}
	f.employers = &mockEmployerRepo{profiles: []employer.Profile{emp}}
	f.seekers = &mockSeekerRepo{profiles: []seeker.Profile{{
		ID:        uuid.New(),
		UserID:    f.seekerUserID,
		Name:      "Sam",
		Skills:    []string{"go"},
		ResumeURL: "https://cdn.example/resume.pdf",
	}}}
	f.jobs = &mockJobRepo{jobs: []job.Posting{{
		ID:         f.jobID,
		EmployerID: emp.ID,
		Title:      "Backend Engineer",
		Approved:   approved,
	}}}
	f.applications = &mockApplicationRepo{jobs: f.jobs}
	f.dispatcher = &recordingDispatcher{}
	f.uc = NewApplicationUsecase(f.applications, f.jobs, f.seekers, f.employers, f.dispatcher)
	return f
}

func TestApply_Success_NotifiesEmployerOnce(t *testing.T) {
	f := newApplyFixture(true)

	app, err := f.uc.Apply(context.Background(), f.jobID, f.seekerUserID, "hello")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if app.Status != application.StatusApplied {
		t.Fatalf("expected initial status applied, got %s", app.Status)
	}
	if app.ResumeURL != "https://cdn.example/resume.pdf" {
		t.Fatalf("expected resume snapshot from profile, got %q", app.ResumeURL)
	}

	sent := f.dispatcher.sentTo(f.employerUserID)
	if len(sent) != 1 {
		t.Fatalf("expected exactly one notification to the employer, got %d", len(sent))
	}
	if sent[0].Message != "New applicant for Backend Engineer" {
		t.Fatalf("unexpected message %q", sent[0].Message)
	}
	if sent[0].Link != "/applications/"+f.jobID.String() {
		t.Fatalf("unexpected link %q", sent[0].Link)
	}
}

func TestApply_DuplicateIsConflict(t *testing.T) {
	f := newApplyFixture(true)

	if _, err := f.uc.Apply(context.Background(), f.jobID, f.seekerUserID, ""); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	_, err := f.uc.Apply(context.Background(), f.jobID, f.seekerUserID, "")
	if !errors.Is(err, ErrDuplicateApplication) {
		t.Fatalf("expected ErrDuplicateApplication, got %v", err)
	}
	if len(f.applications.apps) != 1 {
		t.Fatalf("expected a single stored application, got %d", len(f.applications.apps))
	}
}

func TestApply_UnapprovedJobRejected(t *testing.T) {
	f := newApplyFixture(false)

	_, err := f.uc.Apply(context.Background(), f.jobID, f.seekerUserID, "")
	if !errors.Is(err, ErrJobNotApproved) {
		t.Fatalf("expected ErrJobNotApproved, got %v", err)
	}
	if len(f.dispatcher.events) != 0 {
		t.Fatalf("no notification may be sent for a failed creation")
	}
}

func TestApply_JobNotFound(t *testing.T) {
	f := newApplyFixture(true)

	_, err := f.uc.Apply(context.Background(), uuid.New(), f.seekerUserID, "")
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestApply_IncompleteProfileRejected(t *testing.T) {
	f := newApplyFixture(true)

	// No profile at all.
	_, err := f.uc.Apply(context.Background(), f.jobID, uuid.New(), "")
	if !errors.Is(err, ErrProfileIncomplete) {
		t.Fatalf("expected ErrProfileIncomplete for missing profile, got %v", err)
	}

	// A profile missing skills is incomplete too.
	bare := uuid.New()
	f.seekers.profiles = append(f.seekers.profiles, seeker.Profile{
		ID:     uuid.New(),
		UserID: bare,
		Name:   "Blank",
	})
	_, err = f.uc.Apply(context.Background(), f.jobID, bare, "")
	if !errors.Is(err, ErrProfileIncomplete) {
		t.Fatalf("expected ErrProfileIncomplete for skill-less profile, got %v", err)
	}
}

func TestApproveThenApply_SingleEmployerNotification(t *testing.T) {
	f := newApplyFixture(false)

	admin := NewAdminUsecase(f.jobs, &mockUserRepo{}, f.employers, f.dispatcher, nil, nil)
	if err := admin.ApproveJob(context.Background(), f.jobID); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	// Reset the recorder so only the apply step is measured.
	f.dispatcher.events = nil

	if _, err := f.uc.Apply(context.Background(), f.jobID, f.seekerUserID, ""); err != nil {
		t.Fatalf("apply after approval failed: %v", err)
	}
	if sent := f.dispatcher.sentTo(f.employerUserID); len(sent) != 1 {
		t.Fatalf("expected exactly one employer notification, got %d", len(sent))
	}
}

func TestUpdateStatus_HappyPathNotifiesSeeker(t *testing.T) {
	f := newApplyFixture(true)
	app, err := f.uc.Apply(context.Background(), f.jobID, f.seekerUserID, "")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	f.dispatcher.events = nil

	updated, err := f.uc.UpdateStatus(context.Background(), app.ID, f.employerUserID, "shortlisted")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Status != application.StatusShortlisted {
		t.Fatalf("expected shortlisted, got %s", updated.Status)
	}

	sent := f.dispatcher.sentTo(f.seekerUserID)
	if len(sent) != 1 {
		t.Fatalf("expected one notification to the seeker, got %d", len(sent))
	}
	if sent[0].Message != "Your application for Backend Engineer has been shortlisted." {
		t.Fatalf("unexpected message %q", sent[0].Message)
	}
}

func TestUpdateStatus_SkippingStagesRejected(t *testing.T) {
	f := newApplyFixture(true)
	app, err := f.uc.Apply(context.Background(), f.jobID, f.seekerUserID, "")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	_, err = f.uc.UpdateStatus(context.Background(), app.ID, f.employerUserID, "hired")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for applied -> hired, got %v", err)
	}
	if f.applications.apps[0].Status != application.StatusApplied {
		t.Fatalf("status must be unchanged after a rejected transition")
	}
}

func TestUpdateStatus_TerminalStateRejected(t *testing.T) {
	f := newApplyFixture(true)
	app, err := f.uc.Apply(context.Background(), f.jobID, f.seekerUserID, "")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if _, err := f.uc.UpdateStatus(context.Background(), app.ID, f.employerUserID, "rejected"); err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	_, err = f.uc.UpdateStatus(context.Background(), app.ID, f.employerUserID, "shortlisted")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition out of terminal state, got %v", err)
	}
}

func TestUpdateStatus_InvalidStatusValue(t *testing.T) {
	f := newApplyFixture(true)
	app, err := f.uc.Apply(context.Background(), f.jobID, f.seekerUserID, "")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	_, err = f.uc.UpdateStatus(context.Background(), app.ID, f.employerUserID, "pending")
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateStatus_OtherEmployerUnauthorized(t *testing.T) {
	f := newApplyFixture(true)
	app, err := f.uc.Apply(context.Background(), f.jobID, f.seekerUserID, "")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	f.dispatcher.events = nil

	intruder := employer.Profile{ID: uuid.New(), UserID: uuid.New(), CompanyName: "Other"}
	f.employers.profiles = append(f.employers.profiles, intruder)

	_, err = f.uc.UpdateStatus(context.Background(), app.ID, intruder.UserID, "shortlisted")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if f.applications.apps[0].Status != application.StatusApplied {
		t.Fatalf("status must be unchanged after an unauthorized attempt")
	}
	if len(f.dispatcher.events) != 0 {
		t.Fatalf("no notification may be sent for a rejected transition")
	}
}

func TestListForEmployer_SpansAllOwnedJobs(t *testing.T) {
	f := newApplyFixture(true)

	// Second approved posting for the same employer.
	second := job.Posting{
		ID:         uuid.New(),
		EmployerID: f.jobs.jobs[0].EmployerID,
		Title:      "Data Engineer",
		Approved:   true,
	}
	f.jobs.jobs = append(f.jobs.jobs, second)

	otherSeeker := uuid.New()
	f.seekers.profiles = append(f.seekers.profiles, seeker.Profile{
		ID:     uuid.New(),
		UserID: otherSeeker,
		Name:   "Kim",
		Skills: []string{"sql"},
	})

	if _, err := f.uc.Apply(context.Background(), f.jobID, f.seekerUserID, ""); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if _, err := f.uc.Apply(context.Background(), second.ID, otherSeeker, ""); err != nil {
		t.Fatalf("second apply failed: %v", err)
	}

	apps, err := f.uc.ListForEmployer(context.Background(), f.employerUserID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(apps) != 2 {
		t.Fatalf("expected applications from both postings, got %d", len(apps))
	}
}

func TestListForEmployer_ExcludesOtherEmployers(t *testing.T) {
	f := newApplyFixture(true)
	if _, err := f.uc.Apply(context.Background(), f.jobID, f.seekerUserID, ""); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	intruder := employer.Profile{ID: uuid.New(), UserID: uuid.New(), CompanyName: "Other"}
	f.employers.profiles = append(f.employers.profiles, intruder)

	apps, err := f.uc.ListForEmployer(context.Background(), intruder.UserID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(apps) != 0 {
		t.Fatalf("another employer must not see these applications, got %d", len(apps))
	}
}

func TestListForEmployer_NoProfileIsEmpty(t *testing.T) {
	f := newApplyFixture(true)

	apps, err := f.uc.ListForEmployer(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(apps) != 0 {
		t.Fatalf("expected an empty list, got %d", len(apps))
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	f := newApplyFixture(true)

	_, err := f.uc.UpdateStatus(context.Background(), uuid.New(), f.employerUserID, "shortlisted")
	if !errors.Is(err, ErrApplicationNotFound) {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
}
