package usecase

import (
	"context"

	"jobboard/internal/domain/application"
	"jobboard/internal/domain/employer"
	"jobboard/internal/domain/job"
	"jobboard/internal/domain/seeker"
	"jobboard/internal/domain/user"
	"jobboard/internal/notify"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

type mockSeekerRepo struct {
	profiles []seeker.Profile
	err      error
}

func (m *mockSeekerRepo) Upsert(_ context.Context, p seeker.Profile) (seeker.Profile, error) {
	if m.err != nil {
		return seeker.Profile{}, m.err
	}
	for i := range m.profiles {
		if m.profiles[i].UserID == p.UserID {
			p.ID = m.profiles[i].ID
			m.profiles[i] = p
			return p, nil
		}
	}
	m.profiles = append(m.profiles, p)
	return p, nil
}

func (m *mockSeekerRepo) GetByID(_ context.Context, id uuid.UUID) (seeker.Profile, error) {
	if m.err != nil {
		return seeker.Profile{}, m.err
	}
	for _, p := range m.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return seeker.Profile{}, repository.ErrSeekerNotFound
}

func (m *mockSeekerRepo) GetByUserID(_ context.Context, userID uuid.UUID) (seeker.Profile, error) {
	if m.err != nil {
		return seeker.Profile{}, m.err
	}
	for _, p := range m.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return seeker.Profile{}, repository.ErrSeekerNotFound
}

func (m *mockSeekerRepo) ListAll(context.Context) ([]seeker.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.profiles, nil
}

type mockJobRepo struct {
	jobs []job.Posting
	err  error
}

func (m *mockJobRepo) Create(_ context.Context, j job.Posting) error {
	if m.err != nil {
		return m.err
	}
	m.jobs = append(m.jobs, j)
	return nil
}

func (m *mockJobRepo) Update(_ context.Context, j job.Posting) error {
	for i := range m.jobs {
		if m.jobs[i].ID == j.ID {
			m.jobs[i] = j
			return nil
		}
	}
	return repository.ErrJobNotFound
}

func (m *mockJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range m.jobs {
		if m.jobs[i].ID == id {
			m.jobs = append(m.jobs[:i], m.jobs[i+1:]...)
			return nil
		}
	}
	return repository.ErrJobNotFound
}

func (m *mockJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Posting, error) {
	if m.err != nil {
		return job.Posting{}, m.err
	}
	for _, j := range m.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return job.Posting{}, repository.ErrJobNotFound
}

func (m *mockJobRepo) ListApproved(context.Context) ([]job.Posting, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]job.Posting, 0)
	for _, j := range m.jobs {
		if j.Approved {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *mockJobRepo) ListByEmployer(_ context.Context, employerID uuid.UUID) ([]job.Posting, error) {
	out := make([]job.Posting, 0)
	for _, j := range m.jobs {
		if j.EmployerID == employerID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *mockJobRepo) SetApproved(_ context.Context, id uuid.UUID) error {
	for i := range m.jobs {
		if m.jobs[i].ID == id {
			m.jobs[i].Approved = true
			return nil
		}
	}
	return repository.ErrJobNotFound
}

func (m *mockJobRepo) Count(context.Context) (int64, error) {
	return int64(len(m.jobs)), nil
}

func (m *mockJobRepo) CountPending(context.Context) (int64, error) {
	var n int64
	for _, j := range m.jobs {
		if !j.Approved {
			n++
		}
	}
	return n, nil
}

type mockEmployerRepo struct {
	profiles []employer.Profile
	err      error
}

func (m *mockEmployerRepo) Upsert(_ context.Context, p employer.Profile) (employer.Profile, error) {
	if m.err != nil {
		return employer.Profile{}, m.err
	}
	for i := range m.profiles {
		if m.profiles[i].UserID == p.UserID {
			p.ID = m.profiles[i].ID
			m.profiles[i] = p
			return p, nil
		}
	}
	m.profiles = append(m.profiles, p)
	return p, nil
}

func (m *mockEmployerRepo) GetByID(_ context.Context, id uuid.UUID) (employer.Profile, error) {
	if m.err != nil {
		return employer.Profile{}, m.err
	}
	for _, p := range m.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return employer.Profile{}, repository.ErrEmployerNotFound
}

func (m *mockEmployerRepo) GetByUserID(_ context.Context, userID uuid.UUID) (employer.Profile, error) {
	if m.err != nil {
		return employer.Profile{}, m.err
	}
	for _, p := range m.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return employer.Profile{}, repository.ErrEmployerNotFound
}

type mockApplicationRepo struct {
	apps []application.Application
	jobs *mockJobRepo
	err  error
}

func (m *mockApplicationRepo) Create(_ context.Context, a application.Application) error {
	if m.err != nil {
		return m.err
	}
	for _, existing := range m.apps {
		if existing.JobID == a.JobID && existing.SeekerID == a.SeekerID {
			return repository.ErrDuplicateApplication
		}
	}
	m.apps = append(m.apps, a)
	return nil
}

func (m *mockApplicationRepo) GetByID(_ context.Context, id uuid.UUID) (application.Application, error) {
	if m.err != nil {
		return application.Application{}, m.err
	}
	for _, a := range m.apps {
		if a.ID == id {
			return a, nil
		}
	}
	return application.Application{}, repository.ErrApplicationNotFound
}

func (m *mockApplicationRepo) ExistsByJobAndSeeker(_ context.Context, jobID, seekerID uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, a := range m.apps {
		if a.JobID == jobID && a.SeekerID == seekerID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockApplicationRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]application.Application, error) {
	out := make([]application.Application, 0)
	for _, a := range m.apps {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockApplicationRepo) ListByEmployer(_ context.Context, employerID uuid.UUID) ([]application.Application, error) {
	out := make([]application.Application, 0)
	if m.err != nil {
		return nil, m.err
	}
	if m.jobs == nil {
		return out, nil
	}
	for _, a := range m.apps {
		for _, j := range m.jobs.jobs {
			if j.ID == a.JobID && j.EmployerID == employerID {
				out = append(out, a)
			}
		}
	}
	return out, nil
}

func (m *mockApplicationRepo) ListBySeeker(_ context.Context, seekerID uuid.UUID) ([]application.Application, error) {
	out := make([]application.Application, 0)
	for _, a := range m.apps {
		if a.SeekerID == seekerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockApplicationRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to application.Status) error {
	for i := range m.apps {
		if m.apps[i].ID == id && m.apps[i].Status == from {
			m.apps[i].Status = to
			return nil
		}
	}
	return repository.ErrStaleStatus
}

type mockUserRepo struct {
	users []user.User
	err   error
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	if m.err != nil {
		return m.err
	}
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return repository.ErrEmailTaken
		}
	}
	m.users = append(m.users, u)
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, repository.ErrUserNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, repository.ErrUserNotFound
}

func (m *mockUserRepo) SetBlocked(_ context.Context, id uuid.UUID, blocked bool) error {
	for i := range m.users {
		if m.users[i].ID == id {
			m.users[i].Blocked = blocked
			return nil
		}
	}
	return repository.ErrUserNotFound
}

func (m *mockUserRepo) Count(context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

// recordingDispatcher captures dispatched events for assertions.
type recordingDispatcher struct {
	events []notify.Event
}

func (d *recordingDispatcher) Dispatch(_ context.Context, evt notify.Event) {
	d.events = append(d.events, evt)
}

func (d *recordingDispatcher) sentTo(recipient uuid.UUID) []notify.Event {
	out := make([]notify.Event, 0)
	for _, e := range d.events {
		if e.Recipient == recipient {
			out = append(out, e)
		}
	}
	return out
}
