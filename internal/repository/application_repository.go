package repository

import (
	"context"
	"errors"

	"jobboard/internal/database"
	"jobboard/internal/domain/application"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this job and seeker")
	ErrStaleStatus          = errors.New("application status changed concurrently")
)

type ApplicationRepository interface {
	Create(ctx context.Context, a application.Application) error
	GetByID(ctx context.Context, id uuid.UUID) (application.Application, error)
	ExistsByJobAndSeeker(ctx context.Context, jobID, seekerID uuid.UUID) (bool, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error)
	ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]application.Application, error)
	ListBySeeker(ctx context.Context, seekerID uuid.UUID) ([]application.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to application.Status) error
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, job_id, seeker_id, cover_letter, resume_url, status, applied_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.JobID, a.SeekerID, a.CoverLetter, a.ResumeURL, string(a.Status), a.AppliedAt,
	)
	// The UNIQUE (job_id, seeker_id) index catches the race the advisory
	// read-then-write check cannot.
	if isUniqueViolation(err) {
		return ErrDuplicateApplication
	}
	return err
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx, selectApplication+` WHERE id = $1`, id)
	return scanApplication(row)
}

func (r *PostgresApplicationRepository) ExistsByJobAndSeeker(ctx context.Context, jobID, seekerID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND seeker_id = $2)`, jobID, seekerID)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error) {
	return r.list(ctx, selectApplication+` WHERE job_id = $1 ORDER BY applied_at DESC`, jobID)
}

// ListByEmployer returns the applications across every posting the employer
// owns, newest first.
func (r *PostgresApplicationRepository) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]application.Application, error) {
	return r.list(ctx,
		`SELECT a.id, a.job_id, a.seeker_id, COALESCE(a.cover_letter, ''),
		COALESCE(a.resume_url, ''), a.status, a.applied_at
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE j.employer_id = $1
		ORDER BY a.applied_at DESC`, employerID)
}

func (r *PostgresApplicationRepository) ListBySeeker(ctx context.Context, seekerID uuid.UUID) ([]application.Application, error) {
	return r.list(ctx, selectApplication+` WHERE seeker_id = $1 ORDER BY applied_at DESC`, seekerID)
}

// UpdateStatus moves an application from one status to another. The update is
// conditional on the expected current status, so a concurrent transition
// surfaces as ErrStaleStatus instead of silently overwriting.
func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to application.Status) error {
	n, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $3 WHERE id = $1 AND status = $2`,
		id, string(from), string(to),
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrStaleStatus
	}
	return nil
}

func (r *PostgresApplicationRepository) list(ctx context.Context, query string, args ...any) ([]application.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		var a application.Application
		var status string
		if err := rows.Scan(&a.ID, &a.JobID, &a.SeekerID, &a.CoverLetter, &a.ResumeURL, &status, &a.AppliedAt); err != nil {
			return nil, err
		}
		a.Status = application.Status(status)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

const selectApplication = `SELECT id, job_id, seeker_id, COALESCE(cover_letter, ''),
	COALESCE(resume_url, ''), status, applied_at
	FROM applications`

func scanApplication(row database.Row) (application.Application, error) {
	var a application.Application
	var status string
	err := row.Scan(&a.ID, &a.JobID, &a.SeekerID, &a.CoverLetter, &a.ResumeURL, &status, &a.AppliedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, err
	}
	a.Status = application.Status(status)
	return a, nil
}
