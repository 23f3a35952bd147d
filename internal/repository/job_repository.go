package repository

import (
	"context"
	"errors"

	"jobboard/internal/database"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(ctx context.Context, j job.Posting) error
	Update(ctx context.Context, j job.Posting) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (job.Posting, error)
	ListApproved(ctx context.Context) ([]job.Posting, error)
	ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]job.Posting, error)
	SetApproved(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	CountPending(ctx context.Context) (int64, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Posting) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, employer_id, title, description, location, salary, job_type, skills_required, approved, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		j.ID, j.EmployerID, j.Title, j.Description, j.Location, j.Salary, string(j.Type), j.SkillsRequired, j.Approved, j.CreatedAt,
	)
	return err
}

func (r *PostgresJobRepository) Update(ctx context.Context, j job.Posting) error {
	n, err := r.db.Exec(ctx,
		`UPDATE jobs SET title = $2, description = $3, location = $4, salary = $5, job_type = $6, skills_required = $7
		 WHERE id = $1`,
		j.ID, j.Title, j.Description, j.Location, j.Salary, string(j.Type), j.SkillsRequired,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	row := r.db.QueryRow(ctx, selectJob+` WHERE id = $1`, id)
	return scanJob(row)
}

func (r *PostgresJobRepository) ListApproved(ctx context.Context) ([]job.Posting, error) {
	return r.list(ctx, selectJob+` WHERE approved ORDER BY created_at DESC`)
}

func (r *PostgresJobRepository) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]job.Posting, error) {
	return r.list(ctx, selectJob+` WHERE employer_id = $1 ORDER BY created_at DESC`, employerID)
}

func (r *PostgresJobRepository) SetApproved(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `UPDATE jobs SET approved = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresJobRepository) CountPending(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE NOT approved`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresJobRepository) list(ctx context.Context, query string, args ...any) ([]job.Posting, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		var j job.Posting
		var jobType string
		if err := rows.Scan(&j.ID, &j.EmployerID, &j.Title, &j.Description, &j.Location,
			&j.Salary, &jobType, &j.SkillsRequired, &j.Approved, &j.CreatedAt); err != nil {
			return nil, err
		}
		j.Type = job.Type(jobType)
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

const selectJob = `SELECT id, employer_id, COALESCE(title, ''), COALESCE(description, ''),
	COALESCE(location, ''), COALESCE(salary, ''), COALESCE(job_type, 'full-time'),
	skills_required, approved, created_at
	FROM jobs`

func scanJob(row database.Row) (job.Posting, error) {
	var j job.Posting
	var jobType string
	err := row.Scan(&j.ID, &j.EmployerID, &j.Title, &j.Description, &j.Location,
		&j.Salary, &jobType, &j.SkillsRequired, &j.Approved, &j.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Posting{}, ErrJobNotFound
		}
		return job.Posting{}, err
	}
	j.Type = job.Type(jobType)
	return j, nil
}
