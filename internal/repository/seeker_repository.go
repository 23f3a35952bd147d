package repository

import (
	"context"
	"errors"

	"jobboard/internal/database"
	"jobboard/internal/domain/seeker"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrSeekerNotFound = errors.New("seeker profile not found")

type SeekerRepository interface {
	Upsert(ctx context.Context, p seeker.Profile) (seeker.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (seeker.Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (seeker.Profile, error)
	ListAll(ctx context.Context) ([]seeker.Profile, error)
}

type PostgresSeekerRepository struct {
	db database.DB
}

func NewPostgresSeekerRepository(db database.DB) *PostgresSeekerRepository {
	return &PostgresSeekerRepository{db: db}
}

func (r *PostgresSeekerRepository) Upsert(ctx context.Context, p seeker.Profile) (seeker.Profile, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO seeker_profiles (id, user_id, name, skills, experience, education, resume_url, saved_jobs)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			skills = EXCLUDED.skills,
			experience = EXCLUDED.experience,
			education = EXCLUDED.education,
			resume_url = EXCLUDED.resume_url,
			saved_jobs = EXCLUDED.saved_jobs
		 RETURNING id`,
		p.ID, p.UserID, p.Name, p.Skills, p.Experience, p.Education, p.ResumeURL, p.SavedJobs,
	)
	if err := row.Scan(&p.ID); err != nil {
		return seeker.Profile{}, err
	}
	return p, nil
}

func (r *PostgresSeekerRepository) GetByID(ctx context.Context, id uuid.UUID) (seeker.Profile, error) {
	row := r.db.QueryRow(ctx, selectSeeker+` WHERE id = $1`, id)
	return scanSeeker(row)
}

func (r *PostgresSeekerRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (seeker.Profile, error) {
	row := r.db.QueryRow(ctx, selectSeeker+` WHERE user_id = $1`, userID)
	return scanSeeker(row)
}

func (r *PostgresSeekerRepository) ListAll(ctx context.Context) ([]seeker.Profile, error) {
	rows, err := r.db.Query(ctx, selectSeeker+` ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]seeker.Profile, 0)
	for rows.Next() {
		p, err := scanSeekerRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

const selectSeeker = `SELECT id, user_id, COALESCE(name, ''), skills,
	COALESCE(experience, ''), COALESCE(education, ''), COALESCE(resume_url, ''), saved_jobs
	FROM seeker_profiles`

func scanSeeker(row database.Row) (seeker.Profile, error) {
	var p seeker.Profile
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Skills, &p.Experience, &p.Education, &p.ResumeURL, &p.SavedJobs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return seeker.Profile{}, ErrSeekerNotFound
		}
		return seeker.Profile{}, err
	}
	return p, nil
}

func scanSeekerRows(rows database.Rows) (seeker.Profile, error) {
	var p seeker.Profile
	err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Skills, &p.Experience, &p.Education, &p.ResumeURL, &p.SavedJobs)
	if err != nil {
		return seeker.Profile{}, err
	}
	return p, nil
}
