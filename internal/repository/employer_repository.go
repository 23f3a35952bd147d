package repository

import (
	"context"
	"errors"

	"jobboard/internal/database"
	"jobboard/internal/domain/employer"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrEmployerNotFound = errors.New("employer profile not found")

type EmployerRepository interface {
	Upsert(ctx context.Context, p employer.Profile) (employer.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (employer.Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (employer.Profile, error)
}

type PostgresEmployerRepository struct {
	db database.DB
}

func NewPostgresEmployerRepository(db database.DB) *PostgresEmployerRepository {
	return &PostgresEmployerRepository{db: db}
}

func (r *PostgresEmployerRepository) Upsert(ctx context.Context, p employer.Profile) (employer.Profile, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO employer_profiles (id, user_id, company_name, description, website, logo_url)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			description = EXCLUDED.description,
			website = EXCLUDED.website,
			logo_url = EXCLUDED.logo_url
		 RETURNING id`,
		p.ID, p.UserID, p.CompanyName, p.Description, p.Website, p.LogoURL,
	)
	if err := row.Scan(&p.ID); err != nil {
		return employer.Profile{}, err
	}
	return p, nil
}

func (r *PostgresEmployerRepository) GetByID(ctx context.Context, id uuid.UUID) (employer.Profile, error) {
	row := r.db.QueryRow(ctx, selectEmployer+` WHERE id = $1`, id)
	return scanEmployer(row)
}

func (r *PostgresEmployerRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (employer.Profile, error) {
	row := r.db.QueryRow(ctx, selectEmployer+` WHERE user_id = $1`, userID)
	return scanEmployer(row)
}

const selectEmployer = `SELECT id, user_id, COALESCE(company_name, ''),
	COALESCE(description, ''), COALESCE(website, ''), COALESCE(logo_url, '')
	FROM employer_profiles`

func scanEmployer(row database.Row) (employer.Profile, error) {
	var p employer.Profile
	err := row.Scan(&p.ID, &p.UserID, &p.CompanyName, &p.Description, &p.Website, &p.LogoURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employer.Profile{}, ErrEmployerNotFound
		}
		return employer.Profile{}, err
	}
	return p, nil
}
