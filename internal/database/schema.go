package database

import "context"

// Bootstrap creates the schema when it does not exist yet. Every statement is
// idempotent, so running it on every start is safe.
//
// The UNIQUE (job_id, seeker_id) index is what turns a racing duplicate
// application into a detectable conflict instead of a second row.
// Applications hang off their posting; deleting a job removes them with it.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		blocked BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS seeker_profiles (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL UNIQUE REFERENCES users(id),
		name TEXT NOT NULL,
		skills TEXT[] NOT NULL DEFAULT '{}',
		experience TEXT NOT NULL DEFAULT '',
		education TEXT NOT NULL DEFAULT '',
		resume_url TEXT NOT NULL DEFAULT '',
		saved_jobs UUID[] NOT NULL DEFAULT '{}'
	)`,
	`CREATE TABLE IF NOT EXISTS employer_profiles (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL UNIQUE REFERENCES users(id),
		company_name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		website TEXT NOT NULL DEFAULT '',
		logo_url TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id UUID PRIMARY KEY,
		employer_id UUID NOT NULL REFERENCES employer_profiles(id),
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		salary TEXT NOT NULL DEFAULT '',
		job_type TEXT NOT NULL DEFAULT 'full-time',
		skills_required TEXT[] NOT NULL DEFAULT '{}',
		approved BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id UUID PRIMARY KEY,
		job_id UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		seeker_id UUID NOT NULL REFERENCES seeker_profiles(id),
		cover_letter TEXT NOT NULL DEFAULT '',
		resume_url TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'applied',
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (job_id, seeker_id)
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		message TEXT NOT NULL,
		link TEXT NOT NULL DEFAULT '',
		read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_approved ON jobs (approved)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_job ON applications (job_id)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications (user_id, created_at DESC)`,
}

func Bootstrap(ctx context.Context, db DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
