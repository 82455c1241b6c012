package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

// Applies the schema to the database pointed at by DATABASE_URL.
// Statements are idempotent, safe to run repeatedly.
//
//	go run scripts/migrate.go

var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS skills (
		id BIGSERIAL PRIMARY KEY,
		skill_name TEXT NOT NULL UNIQUE,
		requires_certificate BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS job_seeker_profiles (
		id BIGSERIAL PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE REFERENCES users(id),
		name TEXT NOT NULL,
		address TEXT,
		phone TEXT,
		education TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS profile_skills (
		id BIGSERIAL PRIMARY KEY,
		profile_id BIGINT NOT NULL REFERENCES job_seeker_profiles(id),
		skill_id BIGINT NOT NULL REFERENCES skills(id),
		certificate_url TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS employment_entries (
		id BIGSERIAL PRIMARY KEY,
		profile_id BIGINT NOT NULL REFERENCES job_seeker_profiles(id),
		company_name TEXT NOT NULL,
		duration TEXT NOT NULL,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS profile_references (
		id BIGSERIAL PRIMARY KEY,
		profile_id BIGINT NOT NULL REFERENCES job_seeker_profiles(id),
		name TEXT NOT NULL,
		contact TEXT NOT NULL,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS employer_profiles (
		id BIGSERIAL PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE REFERENCES users(id),
		company_name TEXT NOT NULL,
		company_description TEXT,
		company_website TEXT,
		contact_info TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id BIGSERIAL PRIMARY KEY,
		provider_profile_id BIGINT NOT NULL REFERENCES employer_profiles(id),
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		pay NUMERIC(12,2) NOT NULL,
		employment_type TEXT NOT NULL,
		location TEXT NOT NULL,
		duration TEXT,
		status TEXT NOT NULL DEFAULT 'OPEN',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS job_skills (
		id BIGSERIAL PRIMARY KEY,
		job_id BIGINT NOT NULL REFERENCES jobs(id),
		skill_id BIGINT NOT NULL REFERENCES skills(id)
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id BIGSERIAL PRIMARY KEY,
		job_id BIGINT NOT NULL REFERENCES jobs(id),
		seeker_profile_id BIGINT NOT NULL REFERENCES job_seeker_profiles(id),
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (job_id, seeker_profile_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_status ON jobs(status)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_provider ON jobs(provider_profile_id)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_seeker ON applications(seeker_profile_id)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_job ON applications(job_id)`,
}

func main() {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	for _, stmt := range statements {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			fmt.Fprintf(os.Stderr, "exec: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("schema applied")
}
