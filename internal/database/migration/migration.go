package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type migrationStep struct {
	Name string
	SQL  string
}

// Every step is idempotent so a partially applied schema can be re-run.
var steps = []migrationStep{
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id         UUID        PRIMARY KEY,
  name       TEXT        NOT NULL,
  email      TEXT        NOT NULL,
  photo_url  TEXT        NOT NULL DEFAULT '',
  role       TEXT        NOT NULL CHECK (role IN ('Applicant', 'Moderator', 'Admin')),
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  CONSTRAINT users_email_key UNIQUE (email)
);`,
	},
	{
		Name: "create_table_scholarships",
		SQL: `CREATE TABLE IF NOT EXISTS scholarships (
  id                    UUID             PRIMARY KEY,
  scholarship_name      TEXT             NOT NULL,
  university_name       TEXT             NOT NULL,
  university_image      TEXT             NOT NULL DEFAULT '',
  university_country    TEXT             NOT NULL,
  university_city       TEXT             NOT NULL,
  university_world_rank INTEGER          NOT NULL DEFAULT 0,
  subject_category      TEXT             NOT NULL,
  scholarship_category  TEXT             NOT NULL,
  degree                TEXT             NOT NULL,
  tuition_fees          DOUBLE PRECISION,
  application_fees      DOUBLE PRECISION NOT NULL,
  service_charge        DOUBLE PRECISION NOT NULL,
  application_deadline  TEXT             NOT NULL,
  scholarship_post_date TIMESTAMPTZ      NOT NULL DEFAULT now(),
  posted_user_email     TEXT             NOT NULL,
  created_at            TIMESTAMPTZ      NOT NULL DEFAULT now(),
  updated_at            TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_applications",
		SQL: `CREATE TABLE IF NOT EXISTS applications (
  id                   UUID             PRIMARY KEY,
  scholarship_id       TEXT             NOT NULL,
  user_id              TEXT             NOT NULL,
  user_name            TEXT             NOT NULL,
  user_email           TEXT             NOT NULL,
  university_name      TEXT             NOT NULL,
  scholarship_category TEXT             NOT NULL,
  degree               TEXT             NOT NULL,
  application_fees     DOUBLE PRECISION NOT NULL,
  service_charge       DOUBLE PRECISION NOT NULL,
  application_status   TEXT             NOT NULL DEFAULT 'pending',
  payment_status       TEXT             NOT NULL DEFAULT 'unpaid',
  application_date     TIMESTAMPTZ      NOT NULL DEFAULT now(),
  feedback             TEXT,
  created_at           TIMESTAMPTZ      NOT NULL DEFAULT now(),
  updated_at           TIMESTAMPTZ      NOT NULL DEFAULT now(),
  CONSTRAINT applications_scholarship_applicant_key UNIQUE (scholarship_id, user_email)
);`,
	},
	{
		Name: "create_table_reviews",
		SQL: `CREATE TABLE IF NOT EXISTS reviews (
  id              UUID        PRIMARY KEY,
  scholarship_id  TEXT        NOT NULL,
  university_name TEXT        NOT NULL,
  user_name       TEXT        NOT NULL,
  user_email      TEXT        NOT NULL,
  user_image      TEXT        NOT NULL DEFAULT '',
  rating_point    INTEGER     NOT NULL CHECK (rating_point BETWEEN 1 AND 5),
  review_comment  TEXT        NOT NULL,
  review_date     TIMESTAMPTZ NOT NULL DEFAULT now(),
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_scholarships_filters",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_scholarships_country_category_degree ON scholarships (university_country, scholarship_category, degree);`,
	},
	{
		Name: "create_index_applications_user_email",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_applications_user_email ON applications (user_email);`,
	},
	{
		Name: "create_index_reviews_scholarship_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_reviews_scholarship_id ON reviews (scholarship_id);`,
	},
}

// EnsureMigrated creates the schema unless the sentinel relation already exists.
// The sentinel is the object built by the final step, so an interrupted run is
// retried in full.
func EnsureMigrated(ctx context.Context, db *sql.DB, log zerolog.Logger) error {
	start := time.Now()
	log = log.With().Str("component", "database").Logger()

	log.Info().Str("event", "db_migration_check").Str("status", "starting").Msg("checking schema")

	var exists bool
	const query = "SELECT to_regclass('public.idx_reviews_scholarship_id') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error().Err(err).
			Str("event", "db_migration_failed").
			Str("status", "error").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info().
			Str("event", "db_migration_skip").
			Str("status", "success").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("schema already exists, skipping migration")
		return nil
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().Err(err).
				Str("event", "db_migration_failed").
				Str("status", "error").
				Str("migration_step", step.Name).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
				Msg("migration step failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Debug().
			Str("event", "db_migration_step").
			Str("status", "success").
			Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Msg("migration step applied")
	}

	log.Info().
		Str("event", "db_migration_success").
		Str("status", "success").
		Int("steps", len(steps)).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("schema migrated")

	return nil
}
